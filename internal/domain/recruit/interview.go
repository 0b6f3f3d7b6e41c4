package recruit

import (
	"fmt"
	"strings"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Interview categories matched against the manager's latest message.
// Simple keyword buckets, not free-form generation: the reply is fully
// determined by candidate traits and the matched category.
var interviewKeywords = map[string][]string{
	"salary":     {"salary", "pay", "compensation", "money", "rate"},
	"experience": {"experience", "background", "skill", "worked", "career"},
	"team":       {"team", "collaborate", "colleagues", "together", "culture"},
	"motivation": {"why", "motivat", "drive", "goal", "ambition"},
	"pressure":   {"pressure", "stress", "deadline", "conflict", "difficult"},
}

// Interview appends nothing itself; it reads the thread's latest manager
// message and produces the candidate's scripted reply. The caller owns
// the thread.
func (e *Engine) Interview(candidate model.Candidate, thread []model.InterviewMessage) (string, error) {
	if candidate.Name == "" {
		return "", fmt.Errorf("%w: candidate has no profile", types.ErrInvalidInput)
	}
	if len(candidate.Strengths) == 0 || len(candidate.Weaknesses) == 0 {
		return "", fmt.Errorf("%w: candidate profile lacks skill extremes", types.ErrInvalidInput)
	}

	last := latestManagerMessage(thread)
	if last == "" {
		return fmt.Sprintf("Hello, I'm %s. I've spent my career in %s work and I'm ready to talk.",
			candidate.Name, candidate.Role), nil
	}

	switch matchCategory(last) {
	case "salary":
		return fmt.Sprintf("I'd be looking for something around %d a year, in line with my track record.",
			candidate.Salary), nil
	case "experience":
		return fmt.Sprintf("My strongest areas are %s; I'll be upfront that %s is where I lean on teammates.",
			joinCompetencies(candidate.Strengths), joinCompetencies(candidate.Weaknesses)), nil
	case "team":
		if hasTrait(candidate, "collaborative") {
			return "I do my best work embedded in a team; pairing and open review are how I operate.", nil
		}
		return "I work well alongside others, though I tend to carve out focused solo time for hard problems.", nil
	case "motivation":
		if hasTrait(candidate, "innovative") {
			return "I want somewhere that ships new ideas. Building things nobody has tried is what gets me up.", nil
		}
		return fmt.Sprintf("Steady growth, honestly. I want to get even better at %s and see the results compound.",
			joinCompetencies(candidate.Strengths[:1])), nil
	case "pressure":
		if hasTrait(candidate, "stable") {
			return "Deadlines don't rattle me; I plan backwards from the date and keep the pace sustainable.", nil
		}
		return "I'll admit crunch periods cost me; I manage them by over-communicating status early.", nil
	default:
		return fmt.Sprintf("Good question. Coming from a %s background, I'd say my %s speaks for itself, and I adapt fast.",
			candidate.Role, joinCompetencies(candidate.Strengths[:1])), nil
	}
}

func latestManagerMessage(thread []model.InterviewMessage) string {
	for i := len(thread) - 1; i >= 0; i-- {
		if thread[i].Sender == types.SenderManager {
			return strings.ToLower(thread[i].Content)
		}
	}
	return ""
}

// matchCategory checks categories in a fixed order so overlapping
// keywords resolve deterministically.
func matchCategory(msg string) string {
	for _, category := range []string{"salary", "experience", "team", "motivation", "pressure"} {
		for _, kw := range interviewKeywords[category] {
			if strings.Contains(msg, kw) {
				return category
			}
		}
	}
	return ""
}

func hasTrait(c model.Candidate, trait string) bool {
	for _, t := range c.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

func joinCompetencies(comps []types.Competency) string {
	parts := make([]string, len(comps))
	for i, c := range comps {
		parts[i] = string(c)
	}
	return strings.Join(parts, " and ")
}
