// Package types contains common types used across the application
package types

import "fmt"

// Competency names one of the five skill axes every agent carries.
type Competency string

// The five competencies, in fixed order. The order doubles as the
// tie-breaker when ranking skill extremes.
const (
	CompetencyTechnical     Competency = "technical"
	CompetencyCreativity    Competency = "creativity"
	CompetencyCommunication Competency = "communication"
	CompetencyOrganisation  Competency = "organisation"
	CompetencyAutonomy      Competency = "autonomy"
)

// Competencies returns the fixed competency ordering.
func Competencies() []Competency {
	return []Competency{
		CompetencyTechnical,
		CompetencyCreativity,
		CompetencyCommunication,
		CompetencyOrganisation,
		CompetencyAutonomy,
	}
}

// ParseCompetency validates a competency name.
func ParseCompetency(s string) (Competency, error) {
	for _, c := range Competencies() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown competency %q", ErrInvalidInput, s)
}

// Sector is one of the four fixed work areas an agent may be assigned to.
type Sector string

const (
	SectorOperations Sector = "operations"
	SectorMarketing  Sector = "marketing"
	SectorFinance    Sector = "finance"
	SectorResearch   Sector = "research"

	// SectorNone marks an agent outside any sector; they contribute at the
	// reduced baseline multiplier.
	SectorNone Sector = ""
)

// Sectors returns the four assignable sectors.
func Sectors() []Sector {
	return []Sector{SectorOperations, SectorMarketing, SectorFinance, SectorResearch}
}

// AutonomyTier orders how independently an agent operates.
type AutonomyTier string

const (
	AutonomyLow    AutonomyTier = "low"
	AutonomyMedium AutonomyTier = "medium"
	AutonomyHigh   AutonomyTier = "high"
)

// Next returns the tier one step up, clamped at high.
func (t AutonomyTier) Next() AutonomyTier {
	switch t {
	case AutonomyLow:
		return AutonomyMedium
	case AutonomyMedium, AutonomyHigh:
		return AutonomyHigh
	default:
		return AutonomyLow
	}
}

// ActionKind enumerates the manager directives the resolver understands.
type ActionKind string

const (
	ActionAssignTasks ActionKind = "assign_tasks"
	ActionTrain       ActionKind = "train"
	ActionPromote     ActionKind = "promote"
	ActionFire        ActionKind = "fire"
	ActionSupport     ActionKind = "support"
)

// ParseActionKind validates an action kind.
func ParseActionKind(s string) (ActionKind, error) {
	switch ActionKind(s) {
	case ActionAssignTasks, ActionTrain, ActionPromote, ActionFire, ActionSupport:
		return ActionKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown action %q", ErrInvalidInput, s)
}

// InterviewSender tags who authored an interview message.
type InterviewSender string

const (
	SenderManager   InterviewSender = "manager"
	SenderCandidate InterviewSender = "candidate"
)
