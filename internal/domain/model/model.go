// Package model contains domain models passed between layers.
package model

import (
	"fmt"

	"github.com/okian/corposim/internal/domain/types"
)

// Agent is a simulated employee owned by exactly one game's roster.
type Agent struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Role         string                   `json:"role"`
	Sector       types.Sector             `json:"sector"`
	Skills       map[types.Competency]int `json:"skills"`
	Strengths    []types.Competency       `json:"strengths"`
	Weaknesses   []types.Competency       `json:"weaknesses"`
	Productivity float64                  `json:"productivity"`
	Salary       int                      `json:"salary"`
	Autonomy     types.AutonomyTier       `json:"autonomy"`
	Traits       []string                 `json:"traits"`
	Motivation   float64                  `json:"motivation"`
	Stability    float64                  `json:"stability"`
}

// Clone returns an independent deep copy of the agent.
func (a *Agent) Clone() *Agent {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Skills = make(map[types.Competency]int, len(a.Skills))
	for k, v := range a.Skills {
		cp.Skills[k] = v
	}
	cp.Strengths = append([]types.Competency(nil), a.Strengths...)
	cp.Weaknesses = append([]types.Competency(nil), a.Weaknesses...)
	cp.Traits = append([]string(nil), a.Traits...)
	return &cp
}

// SkillSum returns the total of the five competency values.
func (a *Agent) SkillSum() int {
	sum := 0
	for _, v := range a.Skills {
		sum += v
	}
	return sum
}

// Company holds the financial position of the player's business.
// Revenue and Costs are cumulative across all resolved days.
type Company struct {
	Name    string  `json:"name"`
	Cash    float64 `json:"cash"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
}

// BusinessResults captures one day's derived outcomes. Net is always
// Revenue - Costs; none of these are independently settable.
type BusinessResults struct {
	Revenue     float64 `json:"revenue"`
	Costs       float64 `json:"costs"`
	Net         float64 `json:"net"`
	Clients     int     `json:"clients"`
	Errors      int     `json:"errors"`
	Innovations int     `json:"innovations"`
}

// AgentInsight is a read-only snapshot of one agent attached to a report.
// Later agent mutation never alters an emitted report.
type AgentInsight struct {
	AgentID      string  `json:"agent_id"`
	Name         string  `json:"name"`
	Motivation   float64 `json:"motivation"`
	Stability    float64 `json:"stability"`
	Productivity float64 `json:"productivity"`
	Note         string  `json:"note,omitempty"`
}

// DayReport is the immutable record of one resolved day.
type DayReport struct {
	Day             int              `json:"day"`
	AgentSituation  []AgentInsight   `json:"agent_situation"`
	Results         BusinessResults  `json:"results"`
	DecisionsImpact []string         `json:"decisions_impact"`
	Recommendations []string         `json:"recommendations"`
	EnergyTotal     int              `json:"energy_total"`
	EnergyUsed      int              `json:"energy_used"`
}

// ManagerAction is one per-agent directive inside a day's batch.
type ManagerAction struct {
	AgentID string           `json:"agent_id"`
	Kind    types.ActionKind `json:"action"`
	Focus   types.Competency `json:"focus,omitempty"`
}

// GameState is the root aggregate for one game session. Everything else is
// reachable only through it.
type GameState struct {
	GameID      string     `json:"game_id"`
	Day         int        `json:"day"`
	Company     Company    `json:"company"`
	Agents      []*Agent   `json:"agents"`
	LastReport  *DayReport `json:"last_report,omitempty"`
	EnergyTotal int        `json:"energy_total"`
}

// Clone returns an independent deep copy of the game state.
func (s *GameState) Clone() *GameState {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Agents = make([]*Agent, len(s.Agents))
	for i, a := range s.Agents {
		cp.Agents[i] = a.Clone()
	}
	if s.LastReport != nil {
		r := *s.LastReport
		r.AgentSituation = append([]AgentInsight(nil), s.LastReport.AgentSituation...)
		r.DecisionsImpact = append([]string(nil), s.LastReport.DecisionsImpact...)
		r.Recommendations = append([]string(nil), s.LastReport.Recommendations...)
		cp.LastReport = &r
	}
	return &cp
}

// FindAgent returns the roster agent with the given id.
func (s *GameState) FindAgent(id string) (*Agent, error) {
	for _, a := range s.Agents {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: agent %s", types.ErrNotFound, id)
}

// RemoveAgent deletes the agent with the given id from the roster.
// Removal is terminal; roster order of the remaining agents is preserved.
func (s *GameState) RemoveAgent(id string) bool {
	for i, a := range s.Agents {
		if a.ID == id {
			s.Agents = append(s.Agents[:i], s.Agents[i+1:]...)
			return true
		}
	}
	return false
}

// Candidate is an Agent-shaped record generated for recruitment. Its id is
// transient; hiring assigns a durable identity before roster insertion.
type Candidate struct {
	Agent
}

// InterviewMessage is one entry in a recruitment interview thread.
type InterviewMessage struct {
	Sender  types.InterviewSender `json:"sender"`
	Content string                `json:"content"`
}
