// Package resolve applies a day's batch of manager directives to a roster.
package resolve

import (
	"fmt"
	"math"

	"github.com/okian/corposim/internal/domain/genesis"
	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Default action deltas. Runtime values come from the config surface.
const (
	defaultAssignOutputBoost     = 0.15
	defaultAssignStabilityCost   = 2.0
	defaultAssignMotivationBoost = 3.0
	defaultTrainSkillIncrement   = 1
	defaultTrainMotivationBoost  = 6.0
	defaultTrainCost             = 800.0
	defaultPromoteSalaryFactor   = 1.10
	defaultPromoteMotivation     = 10.0
	defaultSupportStability      = 12.0
	defaultSupportMotivation     = 4.0
	defaultSupportCost           = 150.0
	defaultSeveranceRate         = 0.25
	defaultSkillBudget           = 20
	defaultSkillMax              = 10
)

// Delta records one applied directive, with enough detail for the insight
// engine to narrate it.
type Delta struct {
	AgentID   string
	AgentName string
	Kind      types.ActionKind
	Focus     types.Competency
	// FocusValue holds the focus competency after a train action.
	FocusValue int
	// SalaryAfter holds the new salary after a promote action.
	SalaryAfter int
	// AutonomyAfter holds the new tier after a promote action.
	AutonomyAfter types.AutonomyTier
	// Severance holds the one-time payout of a fire action.
	Severance float64
}

// Failure records one skipped directive. The rest of the batch still applies.
type Failure struct {
	Index   int    `json:"index"`
	AgentID string `json:"agent_id"`
	Reason  string `json:"reason"`
}

// Outcome is the full result of resolving one batch against a roster.
type Outcome struct {
	Deltas   []Delta
	Failures []Failure

	// OneTimeCosts accumulates training, support and severance expenses
	// that the business model folds into the day's costs.
	OneTimeCosts float64

	// OutputBoosts maps agent id to the transient day-output boost from
	// assign_tasks. Duplicate assignments overwrite: last effect wins.
	OutputBoosts map[string]float64

	// Fired lists agents removed this day; they must not appear in the
	// day's insight list.
	Fired []Delta
}

// Resolver applies manager actions to agents for one day.
type Resolver struct {
	assignOutputBoost     float64
	assignStabilityCost   float64
	assignMotivationBoost float64

	trainSkillIncrement  int
	trainMotivationBoost float64
	trainCost            float64

	promoteSalaryFactor    float64
	promoteMotivationBoost float64

	supportStabilityBoost  float64
	supportMotivationBoost float64
	supportCost            float64

	severanceRate float64

	skillBudget int
	skillMax    int
}

// New creates a resolver with default deltas.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		assignOutputBoost:      defaultAssignOutputBoost,
		assignStabilityCost:    defaultAssignStabilityCost,
		assignMotivationBoost:  defaultAssignMotivationBoost,
		trainSkillIncrement:    defaultTrainSkillIncrement,
		trainMotivationBoost:   defaultTrainMotivationBoost,
		trainCost:              defaultTrainCost,
		promoteSalaryFactor:    defaultPromoteSalaryFactor,
		promoteMotivationBoost: defaultPromoteMotivation,
		supportStabilityBoost:  defaultSupportStability,
		supportMotivationBoost: defaultSupportMotivation,
		supportCost:            defaultSupportCost,
		severanceRate:          defaultSeveranceRate,
		skillBudget:            defaultSkillBudget,
		skillMax:               defaultSkillMax,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ResolveDay applies the batch to the roster in listed order, mutating the
// passed state. An action referencing an unknown agent id fails alone; the
// rest of the batch still applies. The caller owns batch-level atomicity
// (resolve against a copy, swap on success).
func (r *Resolver) ResolveDay(state *model.GameState, actions []model.ManagerAction) (*Outcome, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: nil game state", types.ErrInvalidInput)
	}

	out := &Outcome{OutputBoosts: make(map[string]float64)}

	for i, action := range actions {
		if _, err := types.ParseActionKind(string(action.Kind)); err != nil {
			out.Failures = append(out.Failures, Failure{Index: i, AgentID: action.AgentID, Reason: fmt.Sprintf("unknown action %q", action.Kind)})
			continue
		}

		agent, err := state.FindAgent(action.AgentID)
		if err != nil {
			out.Failures = append(out.Failures, Failure{Index: i, AgentID: action.AgentID, Reason: "agent not on roster"})
			continue
		}

		switch action.Kind {
		case types.ActionAssignTasks:
			r.applyAssign(agent, out)
		case types.ActionTrain:
			if err := r.applyTrain(agent, action.Focus, out); err != nil {
				out.Failures = append(out.Failures, Failure{Index: i, AgentID: action.AgentID, Reason: err.Error()})
				continue
			}
		case types.ActionPromote:
			r.applyPromote(agent, out)
		case types.ActionFire:
			r.applyFire(state, agent, out)
		case types.ActionSupport:
			r.applySupport(agent, out)
		}
	}

	// A fired agent surviving in the roster would poison the day's report.
	for _, fired := range out.Fired {
		if _, err := state.FindAgent(fired.AgentID); err == nil {
			return nil, fmt.Errorf("%w: fired agent %s still on roster", types.ErrInternalInvariant, fired.AgentID)
		}
	}

	return out, nil
}

func (r *Resolver) applyAssign(agent *model.Agent, out *Outcome) {
	// Last assignment wins; boosts are set, never stacked.
	out.OutputBoosts[agent.ID] = r.assignOutputBoost
	agent.Motivation = clampStat(agent.Motivation + r.assignMotivationBoost)
	agent.Stability = clampStat(agent.Stability - r.assignStabilityCost)
	out.Deltas = append(out.Deltas, Delta{AgentID: agent.ID, AgentName: agent.Name, Kind: types.ActionAssignTasks})
}

func (r *Resolver) applyTrain(agent *model.Agent, focus types.Competency, out *Outcome) error {
	if focus == "" {
		return fmt.Errorf("train requires a focus competency")
	}
	if _, err := types.ParseCompetency(string(focus)); err != nil {
		return fmt.Errorf("unknown focus competency %q", focus)
	}

	if agent.Skills[focus] < r.skillMax {
		agent.Skills[focus] += r.trainSkillIncrement
		if agent.Skills[focus] > r.skillMax {
			agent.Skills[focus] = r.skillMax
		}
	}
	// The creation-time budget is intentionally not re-enforced here;
	// training grows the vector without draining other competencies.
	agent.Strengths, agent.Weaknesses = genesis.SkillExtremes(agent.Skills)
	agent.Productivity = genesis.ProductivityOf(agent.Skills, r.skillBudget)
	agent.Motivation = clampStat(agent.Motivation + r.trainMotivationBoost)

	out.OneTimeCosts += r.trainCost
	out.Deltas = append(out.Deltas, Delta{
		AgentID:    agent.ID,
		AgentName:  agent.Name,
		Kind:       types.ActionTrain,
		Focus:      focus,
		FocusValue: agent.Skills[focus],
	})
	return nil
}

func (r *Resolver) applyPromote(agent *model.Agent, out *Outcome) {
	agent.Salary = int(math.Round(float64(agent.Salary) * r.promoteSalaryFactor))
	agent.Autonomy = agent.Autonomy.Next()
	agent.Motivation = clampStat(agent.Motivation + r.promoteMotivationBoost)
	out.Deltas = append(out.Deltas, Delta{
		AgentID:       agent.ID,
		AgentName:     agent.Name,
		Kind:          types.ActionPromote,
		SalaryAfter:   agent.Salary,
		AutonomyAfter: agent.Autonomy,
	})
}

func (r *Resolver) applyFire(state *model.GameState, agent *model.Agent, out *Outcome) {
	severance := math.Round(float64(agent.Salary)*r.severanceRate*100) / 100
	state.RemoveAgent(agent.ID)
	out.OneTimeCosts += severance
	delete(out.OutputBoosts, agent.ID)
	d := Delta{AgentID: agent.ID, AgentName: agent.Name, Kind: types.ActionFire, Severance: severance}
	out.Deltas = append(out.Deltas, d)
	out.Fired = append(out.Fired, d)
}

func (r *Resolver) applySupport(agent *model.Agent, out *Outcome) {
	agent.Stability = clampStat(agent.Stability + r.supportStabilityBoost)
	agent.Motivation = clampStat(agent.Motivation + r.supportMotivationBoost)
	out.OneTimeCosts += r.supportCost
	out.Deltas = append(out.Deltas, Delta{AgentID: agent.ID, AgentName: agent.Name, Kind: types.ActionSupport})
}

func clampStat(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}
