// Package insight derives the day's narrative report from resolved
// numeric state. Pure rule-based templating: no network, no hidden state,
// deterministic for identical inputs.
package insight

import (
	"fmt"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/resolve"
	"github.com/okian/corposim/internal/domain/types"
)

// Default narrative thresholds. Runtime values come from the config surface.
const (
	defaultLowMotivation     = 40.0
	defaultLowStability      = 35.0
	defaultHighErrors        = 3
	defaultLowEnergyHeadroom = 40
)

// Engine builds day reports from resolved state.
type Engine struct {
	lowMotivation     float64
	lowStability      float64
	highErrors        int
	lowEnergyHeadroom int
}

// New creates an insight engine with default thresholds.
func New(opts ...Option) *Engine {
	e := &Engine{
		lowMotivation:     defaultLowMotivation,
		lowStability:      defaultLowStability,
		highErrors:        defaultHighErrors,
		lowEnergyHeadroom: defaultLowEnergyHeadroom,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// BuildReport assembles the immutable record of one resolved day. Insights
// snapshot the roster in order; fired agents never appear.
func (e *Engine) BuildReport(day int, state *model.GameState, outcome *resolve.Outcome, results model.BusinessResults, energyUsed int) *model.DayReport {
	report := &model.DayReport{
		Day:             day,
		AgentSituation:  e.agentInsights(state.Agents),
		Results:         results,
		DecisionsImpact: e.decisionsImpact(outcome),
		EnergyTotal:     state.EnergyTotal,
		EnergyUsed:      energyUsed,
	}
	report.Recommendations = e.recommendations(state, results, energyUsed)
	return report
}

// FoundingReport produces the day-zero report for a freshly started game.
// No business day has resolved, so results stay zero.
func (e *Engine) FoundingReport(state *model.GameState, energyUsed int) *model.DayReport {
	return &model.DayReport{
		Day:             0,
		AgentSituation:  e.agentInsights(state.Agents),
		Results:         model.BusinessResults{},
		DecisionsImpact: []string{fmt.Sprintf("%s founded with a roster of %d", state.Company.Name, len(state.Agents))},
		Recommendations: e.recommendations(state, model.BusinessResults{}, energyUsed),
		EnergyTotal:     state.EnergyTotal,
		EnergyUsed:      energyUsed,
	}
}

func (e *Engine) agentInsights(agents []*model.Agent) []model.AgentInsight {
	insights := make([]model.AgentInsight, 0, len(agents))
	for _, a := range agents {
		insights = append(insights, model.AgentInsight{
			AgentID:      a.ID,
			Name:         a.Name,
			Motivation:   a.Motivation,
			Stability:    a.Stability,
			Productivity: a.Productivity,
			Note:         e.agentNote(a),
		})
	}
	return insights
}

func (e *Engine) agentNote(a *model.Agent) string {
	switch {
	case a.Motivation < e.lowMotivation:
		return "morale critical"
	case a.Stability < e.lowStability:
		return "at risk of burnout"
	case a.Autonomy == types.AutonomyHigh:
		return "operates autonomously"
	default:
		return ""
	}
}

// decisionsImpact narrates each applied directive, in batch order.
func (e *Engine) decisionsImpact(outcome *resolve.Outcome) []string {
	if outcome == nil || (len(outcome.Deltas) == 0 && len(outcome.Failures) == 0) {
		return []string{"No directives issued today"}
	}

	lines := make([]string, 0, len(outcome.Deltas)+len(outcome.Failures))
	for _, d := range outcome.Deltas {
		switch d.Kind {
		case types.ActionAssignTasks:
			lines = append(lines, fmt.Sprintf("Workload adjusted for %s; output boosted for the day", d.AgentName))
		case types.ActionTrain:
			lines = append(lines, fmt.Sprintf("Training boosted %s's %s to %d", d.AgentName, d.Focus, d.FocusValue))
		case types.ActionPromote:
			lines = append(lines, fmt.Sprintf("%s promoted; salary now %d, autonomy %s", d.AgentName, d.SalaryAfter, d.AutonomyAfter))
		case types.ActionFire:
			lines = append(lines, fmt.Sprintf("%s let go; severance of %.2f paid out", d.AgentName, d.Severance))
		case types.ActionSupport:
			lines = append(lines, fmt.Sprintf("Coaching session steadied %s", d.AgentName))
		}
	}
	for _, f := range outcome.Failures {
		lines = append(lines, fmt.Sprintf("Directive %d skipped: %s", f.Index+1, f.Reason))
	}
	return lines
}

// recommendations keys templated advice off threshold crossings, in a
// fixed evaluation order so identical inputs yield identical output.
func (e *Engine) recommendations(state *model.GameState, results model.BusinessResults, energyUsed int) []string {
	tips := []string{}

	if state.Company.Cash < 0 {
		tips = append(tips, fmt.Sprintf("The company is running on debt (%.2f); cut recurring costs before they compound", state.Company.Cash))
	}
	if results.Net < 0 {
		tips = append(tips, "Reduce support costs and prioritise the most productive agents")
	}
	for _, a := range state.Agents {
		if a.Motivation < e.lowMotivation {
			tips = append(tips, fmt.Sprintf("Support %s before motivation bottoms out", a.Name))
		} else if a.Stability < e.lowStability {
			tips = append(tips, fmt.Sprintf("Lighten %s's workload to restore stability", a.Name))
		}
	}
	if results.Errors > e.highErrors {
		tips = append(tips, fmt.Sprintf("Review organisation in %s; error count hit %d", e.weakestSector(state.Agents), results.Errors))
	}
	if results.Innovations == 0 && e.hasResearch(state.Agents) {
		tips = append(tips, "Schedule focused innovation time with the research profiles")
	}
	if headroom := state.EnergyTotal - energyUsed; headroom < e.lowEnergyHeadroom {
		tips = append(tips, "Energy reserves are nearly spent; buy energy before the next hire")
	}

	if len(tips) == 0 {
		tips = append(tips, "Stay the course and secure one more pilot client")
	}
	return tips
}

// weakestSector returns the sector with the lowest organisation aggregate.
func (e *Engine) weakestSector(agents []*model.Agent) types.Sector {
	totals := map[types.Sector]int{}
	counts := map[types.Sector]int{}
	for _, a := range agents {
		if a.Sector == types.SectorNone {
			continue
		}
		totals[a.Sector] += a.Skills[types.CompetencyOrganisation]
		counts[a.Sector]++
	}

	weakest := types.SectorOperations
	best := -1.0
	for _, s := range types.Sectors() {
		if counts[s] == 0 {
			continue
		}
		avg := float64(totals[s]) / float64(counts[s])
		if best < 0 || avg < best {
			best = avg
			weakest = s
		}
	}
	return weakest
}

func (e *Engine) hasResearch(agents []*model.Agent) bool {
	for _, a := range agents {
		if a.Sector == types.SectorResearch {
			return true
		}
	}
	return false
}
