// Package business aggregates agent productivity and sector assignment
// into a day's financial and operational results.
package business

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Default financial tuning. Runtime values come from the config surface.
const (
	defaultRevenuePerPoint      = 1200.0
	defaultClientDivisor        = 4500.0
	defaultMaintenanceBase      = 400.0
	defaultMaintenancePerAgent  = 60.0
	defaultSalaryDayDivisor     = 260
	defaultUnassignedMultiplier = 0.6

	// Daily revenue variance range, mirroring real demand wobble.
	varianceLow  = -0.05
	varianceHigh = 0.10

	// Output scales with motivation from this floor upward.
	motivationFloor = 0.6

	innovationDivisor = 12.0
)

func defaultSectorMultipliers() map[types.Sector]float64 {
	return map[types.Sector]float64{
		types.SectorOperations: 1.0,
		types.SectorMarketing:  1.1,
		types.SectorFinance:    0.9,
		types.SectorResearch:   0.8,
	}
}

// Model computes BusinessResults and applies them to the Company.
// RNG access is serialized; everything else is pure.
type Model struct {
	mu  sync.Mutex
	rng *rand.Rand

	sectorMultipliers    map[types.Sector]float64
	unassignedMultiplier float64
	revenuePerPoint      float64
	clientDivisor        float64
	maintenanceBase      float64
	maintenancePerAgent  float64
	salaryDayDivisor     int
}

// New creates a business model with default tuning.
func New(opts ...Option) *Model {
	m := &Model{
		rng:                  rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // simulation randomness, not crypto
		sectorMultipliers:    defaultSectorMultipliers(),
		unassignedMultiplier: defaultUnassignedMultiplier,
		revenuePerPoint:      defaultRevenuePerPoint,
		clientDivisor:        defaultClientDivisor,
		maintenanceBase:      defaultMaintenanceBase,
		maintenancePerAgent:  defaultMaintenancePerAgent,
		salaryDayDivisor:     defaultSalaryDayDivisor,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// ComputeResults derives one day's results from the roster and applies them
// to the company: cash accumulates the net, cumulative revenue/costs grow.
// Negative cash is allowed (debt) and left for the insight engine to
// narrate, never clamped.
func (m *Model) ComputeResults(state *model.GameState, outputBoosts map[string]float64, oneTimeCosts float64) model.BusinessResults {
	m.mu.Lock()
	defer m.mu.Unlock()

	revenue := 0.0
	salaryCosts := 0.0
	for _, agent := range state.Agents {
		output := agent.Productivity * (motivationFloor + agent.Motivation/100)
		output *= 1 + outputBoosts[agent.ID]
		variance := 1 + varianceLow + m.rng.Float64()*(varianceHigh-varianceLow)
		revenue += output * m.sectorMultiplier(agent.Sector) * m.revenuePerPoint * variance
		salaryCosts += float64(agent.Salary) / float64(m.salaryDayDivisor)
	}

	maintenance := m.maintenanceBase + m.maintenancePerAgent*float64(len(state.Agents))
	costs := salaryCosts + maintenance + oneTimeCosts

	revenue = round2(revenue)
	costs = round2(costs)

	results := model.BusinessResults{
		Revenue:     revenue,
		Costs:       costs,
		Net:         round2(revenue - costs),
		Clients:     m.clients(state.Agents, revenue),
		Errors:      m.operationalErrors(state.Agents),
		Innovations: m.innovations(state.Agents),
	}

	state.Company.Revenue = round2(state.Company.Revenue + results.Revenue)
	state.Company.Costs = round2(state.Company.Costs + results.Costs)
	state.Company.Cash = round2(state.Company.Cash + results.Net)

	return results
}

func (m *Model) sectorMultiplier(s types.Sector) float64 {
	if mult, ok := m.sectorMultipliers[s]; ok {
		return mult
	}
	return m.unassignedMultiplier
}

// clients scale with revenue weighted by the roster's communication aggregate.
func (m *Model) clients(agents []*model.Agent, revenue float64) int {
	if len(agents) == 0 {
		return 0
	}
	commAvg := skillAverage(agents, types.CompetencyCommunication)
	n := int(revenue / m.clientDivisor * (0.5 + commAvg/10))
	if n < 0 {
		return 0
	}
	return n
}

// operationalErrors scale inversely with the organisation and stability
// aggregates, floored at zero.
func (m *Model) operationalErrors(agents []*model.Agent) int {
	if len(agents) == 0 {
		return 0
	}
	orgAvg := skillAverage(agents, types.CompetencyOrganisation)
	stabAvg := 0.0
	for _, a := range agents {
		stabAvg += a.Stability
	}
	stabAvg /= float64(len(agents))

	pressure := (10-orgAvg)/10 + (100-stabAvg)/100
	n := int(math.Round(pressure * float64(len(agents)) / 2))
	if n < 0 {
		return 0
	}
	return n
}

// innovations scale with the creativity aggregate of research-sector
// agents; an empty research sector yields zero.
func (m *Model) innovations(agents []*model.Agent) int {
	creativity := 0
	for _, a := range agents {
		if a.Sector == types.SectorResearch {
			creativity += a.Skills[types.CompetencyCreativity]
		}
	}
	return int(float64(creativity) / innovationDivisor)
}

func skillAverage(agents []*model.Agent, c types.Competency) float64 {
	total := 0
	for _, a := range agents {
		total += a.Skills[c]
	}
	return float64(total) / float64(len(agents))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
