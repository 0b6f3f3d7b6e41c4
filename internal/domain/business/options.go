// Package business aggregates agent productivity into day results.
package business

import (
	"math/rand"

	"github.com/okian/corposim/internal/domain/types"
)

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithSeed pins the model RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(m *Model) {
		m.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible simulation
	}
}

// WithRand supplies a shared RNG source.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithSectorMultipliers sets per-sector revenue weights and the baseline
// multiplier for unassigned agents.
func WithSectorMultipliers(multipliers map[types.Sector]float64, unassigned float64) Option {
	return func(m *Model) {
		if len(multipliers) > 0 {
			m.sectorMultipliers = make(map[types.Sector]float64, len(multipliers))
			for s, v := range multipliers {
				if v > 0 {
					m.sectorMultipliers[s] = v
				}
			}
		}
		if unassigned > 0 {
			m.unassignedMultiplier = unassigned
		}
	}
}

// WithRevenueTuning sets the revenue-per-point scale and client divisor.
func WithRevenueTuning(perPoint, clientDivisor float64) Option {
	return func(m *Model) {
		if perPoint > 0 {
			m.revenuePerPoint = perPoint
		}
		if clientDivisor > 0 {
			m.clientDivisor = clientDivisor
		}
	}
}

// WithCostTuning sets maintenance costs and the salary day divisor.
func WithCostTuning(maintenanceBase, maintenancePerAgent float64, salaryDayDivisor int) Option {
	return func(m *Model) {
		if maintenanceBase >= 0 {
			m.maintenanceBase = maintenanceBase
		}
		if maintenancePerAgent >= 0 {
			m.maintenancePerAgent = maintenancePerAgent
		}
		if salaryDayDivisor > 0 {
			m.salaryDayDivisor = salaryDayDivisor
		}
	}
}
