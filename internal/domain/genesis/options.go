// Package genesis produces constrained-random agents.
package genesis

import "math/rand"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed pins the generator RNG for reproducible output.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible simulation
	}
}

// WithRand supplies a shared RNG source.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSkillBounds sets the creation-time skill budget and per-competency range.
func WithSkillBounds(budget, min, max int) Option {
	return func(g *Generator) {
		if budget > 0 && min >= 1 && max >= min {
			g.skillBudget = budget
			g.skillMin = min
			g.skillMax = max
		}
	}
}

// WithBaselines sets the motivation/stability baselines and jitter.
func WithBaselines(motivation, stability, jitter float64) Option {
	return func(g *Generator) {
		if motivation >= 0 && stability >= 0 && jitter >= 0 {
			g.motivationBaseline = motivation
			g.stabilityBaseline = stability
			g.jitter = jitter
		}
	}
}

// WithSalaryRange sets the generated salary bounds.
func WithSalaryRange(min, max int) Option {
	return func(g *Generator) {
		if min > 0 && max >= min {
			g.salaryMin = min
			g.salaryMax = max
		}
	}
}

// WithRolePool replaces the default role pool.
func WithRolePool(pool []RoleSlot) Option {
	return func(g *Generator) {
		if len(pool) > 0 {
			g.rolePool = pool
		}
	}
}

// WithIDSource replaces the identity source, e.g. for deterministic tests.
func WithIDSource(src func() string) Option {
	return func(g *Generator) {
		if src != nil {
			g.idSource = src
		}
	}
}
