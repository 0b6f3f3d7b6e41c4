// Package resolve applies a day's batch of manager directives to a roster.
package resolve

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithAssignDeltas sets the assign_tasks effect policy.
func WithAssignDeltas(outputBoost, stabilityCost, motivationBoost float64) Option {
	return func(r *Resolver) {
		if outputBoost >= 0 && stabilityCost >= 0 && motivationBoost >= 0 {
			r.assignOutputBoost = outputBoost
			r.assignStabilityCost = stabilityCost
			r.assignMotivationBoost = motivationBoost
		}
	}
}

// WithTrainDeltas sets the train effect policy.
func WithTrainDeltas(skillIncrement int, motivationBoost, cost float64) Option {
	return func(r *Resolver) {
		if skillIncrement > 0 && motivationBoost >= 0 && cost >= 0 {
			r.trainSkillIncrement = skillIncrement
			r.trainMotivationBoost = motivationBoost
			r.trainCost = cost
		}
	}
}

// WithPromoteDeltas sets the promote effect policy.
func WithPromoteDeltas(salaryFactor, motivationBoost float64) Option {
	return func(r *Resolver) {
		if salaryFactor >= 1 && motivationBoost >= 0 {
			r.promoteSalaryFactor = salaryFactor
			r.promoteMotivationBoost = motivationBoost
		}
	}
}

// WithSupportDeltas sets the support effect policy.
func WithSupportDeltas(stabilityBoost, motivationBoost, cost float64) Option {
	return func(r *Resolver) {
		if stabilityBoost >= 0 && motivationBoost >= 0 && cost >= 0 {
			r.supportStabilityBoost = stabilityBoost
			r.supportMotivationBoost = motivationBoost
			r.supportCost = cost
		}
	}
}

// WithSeveranceRate sets the fraction of annual salary paid on fire.
func WithSeveranceRate(rate float64) Option {
	return func(r *Resolver) {
		if rate >= 0 && rate <= 1 {
			r.severanceRate = rate
		}
	}
}

// WithSkillBounds keeps the resolver's clamp and productivity scale in
// step with the generator.
func WithSkillBounds(budget, max int) Option {
	return func(r *Resolver) {
		if budget > 0 && max > 0 {
			r.skillBudget = budget
			r.skillMax = max
		}
	}
}
