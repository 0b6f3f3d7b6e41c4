// Package insight derives the day's narrative report from resolved state.
package insight

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithThresholds sets the narrative trigger thresholds.
func WithThresholds(lowMotivation, lowStability float64, highErrors, lowEnergyHeadroom int) Option {
	return func(e *Engine) {
		if lowMotivation > 0 {
			e.lowMotivation = lowMotivation
		}
		if lowStability > 0 {
			e.lowStability = lowStability
		}
		if highErrors > 0 {
			e.highErrors = highErrors
		}
		if lowEnergyHeadroom > 0 {
			e.lowEnergyHeadroom = lowEnergyHeadroom
		}
	}
}
