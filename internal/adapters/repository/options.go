// Package repository defines the game store interface and errors.
package repository

import "time"

// settings hold the tunables shared by every Store implementation.
type settings struct {
	metricsUpdateInterval time.Duration
}

func defaultSettings() settings {
	return settings{
		metricsUpdateInterval: 5 * time.Second,
	}
}

// Option applies a configuration option to a store.
type Option func(*settings)

// WithMetricsUpdateInterval sets the interval for background metrics updates.
func WithMetricsUpdateInterval(interval time.Duration) Option {
	return func(s *settings) {
		if interval > 0 {
			s.metricsUpdateInterval = interval
		}
	}
}
