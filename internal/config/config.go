// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Every tunable simulation constant lives here, not as a hidden magic
//   number inside a domain package.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process and simulation tuning configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath enables the SQLite-backed game store when non-empty.
	// Empty keeps games in memory only.
	DBPath string `koanf:"db_path"`

	// RandomSeed pins the simulation RNG when non-zero. Zero draws a
	// time-based seed; tests always pin.
	RandomSeed int64 `koanf:"random_seed"`

	// StartingAgents sets the roster size at game creation.
	StartingAgents int `koanf:"starting_agents"`

	// InitialCash is the Company-creation cash stake.
	InitialCash float64 `koanf:"initial_cash"`

	// Skill vector constraints: each of the five competencies starts in
	// [SkillMin, SkillMax] and the vector sums to SkillBudget at creation.
	SkillBudget int `koanf:"skill_budget"`
	SkillMin    int `koanf:"skill_min"`
	SkillMax    int `koanf:"skill_max"`

	// MotivationBaseline and StabilityBaseline seed new agents, jittered
	// by BaselineJitter in both directions.
	MotivationBaseline float64 `koanf:"motivation_baseline"`
	StabilityBaseline  float64 `koanf:"stability_baseline"`
	BaselineJitter     float64 `koanf:"baseline_jitter"`

	// Salary range for generated agents; the per-day cost divides the
	// annual salary by SalaryDayDivisor.
	SalaryMin        int `koanf:"salary_min"`
	SalaryMax        int `koanf:"salary_max"`
	SalaryDayDivisor int `koanf:"salary_day_divisor"`

	// Per-kind action deltas.
	AssignOutputBoost     float64 `koanf:"assign_output_boost"`
	AssignStabilityCost   float64 `koanf:"assign_stability_cost"`
	AssignMotivationBoost float64 `koanf:"assign_motivation_boost"`

	TrainSkillIncrement  int     `koanf:"train_skill_increment"`
	TrainMotivationBoost float64 `koanf:"train_motivation_boost"`
	TrainCost            float64 `koanf:"train_cost"`

	PromoteSalaryFactor    float64 `koanf:"promote_salary_factor"`
	PromoteMotivationBoost float64 `koanf:"promote_motivation_boost"`

	SupportStabilityBoost  float64 `koanf:"support_stability_boost"`
	SupportMotivationBoost float64 `koanf:"support_motivation_boost"`
	SupportCost            float64 `koanf:"support_cost"`

	// SeveranceRate is the fraction of annual salary paid out on fire.
	SeveranceRate float64 `koanf:"severance_rate"`

	// SectorMultipliers weight per-sector revenue contribution;
	// UnassignedMultiplier applies to agents outside any sector.
	SectorMultipliers    map[string]float64 `koanf:"sector_multipliers"`
	UnassignedMultiplier float64            `koanf:"unassigned_multiplier"`

	// Revenue and derived-counter tuning.
	RevenuePerPoint      float64 `koanf:"revenue_per_point"`
	ClientRevenueDivisor float64 `koanf:"client_revenue_divisor"`
	MaintenanceBase      float64 `koanf:"maintenance_base"`
	MaintenancePerAgent  float64 `koanf:"maintenance_per_agent"`

	// Energy ledger tuning.
	EnergyCap       int     `koanf:"energy_cap"`
	EnergyPerHire   int     `koanf:"energy_per_hire"`
	EnergyInitial   int     `koanf:"energy_initial"`
	EnergyBundle    int     `koanf:"energy_bundle"`
	EnergyUnitPrice float64 `koanf:"energy_unit_price"`

	// Recruitment limits.
	MaxCandidates int `koanf:"max_candidates"`

	// Insight engine thresholds.
	LowMotivationThreshold float64 `koanf:"low_motivation_threshold"`
	LowStabilityThreshold  float64 `koanf:"low_stability_threshold"`
	HighErrorsThreshold    int     `koanf:"high_errors_threshold"`
	LowEnergyHeadroom      int     `koanf:"low_energy_headroom"`
}

// New creates a Config with documented defaults. Context is accepted first
// to satisfy the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel: "info",
		Addr:     ":9080",
		DBPath:   "",

		RandomSeed: 0,

		StartingAgents: 3,
		InitialCash:    10,

		SkillBudget: 20,
		SkillMin:    1,
		SkillMax:    10,

		MotivationBaseline: 50,
		StabilityBaseline:  50,
		BaselineJitter:     8,

		SalaryMin:        55_000,
		SalaryMax:        110_000,
		SalaryDayDivisor: 260,

		AssignOutputBoost:     0.15,
		AssignStabilityCost:   2,
		AssignMotivationBoost: 3,

		TrainSkillIncrement:  1,
		TrainMotivationBoost: 6,
		TrainCost:            800,

		PromoteSalaryFactor:    1.10,
		PromoteMotivationBoost: 10,

		SupportStabilityBoost:  12,
		SupportMotivationBoost: 4,
		SupportCost:            150,

		SeveranceRate: 0.25,

		SectorMultipliers: map[string]float64{
			"operations": 1.0,
			"marketing":  1.1,
			"finance":    0.9,
			"research":   0.8,
		},
		UnassignedMultiplier: 0.6,

		RevenuePerPoint:      1200,
		ClientRevenueDivisor: 4500,
		MaintenanceBase:      400,
		MaintenancePerAgent:  60,

		EnergyCap:       5000,
		EnergyPerHire:   40,
		EnergyInitial:   200,
		EnergyBundle:    100,
		EnergyUnitPrice: 2.5,

		MaxCandidates: 6,

		LowMotivationThreshold: 40,
		LowStabilityThreshold:  35,
		HighErrorsThreshold:    3,
		LowEnergyHeadroom:      40,
	}
	return c
}
