package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if CORPOSIM_CONFIG is set
//  3. env (prefix CORPOSIM_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("CORPOSIM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: CORPOSIM_ADDR, CORPOSIM_ENERGY_CAP, ...
	// Map env keys like CORPOSIM_ENERGY_CAP -> energy_cap (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("CORPOSIM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "corposim_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the engine cannot honor.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SkillMin < 1 || c.SkillMax < c.SkillMin:
		return fmt.Errorf("%w: skill bounds must satisfy 1 <= skill_min <= skill_max", ErrInvalidConfig)
	case c.SkillBudget < 5*c.SkillMin || c.SkillBudget > 5*c.SkillMax:
		return fmt.Errorf("%w: skill_budget must be reachable within the per-competency bounds", ErrInvalidConfig)
	case c.EnergyCap <= 0 || c.EnergyPerHire <= 0:
		return fmt.Errorf("%w: energy_cap and energy_per_hire must be positive", ErrInvalidConfig)
	case c.EnergyInitial > c.EnergyCap:
		return fmt.Errorf("%w: energy_initial must not exceed energy_cap", ErrInvalidConfig)
	case c.StartingAgents < 1:
		return fmt.Errorf("%w: starting_agents must be at least 1", ErrInvalidConfig)
	case c.SalaryMin <= 0 || c.SalaryMax < c.SalaryMin:
		return fmt.Errorf("%w: salary range must satisfy 0 < salary_min <= salary_max", ErrInvalidConfig)
	}
	return nil
}
