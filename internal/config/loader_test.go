package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/corposim/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.EnergyCap, convey.ShouldEqual, 5000)
				convey.So(cfg.StartingAgents, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CORPOSIM_ADDR", ":8080")
			_ = os.Setenv("CORPOSIM_ENERGY_CAP", "4000")
			_ = os.Setenv("CORPOSIM_STARTING_AGENTS", "5")
			_ = os.Setenv("CORPOSIM_TRAIN_COST", "500")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.EnergyCap, convey.ShouldEqual, 4000)
				convey.So(cfg.StartingAgents, convey.ShouldEqual, 5)
				convey.So(cfg.TrainCost, convey.ShouldEqual, 500.0)
			})
		})

		convey.Convey("When an env var breaks validation", func() {
			_ = os.Setenv("CORPOSIM_SKILL_BUDGET", "999")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"CORPOSIM_ADDR",
		"CORPOSIM_ENERGY_CAP",
		"CORPOSIM_STARTING_AGENTS",
		"CORPOSIM_TRAIN_COST",
		"CORPOSIM_SKILL_BUDGET",
		"CORPOSIM_CONFIG",
	} {
		_ = os.Unsetenv(key)
	}
}
