package config_test

import (
	"context"
	"testing"

	"github.com/okian/corposim/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.StartingAgents, convey.ShouldEqual, 3)
			convey.So(cfg.InitialCash, convey.ShouldEqual, 10)
			convey.So(cfg.SkillBudget, convey.ShouldEqual, 20)
			convey.So(cfg.SkillMin, convey.ShouldEqual, 1)
			convey.So(cfg.SkillMax, convey.ShouldEqual, 10)
			convey.So(cfg.EnergyCap, convey.ShouldEqual, 5000)
			convey.So(cfg.EnergyPerHire, convey.ShouldEqual, 40)
			convey.So(cfg.TrainSkillIncrement, convey.ShouldEqual, 1)
			convey.So(cfg.SeveranceRate, convey.ShouldEqual, 0.25)
		})

		convey.Convey("Then the sector multipliers should cover the four sectors", func() {
			convey.So(cfg.SectorMultipliers, convey.ShouldContainKey, "operations")
			convey.So(cfg.SectorMultipliers, convey.ShouldContainKey, "marketing")
			convey.So(cfg.SectorMultipliers, convey.ShouldContainKey, "finance")
			convey.So(cfg.SectorMultipliers, convey.ShouldContainKey, "research")
		})

		convey.Convey("Then defaults should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		ctx := context.Background()

		convey.Convey("When the skill budget is unreachable", func() {
			cfg := config.New(ctx)
			cfg.SkillBudget = 100

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When initial energy exceeds the cap", func() {
			cfg := config.New(ctx)
			cfg.EnergyInitial = cfg.EnergyCap + 1

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the salary range is inverted", func() {
			cfg := config.New(ctx)
			cfg.SalaryMin = cfg.SalaryMax + 1

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
