package types_test

import (
	"testing"

	"github.com/okian/corposim/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseCompetency(t *testing.T) {
	Convey("Given the fixed competency set", t, func() {
		Convey("When parsing every known name", func() {
			for _, c := range types.Competencies() {
				parsed, err := types.ParseCompetency(string(c))
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, c)
			}
		})

		Convey("When parsing an unknown name", func() {
			_, err := types.ParseCompetency("charisma")

			Convey("Then the input is rejected", func() {
				So(err, ShouldWrap, types.ErrInvalidInput)
			})
		})

		Convey("Then the ordering stays fixed", func() {
			So(types.Competencies(), ShouldResemble, []types.Competency{
				types.CompetencyTechnical,
				types.CompetencyCreativity,
				types.CompetencyCommunication,
				types.CompetencyOrganisation,
				types.CompetencyAutonomy,
			})
		})
	})
}

func TestParseActionKind(t *testing.T) {
	Convey("Given the directive vocabulary", t, func() {
		Convey("When parsing every known kind", func() {
			for _, k := range []types.ActionKind{
				types.ActionAssignTasks,
				types.ActionTrain,
				types.ActionPromote,
				types.ActionFire,
				types.ActionSupport,
			} {
				parsed, err := types.ParseActionKind(string(k))
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, k)
			}
		})

		Convey("When parsing an unknown kind", func() {
			_, err := types.ParseActionKind("demote")

			Convey("Then the input is rejected", func() {
				So(err, ShouldWrap, types.ErrInvalidInput)
			})
		})
	})
}

func TestAutonomyTierNext(t *testing.T) {
	Convey("Given the autonomy ladder", t, func() {
		Convey("When stepping up from each tier", func() {
			So(types.AutonomyLow.Next(), ShouldEqual, types.AutonomyMedium)
			So(types.AutonomyMedium.Next(), ShouldEqual, types.AutonomyHigh)

			Convey("Then high clamps at high", func() {
				So(types.AutonomyHigh.Next(), ShouldEqual, types.AutonomyHigh)
			})
		})
	})
}

func TestSectors(t *testing.T) {
	Convey("Given the sector set", t, func() {
		Convey("Then exactly four sectors are assignable", func() {
			So(types.Sectors(), ShouldHaveLength, 4)
			So(types.Sectors(), ShouldNotContain, types.SectorNone)
		})
	})
}
