package model_test

import (
	"testing"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleState() *model.GameState {
	return &model.GameState{
		GameID: "game-1",
		Day:    3,
		Company: model.Company{
			Name: "Atlas Logic",
			Cash: 42,
		},
		Agents: []*model.Agent{
			{
				ID:   "a1",
				Name: "Ada",
				Skills: map[types.Competency]int{
					types.CompetencyTechnical:     6,
					types.CompetencyCreativity:    4,
					types.CompetencyCommunication: 4,
					types.CompetencyOrganisation:  3,
					types.CompetencyAutonomy:      3,
				},
				Strengths:  []types.Competency{types.CompetencyTechnical},
				Weaknesses: []types.Competency{types.CompetencyOrganisation},
				Traits:     []string{"collaborative"},
				Motivation: 0.7,
			},
			{ID: "a2", Name: "Bela"},
			{ID: "a3", Name: "Cid"},
		},
		LastReport: &model.DayReport{
			Day:             2,
			AgentSituation:  []model.AgentInsight{{AgentID: "a1", Name: "Ada"}},
			DecisionsImpact: []string{"trained Ada"},
			Recommendations: []string{"watch morale"},
		},
		EnergyTotal: 120,
	}
}

func TestGameStateClone(t *testing.T) {
	Convey("Given a populated game state", t, func() {
		state := sampleState()

		Convey("When it is cloned", func() {
			cp := state.Clone()

			Convey("Then the copy matches the original", func() {
				So(cp.GameID, ShouldEqual, state.GameID)
				So(cp.Agents, ShouldHaveLength, 3)
				So(cp.Agents[0].Skills[types.CompetencyTechnical], ShouldEqual, 6)
				So(cp.LastReport.Day, ShouldEqual, 2)
			})

			Convey("And mutating the copy leaves the original untouched", func() {
				cp.Agents[0].Skills[types.CompetencyTechnical] = 1
				cp.Agents[0].Traits[0] = "solitary"
				cp.LastReport.Recommendations[0] = "changed"
				cp.Company.Cash = 0

				So(state.Agents[0].Skills[types.CompetencyTechnical], ShouldEqual, 6)
				So(state.Agents[0].Traits[0], ShouldEqual, "collaborative")
				So(state.LastReport.Recommendations[0], ShouldEqual, "watch morale")
				So(state.Company.Cash, ShouldEqual, 42)
			})
		})

		Convey("When a nil state is cloned", func() {
			var nilState *model.GameState

			Convey("Then the clone is nil too", func() {
				So(nilState.Clone(), ShouldBeNil)
			})
		})
	})
}

func TestFindAgent(t *testing.T) {
	Convey("Given a roster", t, func() {
		state := sampleState()

		Convey("When looking up an existing agent", func() {
			a, err := state.FindAgent("a2")

			Convey("Then the agent is returned", func() {
				So(err, ShouldBeNil)
				So(a.Name, ShouldEqual, "Bela")
			})
		})

		Convey("When looking up an unknown agent", func() {
			_, err := state.FindAgent("nope")

			Convey("Then a not-found error is returned", func() {
				So(err, ShouldWrap, types.ErrNotFound)
			})
		})
	})
}

func TestRemoveAgent(t *testing.T) {
	Convey("Given a roster of three", t, func() {
		state := sampleState()

		Convey("When the middle agent is removed", func() {
			ok := state.RemoveAgent("a2")

			Convey("Then the roster shrinks and order holds", func() {
				So(ok, ShouldBeTrue)
				So(state.Agents, ShouldHaveLength, 2)
				So(state.Agents[0].ID, ShouldEqual, "a1")
				So(state.Agents[1].ID, ShouldEqual, "a3")
			})

			Convey("And the removed agent stays gone", func() {
				_, err := state.FindAgent("a2")
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When removing an unknown agent", func() {
			ok := state.RemoveAgent("nope")

			Convey("Then nothing changes", func() {
				So(ok, ShouldBeFalse)
				So(state.Agents, ShouldHaveLength, 3)
			})
		})
	})
}

func TestAgentSkillSum(t *testing.T) {
	Convey("Given an agent with a full skill map", t, func() {
		a := sampleState().Agents[0]

		Convey("When the skills are summed", func() {
			Convey("Then the total covers all five competencies", func() {
				So(a.SkillSum(), ShouldEqual, 20)
			})
		})
	})
}
