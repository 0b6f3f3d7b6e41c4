package simdrive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/corposim/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestPlanDirectives(t *testing.T) {
	Convey("Given a roster with mixed motivation", t, func() {
		agents := []agent{
			{ID: "a1", Motivation: 0.2, Skills: map[string]int{"technical": 5, "creativity": 3}},
			{ID: "a2", Motivation: 0.8, Skills: map[string]int{"technical": 2, "creativity": 6}},
		}

		Convey("When directives are planned", func() {
			directives := planDirectives(agents)

			Convey("Then the demotivated agent gets support", func() {
				So(directives, ShouldHaveLength, 2)
				So(directives[0].AgentID, ShouldEqual, "a1")
				So(directives[0].Action, ShouldEqual, "support")
			})

			Convey("And the other agent trains its weakest skill", func() {
				So(directives[1].AgentID, ShouldEqual, "a2")
				So(directives[1].Action, ShouldEqual, "train")
				So(directives[1].Focus, ShouldEqual, "technical")
			})
		})
	})

	Convey("Given an agent with tied skills", t, func() {
		agents := []agent{
			{ID: "a1", Motivation: 0.9, Skills: map[string]int{"creativity": 4, "autonomy": 4}},
		}

		Convey("When directives are planned", func() {
			directives := planDirectives(agents)

			Convey("Then the tie breaks on competency name", func() {
				So(directives, ShouldHaveLength, 1)
				So(directives[0].Focus, ShouldEqual, "autonomy")
			})
		})
	})

	Convey("Given an agent without skills", t, func() {
		agents := []agent{{ID: "a1", Motivation: 0.9}}

		Convey("When directives are planned", func() {
			directives := planDirectives(agents)

			Convey("Then no directive is issued for it", func() {
				So(directives, ShouldBeEmpty)
			})
		})
	})
}

func TestPickCandidate(t *testing.T) {
	Convey("Given a candidate pool", t, func() {
		pool := []candidate{
			{Name: "low", Motivation: 0.3},
			{Name: "high", Motivation: 0.9},
			{Name: "mid", Motivation: 0.6},
		}

		Convey("When the pick is made", func() {
			pick := pickCandidate(pool)

			Convey("Then the highest motivation wins", func() {
				So(pick, ShouldEqual, 1)
				So(pool[pick].Name, ShouldEqual, "high")
			})
		})
	})

	Convey("Given an empty pool", t, func() {
		Convey("When the pick is made", func() {
			Convey("Then no candidate is selected", func() {
				So(pickCandidate(nil), ShouldEqual, -1)
			})
		})
	})
}

// fakeService stands in for a running server so Run can be exercised
// end to end.
type fakeService struct {
	day     int
	energy  int
	hired   int
	started bool
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/game/start", func(w http.ResponseWriter, _ *http.Request) {
		f.started = true
		f.day = 1
		f.energy = 200
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(f.state())
	})
	mux.HandleFunc("/game/state/", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(f.state())
	})
	mux.HandleFunc("/game/day", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Actions []directive `json:"actions"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		report := dayReport{
			Day:         f.day,
			Results:     businessResults{Revenue: 4, Costs: 3, Net: 1},
			EnergyTotal: f.energy,
			EnergyUsed:  len(req.Actions),
		}
		f.day++
		f.energy -= len(req.Actions)
		json.NewEncoder(w).Encode(report)
	})
	mux.HandleFunc("/recruitment/candidates", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "c1", "name": "Quiet", "motivation": 0.4},
			{"id": "c2", "name": "Eager", "motivation": 0.9},
		})
	})
	mux.HandleFunc("/recruitment/interview", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reply": "I have shipped things."})
	})
	mux.HandleFunc("/recruitment/hire", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Candidate struct {
				Name string `json:"name"`
			} `json:"candidate"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Candidate.Name != "Eager" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(errorBody{Code: "bad_request", Message: "wrong candidate"})
			return
		}
		f.hired++
		json.NewEncoder(w).Encode(f.state())
	})
	mux.HandleFunc("/energy/buy", func(w http.ResponseWriter, _ *http.Request) {
		f.energy += energyBundleUnits
		json.NewEncoder(w).Encode(f.state())
	})
	return mux
}

func (f *fakeService) state() gameState {
	return gameState{
		GameID:      "game-1",
		Day:         f.day,
		Company:     company{Name: "Campaign Corp", Cash: 400},
		Agents:      []agent{{ID: "a1", Name: "Ada", Motivation: 0.7, Skills: map[string]int{"technical": 3, "creativity": 5}}},
		EnergyTotal: f.energy,
	}
}

func TestRun_Campaign(t *testing.T) {
	Convey("Given a fake service and a short campaign", t, func() {
		fake := &fakeService{}
		srv := httptest.NewServer(fake.handler())
		defer srv.Close()

		config := &Config{
			BaseURL:      srv.URL,
			CompanyName:  "Campaign Corp",
			Days:         4,
			RecruitEvery: 2,
			Candidates:   2,
			Timeout:      5 * time.Second,
			OutputFile:   filepath.Join(t.TempDir(), "reports.json"),
		}

		Convey("When the campaign runs", func() {
			err := Run(context.Background(), config)

			Convey("Then it completes and exercises every flow", func() {
				So(err, ShouldBeNil)
				So(fake.started, ShouldBeTrue)
				So(fake.day, ShouldEqual, 5)
				So(fake.hired, ShouldEqual, 2)
			})
		})
	})
}
