package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/corposim/internal/adapters/http/api"
	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDependencies struct {
	state     *model.GameState
	report    *model.DayReport
	cands     []model.Candidate
	reply     string
	err       error
	lastGame  string
	lastUnits int
}

func (m *mockDependencies) StartGame(ctx context.Context, companyName string) (*model.GameState, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func (m *mockDependencies) PlayDay(ctx context.Context, gameID string, actions []model.ManagerAction) (*model.DayReport, error) {
	m.lastGame = gameID
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
}

func (m *mockDependencies) GetState(ctx context.Context, gameID string) (*model.GameState, error) {
	m.lastGame = gameID
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func (m *mockDependencies) RecruitCandidates(ctx context.Context, count int) ([]model.Candidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cands, nil
}

func (m *mockDependencies) Interview(ctx context.Context, candidate model.Candidate, thread []model.InterviewMessage) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockDependencies) Hire(ctx context.Context, gameID string, candidate model.Candidate) (*model.GameState, error) {
	m.lastGame = gameID
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func (m *mockDependencies) BuyEnergy(ctx context.Context, gameID string, units int) (*model.GameState, error) {
	m.lastGame = gameID
	m.lastUnits = units
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDependencies) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"games": 1}})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func sampleState() *model.GameState {
	return &model.GameState{
		GameID:      "game-1",
		Day:         1,
		Company:     model.Company{Name: "Nova Corp", Cash: 10},
		Agents:      []*model.Agent{{ID: "a1", Name: "Nova Core"}},
		EnergyTotal: 200,
	}
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockDependencies{state: sampleState()}
		mux := newMux(deps)

		Convey("Then the health endpoint serves metrics", func() {
			req := httptest.NewRequest("GET", "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And the stats endpoint serves JSON", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "games")
		})
	})
}

func TestStartGameEndpoint(t *testing.T) {
	Convey("Given the game start endpoint", t, func() {
		deps := &mockDependencies{state: sampleState()}
		mux := newMux(deps)

		Convey("When posting a valid request", func() {
			body := strings.NewReader(`{"company_name":"Nova Corp"}`)
			req := httptest.NewRequest("POST", "/game/start", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the new state comes back with 201", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				var state model.GameState
				So(json.Unmarshal(w.Body.Bytes(), &state), ShouldBeNil)
				So(state.GameID, ShouldEqual, "game-1")
			})
		})

		Convey("When the company name is missing", func() {
			req := httptest.NewRequest("POST", "/game/start", strings.NewReader(`{}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest("POST", "/game/start", strings.NewReader(`not-json`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest("GET", "/game/start", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestPlayDayEndpoint(t *testing.T) {
	Convey("Given the day resolution endpoint", t, func() {
		deps := &mockDependencies{report: &model.DayReport{Day: 1}}
		mux := newMux(deps)

		Convey("When posting a batch of actions", func() {
			body := strings.NewReader(`{"game_id":"game-1","actions":[{"agent_id":"a1","action":"train","focus":"creativity"}]}`)
			req := httptest.NewRequest("POST", "/game/day", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the day report comes back", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastGame, ShouldEqual, "game-1")
				var report model.DayReport
				So(json.Unmarshal(w.Body.Bytes(), &report), ShouldBeNil)
				So(report.Day, ShouldEqual, 1)
			})
		})

		Convey("When the game id is missing", func() {
			req := httptest.NewRequest("POST", "/game/day", strings.NewReader(`{"actions":[]}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the game is unknown", func() {
			deps.err = types.ErrNotFound
			body := strings.NewReader(`{"game_id":"ghost","actions":[]}`)
			req := httptest.NewRequest("POST", "/game/day", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestGetStateEndpoint(t *testing.T) {
	Convey("Given the state endpoint", t, func() {
		deps := &mockDependencies{state: sampleState()}
		mux := newMux(deps)

		Convey("When fetching an existing game", func() {
			req := httptest.NewRequest("GET", "/game/state/game-1", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastGame, ShouldEqual, "game-1")
		})

		Convey("When the path has no id", func() {
			req := httptest.NewRequest("GET", "/game/state/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the game is unknown", func() {
			deps.err = types.ErrNotFound
			req := httptest.NewRequest("GET", "/game/state/ghost", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestRecruitmentEndpoints(t *testing.T) {
	Convey("Given the recruitment endpoints", t, func() {
		deps := &mockDependencies{
			state: sampleState(),
			cands: []model.Candidate{{Agent: model.Agent{ID: "c1", Name: "Echo Prime"}}},
			reply: "Hello, I'm Echo Prime.",
		}
		mux := newMux(deps)

		Convey("When requesting candidates", func() {
			body := strings.NewReader(`{"count":1}`)
			req := httptest.NewRequest("POST", "/recruitment/candidates", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			var cands []model.Candidate
			So(json.Unmarshal(w.Body.Bytes(), &cands), ShouldBeNil)
			So(len(cands), ShouldEqual, 1)
		})

		Convey("When the candidate count is rejected", func() {
			deps.err = types.ErrInvalidInput
			req := httptest.NewRequest("POST", "/recruitment/candidates", strings.NewReader(`{"count":99}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When running an interview", func() {
			body := strings.NewReader(`{"candidate":{"id":"c1","name":"Echo Prime"},"thread":[]}`)
			req := httptest.NewRequest("POST", "/recruitment/interview", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Echo Prime")
		})

		Convey("When hiring into a game", func() {
			body := strings.NewReader(`{"game_id":"game-1","candidate":{"id":"c1","name":"Echo Prime"}}`)
			req := httptest.NewRequest("POST", "/recruitment/hire", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastGame, ShouldEqual, "game-1")
		})

		Convey("When the energy pool blocks the hire", func() {
			deps.err = types.ErrResourceExhausted
			body := strings.NewReader(`{"game_id":"game-1","candidate":{"id":"c1","name":"Echo Prime"}}`)
			req := httptest.NewRequest("POST", "/recruitment/hire", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusConflict)
		})
	})
}

func TestBuyEnergyEndpoint(t *testing.T) {
	Convey("Given the energy purchase endpoint", t, func() {
		deps := &mockDependencies{state: sampleState()}
		mux := newMux(deps)

		Convey("When buying a bundle", func() {
			body := strings.NewReader(`{"game_id":"game-1","units":100}`)
			req := httptest.NewRequest("POST", "/energy/buy", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastUnits, ShouldEqual, 100)
		})

		Convey("When the unit count is omitted", func() {
			body := strings.NewReader(`{"game_id":"game-1"}`)
			req := httptest.NewRequest("POST", "/energy/buy", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.lastUnits, ShouldEqual, 0)
		})

		Convey("When the purchase exceeds the cap", func() {
			deps.err = types.ErrResourceExhausted
			body := strings.NewReader(`{"game_id":"game-1","units":99999}`)
			req := httptest.NewRequest("POST", "/energy/buy", body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusConflict)
		})

		Convey("When the game id is missing", func() {
			req := httptest.NewRequest("POST", "/energy/buy", strings.NewReader(`{"units":100}`))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
