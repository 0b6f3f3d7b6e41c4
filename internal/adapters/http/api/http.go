// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// StartGame creates a new game session with a generated founding roster.
	StartGame(ctx context.Context, companyName string) (*model.GameState, error)

	// PlayDay applies a batch of manager actions and resolves one day.
	PlayDay(ctx context.Context, gameID string, actions []model.ManagerAction) (*model.DayReport, error)

	// GetState returns the current state of a game session.
	GetState(ctx context.Context, gameID string) (*model.GameState, error)

	// RecruitCandidates generates interview-ready candidate profiles.
	RecruitCandidates(ctx context.Context, count int) ([]model.Candidate, error)

	// Interview produces the candidate's scripted reply to the thread.
	Interview(ctx context.Context, candidate model.Candidate, thread []model.InterviewMessage) (string, error)

	// Hire finalizes a candidate into a game's roster.
	Hire(ctx context.Context, gameID string, candidate model.Candidate) (*model.GameState, error)

	// BuyEnergy converts company cash into energy units.
	BuyEnergy(ctx context.Context, gameID string, units int) (*model.GameState, error)
}

// Server wires HTTP routes for the simulation API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	gameHandler        *GameHandler
	recruitmentHandler *RecruitmentHandler
	energyHandler      *EnergyHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		gameHandler:        NewGameHandler(deps),
		recruitmentHandler: NewRecruitmentHandler(deps),
		energyHandler:      NewEnergyHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/game/start", MetricsMiddleware(s.gameHandler.HandleStartGame, "game_start"))
	mux.HandleFunc("/game/day", MetricsMiddleware(s.gameHandler.HandlePlayDay, "game_day"))
	mux.HandleFunc("/game/state/", MetricsMiddleware(s.gameHandler.HandleGetState, "game_state"))
	mux.HandleFunc("/recruitment/candidates", MetricsMiddleware(s.recruitmentHandler.HandleCandidates, "recruitment_candidates"))
	mux.HandleFunc("/recruitment/interview", MetricsMiddleware(s.recruitmentHandler.HandleInterview, "recruitment_interview"))
	mux.HandleFunc("/recruitment/hire", MetricsMiddleware(s.recruitmentHandler.HandleHire, "recruitment_hire"))
	mux.HandleFunc("/energy/buy", MetricsMiddleware(s.energyHandler.HandleBuyEnergy, "energy_buy"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinels to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, types.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, types.ErrResourceExhausted):
		writeError(w, http.StatusConflict, "resource_exhausted", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
