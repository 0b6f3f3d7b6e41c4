// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/corposim/internal/domain/model"
)

// GameHandler handles game lifecycle requests.
type GameHandler struct {
	deps Dependencies
}

// NewGameHandler creates a new game handler.
func NewGameHandler(deps Dependencies) *GameHandler {
	return &GameHandler{deps: deps}
}

// startGameRequest mirrors the OpenAPI schema for POST /game/start.
type startGameRequest struct {
	CompanyName string `json:"company_name"`
}

func (g startGameRequest) validate() error {
	if strings.TrimSpace(g.CompanyName) == "" {
		return errors.New("missing company_name")
	}
	return nil
}

// HandleStartGame handles POST /game/start requests.
func (h *GameHandler) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	const op = "api.start_game"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req startGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	state, err := h.deps.StartGame(r.Context(), req.CompanyName)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, state)
}

// playDayRequest mirrors the OpenAPI schema for POST /game/day.
type playDayRequest struct {
	GameID  string                `json:"game_id"`
	Actions []model.ManagerAction `json:"actions"`
}

func (p playDayRequest) validate() error {
	if strings.TrimSpace(p.GameID) == "" {
		return errors.New("missing game_id")
	}
	return nil
}

// HandlePlayDay handles POST /game/day requests.
func (h *GameHandler) HandlePlayDay(w http.ResponseWriter, r *http.Request) {
	const op = "api.play_day"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req playDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	report, err := h.deps.PlayDay(r.Context(), req.GameID, req.Actions)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// HandleGetState handles GET /game/state/{game_id} requests.
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /game/state/
	gameID := strings.TrimPrefix(r.URL.Path, "/game/state/")
	if gameID == "" || strings.Contains(gameID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	state, err := h.deps.GetState(r.Context(), gameID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
