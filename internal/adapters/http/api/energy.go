// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// EnergyHandler handles energy purchase requests.
type EnergyHandler struct {
	deps Dependencies
}

// NewEnergyHandler creates a new energy handler.
func NewEnergyHandler(deps Dependencies) *EnergyHandler {
	return &EnergyHandler{deps: deps}
}

// buyEnergyRequest mirrors the OpenAPI schema for POST /energy/buy.
type buyEnergyRequest struct {
	GameID string `json:"game_id"`
	Units  int    `json:"units"`
}

func (b buyEnergyRequest) validate() error {
	if strings.TrimSpace(b.GameID) == "" {
		return errors.New("missing game_id")
	}
	return nil
}

// HandleBuyEnergy handles POST /energy/buy requests.
func (h *EnergyHandler) HandleBuyEnergy(w http.ResponseWriter, r *http.Request) {
	const op = "api.buy_energy"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req buyEnergyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	state, err := h.deps.BuyEnergy(r.Context(), req.GameID, req.Units)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
