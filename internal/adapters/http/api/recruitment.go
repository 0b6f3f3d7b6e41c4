// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/corposim/internal/domain/model"
)

// RecruitmentHandler handles candidate generation, interviews and hiring.
type RecruitmentHandler struct {
	deps Dependencies
}

// NewRecruitmentHandler creates a new recruitment handler.
func NewRecruitmentHandler(deps Dependencies) *RecruitmentHandler {
	return &RecruitmentHandler{deps: deps}
}

// candidatesRequest mirrors the OpenAPI schema for POST /recruitment/candidates.
type candidatesRequest struct {
	Count int `json:"count"`
}

// HandleCandidates handles POST /recruitment/candidates requests.
func (h *RecruitmentHandler) HandleCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "api.recruit_candidates"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req candidatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	candidates, err := h.deps.RecruitCandidates(r.Context(), req.Count)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

// interviewRequest mirrors the OpenAPI schema for POST /recruitment/interview.
type interviewRequest struct {
	Candidate model.Candidate          `json:"candidate"`
	Thread    []model.InterviewMessage `json:"thread"`
}

// interviewResponse carries the candidate's scripted reply.
type interviewResponse struct {
	Reply string `json:"reply"`
}

// HandleInterview handles POST /recruitment/interview requests.
func (h *RecruitmentHandler) HandleInterview(w http.ResponseWriter, r *http.Request) {
	const op = "api.interview"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	reply, err := h.deps.Interview(r.Context(), req.Candidate, req.Thread)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, interviewResponse{Reply: reply})
}

// hireRequest mirrors the OpenAPI schema for POST /recruitment/hire.
type hireRequest struct {
	GameID    string          `json:"game_id"`
	Candidate model.Candidate `json:"candidate"`
}

func (h hireRequest) validate() error {
	if strings.TrimSpace(h.GameID) == "" {
		return errors.New("missing game_id")
	}
	return nil
}

// HandleHire handles POST /recruitment/hire requests.
func (h *RecruitmentHandler) HandleHire(w http.ResponseWriter, r *http.Request) {
	const op = "api.hire"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req hireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	state, err := h.deps.Hire(r.Context(), req.GameID, req.Candidate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
