// Package recruit generates interview-ready candidates, scripts their
// interview replies, and finalizes hiring against the energy ledger.
package recruit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/okian/corposim/internal/domain/energy"
	"github.com/okian/corposim/internal/domain/genesis"
	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
)

// Default recruitment limits. Runtime values come from the config surface.
const (
	defaultMaxCandidates = 6
)

// CandidatePool returns the recruitment-specific role pool. It skews
// toward specialists compared to the founding pool.
func CandidatePool() []genesis.RoleSlot {
	return []genesis.RoleSlot{
		{Role: "Engineer", Sector: types.SectorOperations},
		{Role: "Growth Lead", Sector: types.SectorMarketing},
		{Role: "Analyst", Sector: types.SectorFinance},
		{Role: "Researcher", Sector: types.SectorResearch},
		{Role: "Generalist", Sector: types.SectorNone},
	}
}

// Engine drives the recruitment flow.
type Engine struct {
	gen           *genesis.Generator
	ledger        *energy.Ledger
	maxCandidates int
	idSource      func() string
}

// New creates a recruitment engine backed by an attribute generator and
// the energy ledger.
func New(gen *genesis.Generator, ledger *energy.Ledger, opts ...Option) *Engine {
	e := &Engine{
		gen:           gen,
		ledger:        ledger,
		maxCandidates: defaultMaxCandidates,
		idSource:      uuid.NewString,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// GenerateCandidates produces count interview-ready candidate profiles.
// Candidates are transient: their ids are placeholders until hiring
// assigns a durable identity.
func (e *Engine) GenerateCandidates(count int) ([]model.Candidate, error) {
	if count < 1 || count > e.maxCandidates {
		return nil, fmt.Errorf("%w: candidate count must be in [1,%d]", types.ErrInvalidInput, e.maxCandidates)
	}

	candidates := make([]model.Candidate, 0, count)
	for i := 0; i < count; i++ {
		agent, err := e.gen.GenerateFrom(CandidatePool())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, model.Candidate{Agent: *agent})
	}
	return candidates, nil
}

// Hire finalizes a candidate into the roster. The energy gate runs first;
// on any failure the roster and pool are left untouched. On success the
// candidate receives a durable identity and joins the roster.
func (e *Engine) Hire(state *model.GameState, candidate model.Candidate) (*model.Agent, error) {
	if candidate.Name == "" {
		return nil, fmt.Errorf("%w: candidate has no profile", types.ErrInvalidInput)
	}
	if err := e.validateSkills(candidate); err != nil {
		return nil, err
	}
	if err := e.ledger.CanHire(state); err != nil {
		return nil, err
	}

	hired := candidate.Agent.Clone()
	hired.ID = e.idSource()
	state.Agents = append(state.Agents, hired)
	return hired, nil
}

// validateSkills rejects candidates whose skill vector could not have come
// from the generator: every competency present, each within bounds, the
// whole vector summing to the budget.
func (e *Engine) validateSkills(candidate model.Candidate) error {
	min, max := e.gen.SkillBounds()
	budget := e.gen.SkillBudget()

	if len(candidate.Skills) != len(types.Competencies()) {
		return fmt.Errorf("%w: candidate skill vector must cover the %d competencies",
			types.ErrInvalidInput, len(types.Competencies()))
	}
	sum := 0
	for _, c := range types.Competencies() {
		v, ok := candidate.Skills[c]
		if !ok {
			return fmt.Errorf("%w: candidate is missing the %s competency", types.ErrInvalidInput, c)
		}
		if v < min || v > max {
			return fmt.Errorf("%w: candidate %s skill %d outside [%d,%d]", types.ErrInvalidInput, c, v, min, max)
		}
		sum += v
	}
	if sum != budget {
		return fmt.Errorf("%w: candidate skills sum to %d, budget is %d", types.ErrInvalidInput, sum, budget)
	}
	return nil
}
