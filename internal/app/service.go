// Package service provides the core simulation service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	repository "github.com/okian/corposim/internal/adapters/repository"
	"github.com/okian/corposim/internal/config"
	"github.com/okian/corposim/internal/domain/business"
	"github.com/okian/corposim/internal/domain/energy"
	"github.com/okian/corposim/internal/domain/genesis"
	"github.com/okian/corposim/internal/domain/insight"
	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/recruit"
	"github.com/okian/corposim/internal/domain/resolve"
	"github.com/okian/corposim/internal/domain/types"
	"github.com/okian/corposim/pkg/logger"
	"github.com/okian/corposim/pkg/metrics"
)

// Service implements the API dependencies for the simulation engine.
// Day resolution and roster mutation are serialized per game session;
// different sessions proceed independently.
type Service struct {
	mu sync.RWMutex

	// Core components
	store         repository.Store
	generator     *genesis.Generator
	resolver      *resolve.Resolver
	businessModel *business.Model
	insightEngine *insight.Engine
	ledger        *energy.Ledger
	recruiter     *recruit.Engine

	// Configuration
	cfg  *config.Config
	seed int64

	// Per-game serialization
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTuning sets the simulation tuning configuration.
func WithTuning(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithStore injects a pre-built game store, bypassing the DBPath wiring.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSeed pins the simulation RNG, overriding the configured seed.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		locks: make(map[string]*sync.Mutex),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.cfg == nil {
		s.cfg = config.New(ctx)
	}

	s.logger.Info(ctx, "starting simulation service...")

	seed := s.cfg.RandomSeed
	if s.seed != 0 {
		seed = s.seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Initialize components
	if s.store == nil {
		if s.cfg.DBPath != "" {
			store, err := repository.NewSQLiteStore(ctx, s.cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open game store: %w", err)
			}
			s.store = store
			s.logger.Info(ctx, "using sqlite store", logger.String("path", s.cfg.DBPath))
		} else {
			s.store = repository.NewMemStore(ctx)
			s.logger.Info(ctx, "using in-memory store")
		}
	}

	s.generator = genesis.New(
		genesis.WithSeed(seed),
		genesis.WithSkillBounds(s.cfg.SkillBudget, s.cfg.SkillMin, s.cfg.SkillMax),
		genesis.WithBaselines(s.cfg.MotivationBaseline, s.cfg.StabilityBaseline, s.cfg.BaselineJitter),
		genesis.WithSalaryRange(s.cfg.SalaryMin, s.cfg.SalaryMax),
	)
	s.resolver = resolve.New(
		resolve.WithAssignDeltas(s.cfg.AssignOutputBoost, s.cfg.AssignStabilityCost, s.cfg.AssignMotivationBoost),
		resolve.WithTrainDeltas(s.cfg.TrainSkillIncrement, s.cfg.TrainMotivationBoost, s.cfg.TrainCost),
		resolve.WithPromoteDeltas(s.cfg.PromoteSalaryFactor, s.cfg.PromoteMotivationBoost),
		resolve.WithSupportDeltas(s.cfg.SupportStabilityBoost, s.cfg.SupportMotivationBoost, s.cfg.SupportCost),
		resolve.WithSeveranceRate(s.cfg.SeveranceRate),
		resolve.WithSkillBounds(s.cfg.SkillBudget, s.cfg.SkillMax),
	)
	s.businessModel = business.New(
		business.WithSeed(seed),
		business.WithSectorMultipliers(sectorMultipliers(s.cfg.SectorMultipliers), s.cfg.UnassignedMultiplier),
		business.WithRevenueTuning(s.cfg.RevenuePerPoint, s.cfg.ClientRevenueDivisor),
		business.WithCostTuning(s.cfg.MaintenanceBase, s.cfg.MaintenancePerAgent, s.cfg.SalaryDayDivisor),
	)
	s.insightEngine = insight.New(
		insight.WithThresholds(s.cfg.LowMotivationThreshold, s.cfg.LowStabilityThreshold,
			s.cfg.HighErrorsThreshold, s.cfg.LowEnergyHeadroom),
	)
	s.ledger = energy.New(
		energy.WithCap(s.cfg.EnergyCap),
		energy.WithPerHire(s.cfg.EnergyPerHire),
		energy.WithUnitPrice(s.cfg.EnergyUnitPrice),
		energy.WithBundle(s.cfg.EnergyBundle),
	)
	s.recruiter = recruit.New(s.generator, s.ledger,
		recruit.WithMaxCandidates(s.cfg.MaxCandidates),
	)

	s.started = true
	s.logger.Info(ctx, "simulation service started",
		logger.Int("startingAgents", s.cfg.StartingAgents),
		logger.Int("energyInitial", s.cfg.EnergyInitial),
		logger.Int("energyCap", s.cfg.EnergyCap),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping simulation service...")

	if s.store != nil {
		_ = s.store.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "simulation service stopped")
}

// StartGame creates a new game session with a generated founding roster.
func (s *Service) StartGame(ctx context.Context, companyName string) (*model.GameState, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, fmt.Errorf("%w: company name is required", types.ErrInvalidInput)
	}

	agents := make([]*model.Agent, 0, s.cfg.StartingAgents)
	for i := 0; i < s.cfg.StartingAgents; i++ {
		agent, err := s.generator.Generate()
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	state := &model.GameState{
		GameID:      uuid.NewString(),
		Day:         1,
		Company:     model.Company{Name: companyName, Cash: s.cfg.InitialCash},
		Agents:      agents,
		EnergyTotal: s.cfg.EnergyInitial,
	}
	state.LastReport = s.insightEngine.FoundingReport(state, s.ledger.Used(len(state.Agents)))

	if err := s.store.Create(ctx, state); err != nil {
		return nil, translateStoreErr(err, state.GameID)
	}

	metrics.RecordGameStarted()
	s.logger.Info(ctx, "game started",
		logger.String("gameID", state.GameID),
		logger.String("company", companyName),
		logger.Int("agents", len(agents)),
	)
	return state, nil
}

// PlayDay applies a batch of manager actions and resolves one day.
// The stored state only advances when the whole day resolves cleanly;
// per-action failures are reported inside the day's report instead.
func (s *Service) PlayDay(ctx context.Context, gameID string, actions []model.ManagerAction) (*model.DayReport, error) {
	unlock := s.lockGame(gameID)
	defer unlock()

	state, err := s.store.Get(ctx, gameID)
	if err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	start := time.Now()
	outcome, err := s.resolver.ResolveDay(state, actions)
	if err != nil {
		return nil, err
	}

	results := s.businessModel.ComputeResults(state, outcome.OutputBoosts, outcome.OneTimeCosts)
	resolvedDay := state.Day
	report := s.insightEngine.BuildReport(resolvedDay, state, outcome, results, s.ledger.Used(len(state.Agents)))
	state.LastReport = report
	state.Day++

	if err := s.store.Save(ctx, state, actions, resolvedDay); err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	metrics.RecordDayResolved()
	metrics.RecordResolveLatency(float64(time.Since(start).Milliseconds()))
	for _, delta := range outcome.Deltas {
		metrics.RecordActionApplied(string(delta.Kind))
	}
	for range outcome.Failures {
		metrics.RecordActionFailed()
	}

	s.logger.Info(ctx, "day resolved",
		logger.String("gameID", gameID),
		logger.Int("day", resolvedDay),
		logger.Int("actions", len(actions)),
		logger.Int("failures", len(outcome.Failures)),
		logger.Float64("net", results.Net),
	)
	return report, nil
}

// GetState returns the current state of a game session.
func (s *Service) GetState(ctx context.Context, gameID string) (*model.GameState, error) {
	state, err := s.store.Get(ctx, gameID)
	if err != nil {
		return nil, translateStoreErr(err, gameID)
	}
	return state, nil
}

// RecruitCandidates generates interview-ready candidate profiles.
func (s *Service) RecruitCandidates(ctx context.Context, count int) ([]model.Candidate, error) {
	candidates, err := s.recruiter.GenerateCandidates(count)
	if err != nil {
		return nil, err
	}
	metrics.RecordCandidatesGenerated(len(candidates))
	return candidates, nil
}

// Interview produces the candidate's scripted reply to the thread.
func (s *Service) Interview(ctx context.Context, candidate model.Candidate, thread []model.InterviewMessage) (string, error) {
	reply, err := s.recruiter.Interview(candidate, thread)
	if err != nil {
		return "", err
	}
	metrics.RecordInterviewReply()
	return reply, nil
}

// Hire finalizes a candidate into a game's roster.
func (s *Service) Hire(ctx context.Context, gameID string, candidate model.Candidate) (*model.GameState, error) {
	unlock := s.lockGame(gameID)
	defer unlock()

	state, err := s.store.Get(ctx, gameID)
	if err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	hired, err := s.recruiter.Hire(state, candidate)
	if err != nil {
		if errors.Is(err, types.ErrResourceExhausted) {
			metrics.RecordHireRejected()
		}
		return nil, err
	}

	if err := s.store.Save(ctx, state, nil, state.Day); err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	metrics.RecordHireCompleted()
	s.logger.Info(ctx, "candidate hired",
		logger.String("gameID", gameID),
		logger.String("agentID", hired.ID),
		logger.String("name", hired.Name),
		logger.String("role", hired.Role),
	)
	return state, nil
}

// BuyEnergy converts company cash into energy units. A zero units request
// means "one standard bundle"; the wire signature leaves units optional.
func (s *Service) BuyEnergy(ctx context.Context, gameID string, units int) (*model.GameState, error) {
	unlock := s.lockGame(gameID)
	defer unlock()

	if units == 0 {
		units = s.ledger.Bundle()
	}

	state, err := s.store.Get(ctx, gameID)
	if err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	if err := s.ledger.Buy(state, units); err != nil {
		metrics.RecordEnergyPurchaseFailed()
		return nil, err
	}

	if err := s.store.Save(ctx, state, nil, state.Day); err != nil {
		return nil, translateStoreErr(err, gameID)
	}

	metrics.RecordEnergyPurchase()
	s.logger.Info(ctx, "energy purchased",
		logger.String("gameID", gameID),
		logger.Int("units", units),
		logger.Int("energyTotal", state.EnergyTotal),
		logger.Float64("cash", state.Company.Cash),
	)
	return state, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":        s.started,
		"energyCap":      0,
		"energyPerHire":  0,
		"startingAgents": 0,
	}
	if s.cfg != nil {
		stats["energyCap"] = s.cfg.EnergyCap
		stats["energyPerHire"] = s.cfg.EnergyPerHire
		stats["startingAgents"] = s.cfg.StartingAgents
	}

	if s.started {
		games := s.store.Count(ctx)
		agents := s.store.AgentCount(ctx)

		stats["totalGames"] = games
		stats["totalAgents"] = agents

		// Update metrics
		metrics.UpdateActiveGames(games)
		metrics.UpdateTotalAgents(agents)
	}

	return stats
}

// lockGame serializes mutation of one game session. Lock entries are kept
// for the life of the process; game count stays small enough not to care.
func (s *Service) lockGame(gameID string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[gameID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// translateStoreErr maps store sentinels onto the domain error taxonomy.
func translateStoreErr(err error, gameID string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: game %s", types.ErrNotFound, gameID)
	case errors.Is(err, repository.ErrAlreadyExists):
		return fmt.Errorf("%w: game %s already exists", types.ErrInvalidInput, gameID)
	default:
		return err
	}
}

func sectorMultipliers(raw map[string]float64) map[types.Sector]float64 {
	out := make(map[types.Sector]float64, len(raw))
	for name, mult := range raw {
		out[types.Sector(name)] = mult
	}
	return out
}
