// Package repository defines the game store interface and errors.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/pkg/metrics"
)

// MemStore is an in-memory Store implementation. Game states are deep
// copied on the way in and on the way out so callers never alias the
// stored state.
type MemStore struct {
	settings

	mu      sync.RWMutex
	games   map[string]*model.GameState
	journal map[string][]JournalEntry

	wg       sync.WaitGroup
	stopChan chan struct{}
}

// NewMemStore constructs an in-memory store with configuration options.
func NewMemStore(ctx context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		settings: defaultSettings(),
		games:    make(map[string]*model.GameState),
		journal:  make(map[string][]JournalEntry),
		stopChan: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(&s.settings)
	}

	s.startMetricsUpdater(ctx)
	return s
}

// Create implements Store.Create.
func (s *MemStore) Create(ctx context.Context, state *model.GameState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[state.GameID]; ok {
		metrics.RecordErrorByComponent("repository", "already_exists")
		return ErrAlreadyExists
	}
	s.games[state.GameID] = state.Clone()
	return nil
}

// Get implements Store.Get.
func (s *MemStore) Get(ctx context.Context, gameID string) (*model.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.games[gameID]
	if !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, ErrNotFound
	}
	return state.Clone(), nil
}

// Save implements Store.Save.
func (s *MemStore) Save(ctx context.Context, state *model.GameState, actions []model.ManagerAction, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[state.GameID]; !ok {
		metrics.RecordErrorByComponent("repository", "not_found")
		return ErrNotFound
	}
	s.games[state.GameID] = state.Clone()

	now := time.Now().UTC()
	for i, action := range actions {
		s.journal[state.GameID] = append(s.journal[state.GameID], JournalEntry{
			GameID:     state.GameID,
			Day:        day,
			Index:      i,
			Action:     action,
			RecordedAt: now,
		})
	}
	return nil
}

// ActionJournal implements Store.ActionJournal.
func (s *MemStore) ActionJournal(ctx context.Context, gameID string) ([]JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.games[gameID]; !ok {
		return nil, ErrNotFound
	}
	entries := make([]JournalEntry, len(s.journal[gameID]))
	copy(entries, s.journal[gameID])
	return entries, nil
}

// Count returns the number of tracked game sessions.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// AgentCount returns the total roster size across all sessions.
func (s *MemStore) AgentCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, state := range s.games {
		total += len(state.Agents)
	}
	return total
}

// Close gracefully shuts down the background metrics goroutine.
func (s *MemStore) Close() error {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
	s.wg.Wait()
	return nil
}

// startMetricsUpdater starts a background goroutine that updates store metrics.
func (s *MemStore) startMetricsUpdater(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.metricsUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopChan:
				return
			case <-ticker.C:
				metrics.UpdateActiveGames(s.Count(ctx))
				metrics.UpdateTotalAgents(s.AgentCount(ctx))
			}
		}
	}()
}
