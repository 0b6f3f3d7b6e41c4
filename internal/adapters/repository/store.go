// Package repository defines the game store interface and errors.
package repository

import (
	"context"
	"time"

	"github.com/okian/corposim/internal/domain/model"
)

// JournalEntry is one recorded manager action. The journal is append-only
// and ordered by (day, index within the day's batch).
type JournalEntry struct {
	GameID     string
	Day        int
	Index      int
	Action     model.ManagerAction
	RecordedAt time.Time
}

// Store provides read/write access to game sessions.
type Store interface {
	// Create registers a new game session.
	// Returns ErrAlreadyExists if the id is already taken.
	Create(ctx context.Context, state *model.GameState) error

	// Get returns the current state of a game.
	// Returns ErrNotFound if the game is unknown.
	Get(ctx context.Context, gameID string) (*model.GameState, error)

	// Save persists a new state for an existing game and appends the
	// actions that produced it to the journal under the given day.
	// Returns ErrNotFound if the game is unknown.
	Save(ctx context.Context, state *model.GameState, actions []model.ManagerAction, day int) error

	// ActionJournal returns every recorded action for a game in order.
	ActionJournal(ctx context.Context, gameID string) ([]JournalEntry, error)

	// Count returns the number of tracked game sessions.
	Count(ctx context.Context) int

	// AgentCount returns the total roster size across all sessions.
	AgentCount(ctx context.Context) int

	// Close releases any resources held by the store.
	Close() error
}
