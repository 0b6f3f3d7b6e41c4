// Package repository defines the game store interface and errors.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okian/corposim/internal/domain/model"
	"github.com/okian/corposim/internal/domain/types"
	"github.com/okian/corposim/pkg/metrics"
)

// SQLiteStore is a durable Store implementation. The full game state is
// serialized as a JSON document per session; manager actions go to a
// separate append-only journal table.
type SQLiteStore struct {
	settings

	db *sql.DB

	wg       sync.WaitGroup
	stopChan chan struct{}
}

// NewSQLiteStore opens (or creates) the database at path and prepares
// the schema.
func NewSQLiteStore(ctx context.Context, path string, opts ...Option) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection sidesteps SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteStore{
		settings: defaultSettings(),
		db:       db,
		stopChan: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(&s.settings)
	}

	s.startMetricsUpdater(ctx)
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL suits the save-after-every-day write pattern.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			game_id    TEXT PRIMARY KEY,
			day        INTEGER NOT NULL,
			state      TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS manager_actions (
			game_id     TEXT NOT NULL,
			day         INTEGER NOT NULL,
			idx         INTEGER NOT NULL,
			agent_id    TEXT NOT NULL,
			action      TEXT NOT NULL,
			focus       TEXT NOT NULL,
			recorded_at TEXT NOT NULL,
			PRIMARY KEY (game_id, day, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_manager_actions_game
			ON manager_actions (game_id, day, idx);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Create implements Store.Create.
func (s *SQLiteStore) Create(ctx context.Context, state *model.GameState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeState, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO games (game_id, day, state, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		state.GameID, state.Day, string(doc), now, now)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "sqlite_write")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		metrics.RecordErrorByComponent("repository", "already_exists")
		return ErrAlreadyExists
	}
	return nil
}

// Get implements Store.Get.
func (s *SQLiteStore) Get(ctx context.Context, gameID string) (*model.GameState, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM games WHERE game_id = ?`, gameID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordErrorByComponent("repository", "not_found")
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state model.GameState
	if err := json.Unmarshal([]byte(doc), &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeState, err)
	}
	return &state, nil
}

// Save implements Store.Save.
func (s *SQLiteStore) Save(ctx context.Context, state *model.GameState, actions []model.ManagerAction, day int) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeState, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := tx.ExecContext(ctx,
		`UPDATE games SET day = ?, state = ?, updated_at = ? WHERE game_id = ?`,
		state.Day, string(doc), now, state.GameID)
	if err != nil {
		metrics.RecordErrorByComponent("repository", "sqlite_write")
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		metrics.RecordErrorByComponent("repository", "not_found")
		return ErrNotFound
	}

	for i, action := range actions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO manager_actions (game_id, day, idx, agent_id, action, focus, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			state.GameID, day, i, action.AgentID, string(action.Kind), string(action.Focus), now); err != nil {
			metrics.RecordErrorByComponent("repository", "sqlite_write")
			return err
		}
	}

	return tx.Commit()
}

// ActionJournal implements Store.ActionJournal.
func (s *SQLiteStore) ActionJournal(ctx context.Context, gameID string) ([]JournalEntry, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM games WHERE game_id = ?`, gameID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT game_id, day, idx, agent_id, action, focus, recorded_at
		 FROM manager_actions WHERE game_id = ? ORDER BY day, idx`, gameID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []JournalEntry
	for rows.Next() {
		var (
			entry      JournalEntry
			kind       string
			focus      string
			recordedAt string
		)
		if err := rows.Scan(&entry.GameID, &entry.Day, &entry.Index,
			&entry.Action.AgentID, &kind, &focus, &recordedAt); err != nil {
			return nil, err
		}
		entry.Action.Kind = types.ActionKind(kind)
		entry.Action.Focus = types.Competency(focus)
		if ts, err := time.Parse(time.RFC3339Nano, recordedAt); err == nil {
			entry.RecordedAt = ts
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Count returns the number of tracked game sessions.
func (s *SQLiteStore) Count(ctx context.Context) int {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0
	}
	return n
}

// AgentCount returns the total roster size across all sessions.
func (s *SQLiteStore) AgentCount(ctx context.Context) int {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(json_array_length(state, '$.agents')), 0) FROM games`).Scan(&n)
	if err != nil {
		return 0
	}
	return n
}

// Close stops the background metrics goroutine and closes the database.
func (s *SQLiteStore) Close() error {
	select {
	case <-s.stopChan:
	default:
		close(s.stopChan)
	}
	s.wg.Wait()
	return s.db.Close()
}

// startMetricsUpdater starts a background goroutine that updates store metrics.
func (s *SQLiteStore) startMetricsUpdater(ctx context.Context) {
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
