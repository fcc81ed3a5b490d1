package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// rewardSequence numbers reward events so the log keeps insertion order
// even when two awards share a timestamp.
type rewardSequence struct {
	mu sync.Mutex
	db *sql.DB
}

func newRewardSequence(ctx context.Context, db *sql.DB) (*rewardSequence, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reward_sequence (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last INTEGER NOT NULL DEFAULT 0
		)`,
		`INSERT OR IGNORE INTO reward_sequence (id, last) VALUES (1, 0)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, fmt.Errorf("init reward sequence: %w", err)
		}
	}
	return &rewardSequence{db: db}, nil
}

// Next bumps the counter and returns the new value, starting at 1.
func (s *rewardSequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE reward_sequence SET last = last + 1 WHERE id = 1 RETURNING last`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next reward sequence: %w", err)
	}
	return n, nil
}

// Reset starts numbering over.
func (s *rewardSequence) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `UPDATE reward_sequence SET last = 0 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset reward sequence: %w", err)
	}
	return nil
}
