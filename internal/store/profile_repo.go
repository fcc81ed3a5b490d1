package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339Nano

// maxWriteAttempts bounds retries on SQLITE_BUSY for profile writes.
const maxWriteAttempts = 3

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM profile WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get profile %q: %w", key, err)
	}
	return json.RawMessage(value), true, nil
}

func (r *profileRepo) Set(ctx context.Context, key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("set profile %q: value is not valid JSON", key)
	}

	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		_, err = r.db.ExecContext(ctx, `
			INSERT INTO profile(key, value, updated_at) VALUES(?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, string(value), time.Now().UTC().Format(timeLayout),
		)
		if err == nil || !IsConflictError(err) {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}
	if err != nil {
		return fmt.Errorf("set profile %q: %w", key, err)
	}
	return nil
}

func (r *profileRepo) Has(ctx context.Context, key string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM profile WHERE key = ?`, key).Scan(&n); err != nil {
		return false, fmt.Errorf("has profile %q: %w", key, err)
	}
	return n > 0, nil
}
