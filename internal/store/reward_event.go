package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// eventTimeLayout is fixed width so timestamps compare correctly as text.
const eventTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type eventRepo struct {
	db  *sql.DB
	seq *rewardSequence
}

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reward_events(sequence, timestamp, session_id, kind, amount, level, badge)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		seqNum,
		time.Now().UTC().Format(eventTimeLayout),
		data.SessionID,
		data.Kind,
		data.Amount,
		data.Level,
		data.Badge,
	)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	var (
		where []string
		args  []any
	)
	if !opts.From.IsZero() {
		where = append(where, "timestamp >= ?")
		args = append(args, opts.From.UTC().Format(eventTimeLayout))
	}
	if !opts.To.IsZero() {
		where = append(where, "timestamp <= ?")
		args = append(args, opts.To.UTC().Format(eventTimeLayout))
	}

	query := `SELECT sequence, timestamp, session_id, kind, amount, level, badge FROM reward_events`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	defer rows.Close()

	var records []RewardEventRecord
	for rows.Next() {
		var (
			rec RewardEventRecord
			ts  string
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Kind, &rec.Amount, &rec.Level, &rec.Badge); err != nil {
			return nil, fmt.Errorf("scan reward event: %w", err)
		}
		rec.Timestamp, err = time.Parse(eventTimeLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parse reward event timestamp: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}
	return records, nil
}

func (r *eventRepo) RewardTotals(ctx context.Context) (int, int, error) {
	var xp, badges int
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0)
		FROM reward_events`,
		RewardKindXP, RewardKindBadge,
	).Scan(&xp, &badges)
	if err != nil {
		return 0, 0, fmt.Errorf("query reward totals: %w", err)
	}
	return xp, badges, nil
}

func (r *eventRepo) ClearRewardEvents(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reward_events`); err != nil {
		return fmt.Errorf("clear reward events: %w", err)
	}
	return r.seq.Reset(ctx)
}
