package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts filters reward log queries.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// ProfileRepo is the key/value contract behind the learner profile.
// Values are raw JSON documents; interpretation belongs to the caller.
type ProfileRepo interface {
	// Get returns the stored value for key. found is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value json.RawMessage, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value json.RawMessage) error

	// Has reports whether key has been written.
	Has(ctx context.Context, key string) (bool, error)
}

// Reward event kinds.
const (
	RewardKindXP    = "xp"
	RewardKindLevel = "level"
	RewardKindBadge = "badge"
)

// RewardEventData captures a single XP, level-up or badge award.
type RewardEventData struct {
	SessionID string
	Kind      string
	Amount    int
	Level     int
	Badge     string
}

// RewardEventRecord is a RewardEventData read back from the log.
type RewardEventRecord struct {
	RewardEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the reward log.
type EventRepo interface {
	// AppendRewardEvent records a reward event.
	AppendRewardEvent(ctx context.Context, data RewardEventData) error

	// QueryRewardEvents returns events newest first.
	QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error)

	// RewardTotals returns total XP awarded and the number of badges earned.
	RewardTotals(ctx context.Context) (xp int, badges int, err error)

	// ClearRewardEvents drops the whole log.
	ClearRewardEvents(ctx context.Context) error
}
