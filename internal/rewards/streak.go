package rewards

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// StreakKind classifies the gap since the previous session.
type StreakKind int

const (
	// StreakToday means the previous session started less than a day ago.
	StreakToday StreakKind = iota
	// StreakContinued means the previous session was one day ago.
	StreakContinued
	// StreakBroken means two or more days have passed.
	StreakBroken
)

// Streak is the outcome of a daily check-in.
type Streak struct {
	Kind     StreakKind
	DaysAway int
	BonusXP  int
}

// CheckIn compares now with the stored lastUsed timestamp, grants the
// daily bonus when exactly one whole day has passed and then records now
// as the new lastUsed.
func (s *Service) CheckIn(ctx context.Context, now time.Time) Streak {
	var streak Streak

	last, err := s.profile.LastUsed(ctx)
	if err != nil {
		s.log.Error("check in: read last used", zap.Error(err))
	} else {
		streak.DaysAway = DaysBetween(last, now)
		switch {
		case streak.DaysAway <= 0:
			streak.Kind = StreakToday
		case streak.DaysAway == 1:
			streak.Kind = StreakContinued
			streak.BonusXP = DailyBonusXP
			s.AwardXP(ctx, DailyBonusXP)
		default:
			streak.Kind = StreakBroken
		}
	}

	if err := s.profile.SetLastUsed(ctx, now); err != nil {
		s.log.Error("check in: write last used", zap.Error(err))
	}
	return streak
}

// DaysBetween counts whole 24-hour periods from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}
