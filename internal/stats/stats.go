// Package stats summarizes the learner's progress.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
)

// BarWidth is the number of cells in the progress bar.
const BarWidth = 20

// Summary is a snapshot of the profile for the stats screen.
type Summary struct {
	Level       int
	XP          int
	NextLevelXP int
	// Percent is XP as a share of NextLevelXP, clamped to [0, 100].
	Percent   int
	Completed int
	Learned   int
	Badges    []string
	// StreakToday is set when the last session started today.
	StreakToday bool
}

// Compute reads the profile and builds a Summary.
func Compute(ctx context.Context, p *profile.Profile, now time.Time) (Summary, error) {
	var s Summary
	var err error

	if s.XP, err = p.XP(ctx); err != nil {
		return Summary{}, fmt.Errorf("read xp: %w", err)
	}
	if s.Level, err = p.Level(ctx); err != nil {
		return Summary{}, fmt.Errorf("read level: %w", err)
	}
	completed, err := p.CompletedChallenges(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read completed challenges: %w", err)
	}
	history, err := p.CommandHistory(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read command history: %w", err)
	}
	if s.Badges, err = p.Badges(ctx); err != nil {
		return Summary{}, fmt.Errorf("read badges: %w", err)
	}
	s.Completed = len(completed)
	s.Learned = len(history)
	s.NextLevelXP = s.Level * rewards.XPPerLevel
	s.Percent = percent(s.XP, s.NextLevelXP)

	seen, err := p.Has(ctx, profile.KeyLastUsed)
	if err != nil {
		return Summary{}, fmt.Errorf("read last used: %w", err)
	}
	if seen {
		last, err := p.LastUsed(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("read last used: %w", err)
		}
		s.StreakToday = rewards.DaysBetween(last, now) == 0
	}
	return s, nil
}

func percent(xp, next int) int {
	if next <= 0 {
		return 0
	}
	p := xp * 100 / next
	return max(0, min(p, 100))
}

// Bar renders percent as a BarWidth-cell bar of filled and empty blocks.
func Bar(percent int) string {
	percent = max(0, min(percent, 100))
	filled := percent * BarWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", BarWidth-filled)
}
