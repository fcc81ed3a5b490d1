package rewards

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCheckIn(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		last      time.Time
		wantKind  StreakKind
		wantDays  int
		wantBonus int
	}{
		{"same day", now.Add(-2 * time.Hour), StreakToday, 0, 0},
		{"yesterday", now.Add(-26 * time.Hour), StreakContinued, 1, DailyBonusXP},
		{"away three days", now.Add(-73 * time.Hour), StreakBroken, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, p, _, _ := newTestService(t)
			ctx := context.Background()
			if err := p.SetLastUsed(ctx, tt.last); err != nil {
				t.Fatalf("seed last used: %v", err)
			}

			got := svc.CheckIn(ctx, now)

			if got.Kind != tt.wantKind || got.DaysAway != tt.wantDays || got.BonusXP != tt.wantBonus {
				t.Errorf("CheckIn = %+v, want kind %d days %d bonus %d", got, tt.wantKind, tt.wantDays, tt.wantBonus)
			}
			xp, _ := p.XP(ctx)
			if xp != tt.wantBonus {
				t.Errorf("xp = %d, want %d", xp, tt.wantBonus)
			}
			last, _ := p.LastUsed(ctx)
			if !last.Equal(now) {
				t.Errorf("lastUsed = %v, want %v", last, now)
			}
		})
	}
}

func TestCheckInFirstRun(t *testing.T) {
	svc, p, _, _ := newTestService(t)
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	p.SetClock(func() time.Time { return now })

	got := svc.CheckIn(context.Background(), now)
	if got.Kind != StreakToday || got.BonusXP != 0 {
		t.Errorf("first run CheckIn = %+v, want today without bonus", got)
	}
}

func TestCheckInReadFailure(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	repo.GetErr = errors.New("boom")

	got := svc.CheckIn(context.Background(), time.Now())
	if got.BonusXP != 0 {
		t.Errorf("bonus on read failure: %+v", got)
	}
}
