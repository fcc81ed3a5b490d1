// Package rewards owns XP, levels and badges.
//
// Every operation is total: profile failures are logged and turned into a
// safe result instead of an error. Callers never need to roll back.
package rewards

import (
	"context"
	"slices"

	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/store"
	"go.uber.org/zap"
)

// Service grants XP and badges and notifies the display.
type Service struct {
	profile   *profile.Profile
	notify    Notifier
	eventRepo store.EventRepo
	log       *zap.Logger
	sessionID string

	// SessionAwards accumulates awards granted during the current session.
	SessionAwards []Award
}

// Option configures a Service.
type Option func(*Service)

// WithEventRepo records every award in the reward log.
func WithEventRepo(r store.EventRepo) Option {
	return func(s *Service) { s.eventRepo = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = logging.OrNop(l) }
}

// WithSessionID tags reward log entries with id.
func WithSessionID(id string) Option {
	return func(s *Service) { s.sessionID = id }
}

// NewService creates a reward Service. notify may be nil.
func NewService(p *profile.Profile, notify Notifier, opts ...Option) *Service {
	s := &Service{
		profile: p,
		notify:  notify,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AwardXP adds amount to the learner's XP and promotes at most one level.
// Promotion happens when the new total reaches level*XPPerLevel. A read
// failure returns the zero Result without writing; write failures are
// logged and the computed values are still returned.
func (s *Service) AwardXP(ctx context.Context, amount int) Result {
	xp, err := s.profile.XP(ctx)
	if err != nil {
		s.log.Error("award xp: read xp", zap.Int("amount", amount), zap.Error(err))
		return Result{}
	}
	level, err := s.profile.Level(ctx)
	if err != nil {
		s.log.Error("award xp: read level", zap.Int("amount", amount), zap.Error(err))
		return Result{}
	}
	if amount <= 0 {
		s.log.Warn("award xp: ignoring non-positive amount", zap.Int("amount", amount))
		return Result{XP: xp, Level: level}
	}

	res := Result{XP: xp + amount, Level: level}
	if res.XP >= level*XPPerLevel {
		res.Level++
		res.LeveledUp = true
	}
	s.record(ctx, Award{Kind: AwardXP, Amount: amount})

	if res.LeveledUp {
		if s.notify != nil {
			s.notify.LevelUp(res.Level)
		}
		s.record(ctx, Award{Kind: AwardLevel, Level: res.Level})
		s.log.Info("level up", zap.Int("level", res.Level))
		if res.Level%5 == 0 {
			s.AwardBadge(ctx, LevelMasterBadge(res.Level))
		}
	}

	if err := s.profile.SetXP(ctx, res.XP); err != nil {
		s.log.Error("award xp: write xp", zap.Int("xp", res.XP), zap.Error(err))
	}
	if err := s.profile.SetLevel(ctx, res.Level); err != nil {
		s.log.Error("award xp: write level", zap.Int("level", res.Level), zap.Error(err))
	}

	s.log.Info("awarded xp", zap.Int("amount", amount), zap.Int("xp", res.XP))
	return res
}

// AwardBadge grants badge once. It returns true only when the badge is
// new and was persisted.
func (s *Service) AwardBadge(ctx context.Context, badge string) bool {
	badges, err := s.profile.Badges(ctx)
	if err != nil {
		s.log.Error("award badge: read badges", zap.String("badge", badge), zap.Error(err))
		return false
	}
	if slices.Contains(badges, badge) {
		return false
	}

	if err := s.profile.SetBadges(ctx, append(badges, badge)); err != nil {
		s.log.Error("award badge: write badges", zap.String("badge", badge), zap.Error(err))
		return false
	}
	if s.notify != nil {
		s.notify.BadgeEarned(badge)
	}
	s.record(ctx, Award{Kind: AwardBadge, Badge: badge})
	s.log.Info("awarded badge", zap.String("badge", badge))
	return true
}

// AwardThresholds grants every threshold badge that count has reached.
func (s *Service) AwardThresholds(ctx context.Context, count int, thresholds []Threshold) {
	for _, t := range thresholds {
		if count >= t.Count {
			s.AwardBadge(ctx, t.Badge)
		}
	}
}

// SessionXP sums the XP granted during this session.
func (s *Service) SessionXP() int {
	total := 0
	for _, a := range s.SessionAwards {
		if a.Kind == AwardXP {
			total += a.Amount
		}
	}
	return total
}

// SessionBadges lists badges earned during this session in award order.
func (s *Service) SessionBadges() []string {
	var out []string
	for _, a := range s.SessionAwards {
		if a.Kind == AwardBadge {
			out = append(out, a.Badge)
		}
	}
	return out
}

// ResetSession clears the session accumulator.
func (s *Service) ResetSession() {
	s.SessionAwards = nil
}

func (s *Service) record(ctx context.Context, a Award) {
	s.SessionAwards = append(s.SessionAwards, a)
	s.persist(ctx, a)
}

func (s *Service) persist(ctx context.Context, a Award) {
	if s.eventRepo == nil {
		return
	}
	data := store.RewardEventData{
		SessionID: s.sessionID,
		Kind:      string(a.Kind),
		Amount:    a.Amount,
		Level:     a.Level,
		Badge:     a.Badge,
	}
	if err := s.eventRepo.AppendRewardEvent(ctx, data); err != nil {
		s.log.Warn("record reward event", zap.String("kind", data.Kind), zap.Error(err))
	}
}
