// Package tips shows a random terminal tip when the learner allows it.
package tips

import (
	"context"
	"math/rand/v2"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/profile"
	"go.uber.org/zap"
)

// Display renders a tip or the notice that tips are off.
type Display interface {
	Tip(text string)
	TipsDisabled()
	Failed()
}

// Service picks tips from the catalog.
type Service struct {
	catalog *content.Catalog
	profile *profile.Profile
	display Display
	pick    func(n int) int
	log     *zap.Logger
}

// NewService creates a tip Service with a uniform random picker.
func NewService(cat *content.Catalog, p *profile.Profile, d Display, log *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		profile: p,
		display: d,
		pick:    rand.IntN,
		log:     logging.OrNop(log),
	}
}

// SetPicker replaces the random picker.
func (s *Service) SetPicker(pick func(n int) int) {
	s.pick = pick
}

// Show displays one tip for os and reports whether a tip was shown.
func (s *Service) Show(ctx context.Context, os profile.OS) bool {
	settings, err := s.profile.Settings(ctx)
	if err != nil {
		s.log.Error("show tip: read settings", zap.Error(err))
		s.display.Failed()
		return false
	}
	if !settings.ShowTips {
		s.display.TipsDisabled()
		return false
	}

	list := s.catalog.Tips(os)
	if len(list) == 0 {
		s.log.Warn("no tips for os", zap.String("os", string(os)))
		s.display.Failed()
		return false
	}
	s.display.Tip(list[s.pick(len(list))])
	s.log.Info("showed tip")
	return true
}
