// Package lookup explains commands and tracks which ones the learner has
// studied.
package lookup

import (
	"context"
	"slices"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"go.uber.org/zap"
)

const (
	// LearnXP is granted the first time a name is looked up.
	LearnXP = 10
	// MaxSuggestions bounds the "did you mean" list.
	MaxSuggestions = 3
	// CategoryThreshold is how many commands of one category earn its badge.
	CategoryThreshold = 3
)

// Category groups commands that share a badge.
type Category struct {
	Badge    string
	Commands []string
}

// Categories are matched against the raw names in the command history.
var Categories = []Category{
	{rewards.BadgeFileSystemExpert, []string{"ls", "dir", "find", "grep", "cat"}},
	{rewards.BadgeNetworkNinja, []string{"ping", "ifconfig", "ipconfig", "netstat", "ssh"}},
	{rewards.BadgeProcessWizard, []string{"ps", "top", "kill", "tasklist", "taskkill"}},
}

// Display renders lookup results.
type Display interface {
	Command(cmd content.Command, theme profile.ColorTheme)
	NotFound(name string, os profile.OS, suggestions []content.Command)
	EasterEgg(egg Egg)
	Failed()
}

// Service resolves command names against the catalog.
type Service struct {
	catalog *content.Catalog
	profile *profile.Profile
	rewards *rewards.Service
	display Display
	log     *zap.Logger
}

// NewService wires a lookup Service. log may be nil.
func NewService(cat *content.Catalog, p *profile.Profile, r *rewards.Service, d Display, log *zap.Logger) *Service {
	return &Service{
		catalog: cat,
		profile: p,
		rewards: r,
		display: d,
		log:     logging.OrNop(log),
	}
}

// Explain shows the command called name on os and records it as learned.
// The history stores name exactly as typed, so an alias and its command
// count separately. It reports whether a command was shown.
func (s *Service) Explain(ctx context.Context, name string, os profile.OS) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("explain panicked", zap.String("name", name), zap.Any("panic", r), zap.Stack("stack"))
			s.display.Failed()
			ok = false
		}
	}()

	cmd, err := s.catalog.FindCommand(os, name)
	if err != nil {
		s.display.NotFound(name, os, s.catalog.Suggest(os, name, MaxSuggestions))
		s.log.Info("command not found", zap.String("name", name), zap.String("os", string(os)))
		return false
	}

	if err := s.explain(ctx, name, cmd); err != nil {
		s.log.Error("explain command", zap.String("name", name), zap.Error(err))
		s.display.Failed()
		return false
	}
	s.log.Info("learned command", zap.String("name", name))
	return true
}

func (s *Service) explain(ctx context.Context, name string, cmd content.Command) error {
	settings, err := s.profile.Settings(ctx)
	if err != nil {
		return err
	}
	s.display.Command(cmd, settings.ColorTheme)

	history, err := s.profile.CommandHistory(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(history, name) {
		return nil
	}
	history = append(history, name)
	if err := s.profile.SetCommandHistory(ctx, history); err != nil {
		return err
	}

	s.rewards.AwardXP(ctx, LearnXP)
	s.rewards.AwardThresholds(ctx, len(history), rewards.HistoryThresholds)
	for _, c := range Categories {
		if countIn(history, c.Commands) >= CategoryThreshold {
			s.rewards.AwardBadge(ctx, c.Badge)
		}
	}
	return nil
}

// Search lists the commands on os matching term.
func (s *Service) Search(os profile.OS, term string) []content.Command {
	return s.catalog.Search(os, term)
}

// EasterEgg reveals the egg hidden behind name, if any, and grants its
// badge and XP.
func (s *Service) EasterEgg(ctx context.Context, os profile.OS, name string) bool {
	egg, ok := FindEgg(os, name)
	if !ok {
		return false
	}
	s.display.EasterEgg(egg)
	s.rewards.AwardBadge(ctx, egg.Badge)
	s.rewards.AwardXP(ctx, egg.XP)
	s.log.Info("found easter egg", zap.String("command", egg.Command))
	return true
}

func countIn(history, set []string) int {
	n := 0
	for _, h := range history {
		if slices.Contains(set, h) {
			n++
		}
	}
	return n
}
