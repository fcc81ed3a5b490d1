// Package app runs the interactive menu session.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/termcommander/internal/challenge"
	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/lookup"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"github.com/abhisek/termcommander/internal/stats"
	"github.com/abhisek/termcommander/internal/tips"
	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/console"
	"github.com/abhisek/termcommander/internal/ui/layout"
	"github.com/abhisek/termcommander/internal/ui/prompt"
)

// Prompts asks the learner questions. *prompt.Terminal implements it.
type Prompts interface {
	Select(ctx context.Context, message string, options []string, initial int) (int, error)
	Input(ctx context.Context, message string, validate func(string) string) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
	Pause(ctx context.Context) error
}

// Deps are the collaborators of an interactive session.
type Deps struct {
	Profile   *profile.Profile
	Rewards   *rewards.Service
	Lookup    *lookup.Service
	Challenge *challenge.Engine
	Tips      *tips.Service
	Console   *console.Console
	Prompts   Prompts
	Log       *zap.Logger
	// FixedOS, when set, skips the operating system prompt.
	FixedOS profile.OS
	// Now defaults to time.Now.
	Now func() time.Time
}

// App is an interactive session.
type App struct {
	Deps
	os profile.OS
}

// New creates an App.
func New(d Deps) *App {
	d.Log = logging.OrNop(d.Log)
	if d.Now == nil {
		d.Now = time.Now
	}
	return &App{Deps: d}
}

type action int

const (
	actLearn action = iota
	actSearch
	actChallenge
	actStats
	actTip
	actSettings
	actChangeOS
	actReset
	actExit
)

var mainMenu = []struct {
	act   action
	label string
}{
	{actLearn, "🔍 Learn a command"},
	{actSearch, "🔎 Search commands"},
	{actChallenge, "🎮 Take a challenge"},
	{actStats, "📊 View your stats"},
	{actTip, "💡 Get a random tip"},
	{actSettings, "⚙️ Settings"},
	{actChangeOS, "🔄 Change OS"},
	{actReset, "⚠️ Reset progress"},
	{actExit, "👋 Exit"},
}

// Run shows the banner, picks the OS and loops over the main menu until
// the learner exits. Cancelling the main menu counts as exiting.
func (a *App) Run(ctx context.Context) error {
	a.welcome(ctx)

	os, err := a.selectOS(ctx)
	if err != nil {
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		return a.fatal(err)
	}
	a.os = os
	a.Console.EggHint(os)

	labels := make([]string, len(mainMenu))
	for i, item := range mainMenu {
		labels[i] = item.label
	}

	for {
		a.status(ctx)
		choice, err := a.Prompts.Select(ctx, "What would you like to do?", labels, 0)
		if errors.Is(err, prompt.ErrCancelled) {
			a.goodbye()
			return nil
		}
		if err != nil {
			return a.fatal(err)
		}

		act := mainMenu[choice].act
		if act == actExit {
			a.goodbye()
			return nil
		}

		err = a.dispatch(ctx, act)
		if err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return a.fatal(err)
		}
		if err := a.Prompts.Pause(ctx); err != nil && !errors.Is(err, prompt.ErrCancelled) {
			return a.fatal(err)
		}
	}
}

// OS is the operating system the session is configured for.
func (a *App) OS() profile.OS {
	return a.os
}

func (a *App) dispatch(ctx context.Context, act action) error {
	a.Log.Debug("menu action", zap.Int("action", int(act)))
	switch act {
	case actLearn:
		return a.learn(ctx)
	case actSearch:
		return a.search(ctx)
	case actChallenge:
		a.Challenge.Run(ctx, a.os)
	case actStats:
		a.stats(ctx)
	case actTip:
		a.Tips.Show(ctx, a.os)
	case actSettings:
		return a.settings(ctx)
	case actChangeOS:
		os, err := a.selectOS(ctx)
		if err != nil {
			return err
		}
		a.os = os
	case actReset:
		return a.reset(ctx)
	}
	return nil
}

func (a *App) welcome(ctx context.Context) {
	a.Console.Banner()

	seen, err := a.Profile.Has(ctx, profile.KeyLastUsed)
	if err != nil {
		a.Log.Warn("read last used", zap.Error(err))
	}
	streak := a.Rewards.CheckIn(ctx, a.Now())
	if seen {
		a.Console.Streak(streak)
	}
}

func (a *App) status(ctx context.Context) {
	xp, err := a.Profile.XP(ctx)
	if err != nil {
		return
	}
	level, err := a.Profile.Level(ctx)
	if err != nil {
		return
	}
	badges, err := a.Profile.Badges(ctx)
	if err != nil {
		return
	}
	a.Console.Status(layout.Status{
		OS:     a.os.Title(),
		Level:  level,
		XP:     xp,
		NextXP: level * rewards.XPPerLevel,
		Badges: len(badges),
	})
}

var osLabels = map[profile.OS]string{
	profile.Linux:   "🐧 Linux",
	profile.Windows: "🪟 Windows",
	profile.Mac:     "🍎 macOS",
}

// selectOS asks for the operating system, preselecting the saved one, and
// stores the answer. A fixed OS from Deps skips the prompt.
func (a *App) selectOS(ctx context.Context) (profile.OS, error) {
	if a.FixedOS.Valid() {
		if err := a.Profile.SetOS(ctx, a.FixedOS); err != nil {
			a.Log.Warn("save os", zap.Error(err))
		}
		return a.FixedOS, nil
	}

	saved, err := a.Profile.OS(ctx)
	if err != nil {
		a.Log.Warn("read saved os", zap.Error(err))
	}
	initial := 0
	labels := make([]string, len(profile.AllOS))
	for i, os := range profile.AllOS {
		labels[i] = osLabels[os]
		if os == saved {
			initial = i
		}
	}

	i, err := a.Prompts.Select(ctx, "Which operating system are you using?", labels, initial)
	if err != nil {
		return "", err
	}
	os := profile.AllOS[i]
	if err := a.Profile.SetOS(ctx, os); err != nil {
		a.Log.Warn("save os", zap.Error(err))
	}
	a.Console.Success(fmt.Sprintf("✔ Configured for %s!", os.Title()))
	a.Log.Info("configured os", zap.String("os", string(os)))
	return os, nil
}

func (a *App) learn(ctx context.Context) error {
	name, err := a.Prompts.Input(ctx, "Enter the command you want to learn about:", components.Required("Please enter a command name"))
	if err != nil {
		return err
	}
	if a.Lookup.Explain(ctx, name, a.os) {
		a.Lookup.EasterEgg(ctx, a.os, name)
	}
	return nil
}

func (a *App) search(ctx context.Context) error {
	term, err := a.Prompts.Input(ctx, "Enter search term:", components.Required("Please enter a search term"))
	if err != nil {
		return err
	}
	results := a.Lookup.Search(a.os, term)
	if !a.Console.SearchResults(term, len(results)) {
		return nil
	}

	labels := make([]string, len(results))
	for i, cmd := range results {
		labels[i] = console.SearchLabel(cmd)
	}
	i, err := a.Prompts.Select(ctx, "Select a command to learn more:", labels, 0)
	if err != nil {
		return err
	}
	a.Lookup.Explain(ctx, results[i].Name, a.os)
	return nil
}

func (a *App) stats(ctx context.Context) {
	s, err := stats.Compute(ctx, a.Profile, a.Now())
	if err != nil {
		a.Log.Error("display stats", zap.Error(err))
		a.Console.Error("Error displaying stats. Please try again.")
		return
	}
	a.Console.Stats(s)
}

func (a *App) reset(ctx context.Context) error {
	ok, err := a.Prompts.Confirm(ctx, "Are you sure you want to reset all your progress? This cannot be undone.", false)
	if err != nil || !ok {
		return err
	}
	if err := a.Profile.Reset(ctx); err != nil {
		a.Log.Error("reset progress", zap.Error(err))
		a.Console.Error("Error resetting progress. Please try again.")
		return nil
	}
	a.Rewards.ResetSession()
	a.Console.Success("✔ Progress reset successfully!")
	a.Log.Info("progress reset")
	return nil
}

func (a *App) goodbye() {
	a.Console.SessionSummary(a.Rewards.SessionXP(), a.Rewards.SessionBadges())
	a.Console.Success("Thanks for using Terminal Commander! Happy commanding!")
}

func (a *App) fatal(err error) error {
	a.Log.Error("interactive session failed", zap.Error(err))
	a.Console.Error("An error occurred. Exiting Terminal Commander.")
	return err
}
