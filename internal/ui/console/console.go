// Package console renders engine output as styled terminal text.
//
// Console implements the display and notifier interfaces of the reward,
// challenge, lookup and tip engines so they stay free of rendering code.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/lookup"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"github.com/abhisek/termcommander/internal/stats"
	"github.com/abhisek/termcommander/internal/store"
	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/layout"
	"github.com/abhisek/termcommander/internal/ui/theme"
)

// Console writes rendered output to an io.Writer.
type Console struct {
	out io.Writer
}

// New creates a Console writing to out. Colors are downsampled to what
// out supports, and stripped entirely when out is not a terminal.
func New(out io.Writer) *Console {
	return newWithEnviron(out, os.Environ())
}

func newWithEnviron(out io.Writer, environ []string) *Console {
	return &Console{out: colorprofile.NewWriter(out, environ)}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// Success prints a green line.
func (c *Console) Success(msg string) { c.println(theme.Correct.Render(msg)) }

// Warn prints a yellow line.
func (c *Console) Warn(msg string) { c.println(theme.Warn.Render(msg)) }

// Error prints a red line.
func (c *Console) Error(msg string) { c.println(theme.Incorrect.Render(msg)) }

// Info prints a cyan line.
func (c *Console) Info(msg string) { c.println(theme.Hint.Render(msg)) }

// Dim prints a gray line.
func (c *Console) Dim(msg string) { c.println(theme.Body.Foreground(theme.TextDim).Render(msg)) }

// LevelUp implements rewards.Notifier.
func (c *Console) LevelUp(level int) {
	c.println(components.Card(theme.Yellow,
		theme.Warn.Bold(true).Render("🎉 LEVEL UP! 🎉"),
		"",
		theme.Correct.Render(fmt.Sprintf("You've reached level %d!", level)),
	))
}

// BadgeEarned implements rewards.Notifier.
func (c *Console) BadgeEarned(badge string) {
	c.println(components.Card(theme.Magenta,
		theme.Fun.Bold(true).Render("🏅 NEW BADGE EARNED! 🏅"),
		"",
		theme.Hint.Render(fmt.Sprintf("You've earned the \"%s\" badge!", badge)),
	))
}

// Banner prints the title and tagline.
func (c *Console) Banner() {
	c.println(theme.Title.Render(titleArt))
	c.println(components.Card(theme.Cyan,
		theme.Body.Bold(true).Render("Your interactive terminal command assistant!"),
		theme.Body.Foreground(theme.TextDim).Render("Learn commands, complete challenges, earn badges"),
	))
}

// Status prints the one-line progress header.
func (c *Console) Status(s layout.Status) {
	c.println(layout.RenderHeader(s, 72))
}

// Streak prints the welcome-back line for a check-in.
func (c *Console) Streak(s rewards.Streak) {
	switch s.Kind {
	case rewards.StreakToday:
		c.Success("🔥 Welcome back! You're on a learning streak!")
	case rewards.StreakContinued:
		c.Success("🔥 Welcome back! You're maintaining your daily streak!")
	default:
		c.Warn(fmt.Sprintf("Welcome back! It's been %d days since your last session.", s.DaysAway))
	}
}

// EggHint nudges the learner toward the easter egg of os.
func (c *Console) EggHint(os profile.OS) {
	c.Dim(fmt.Sprintf("Psst! Try learning about the \"%s\" command for a surprise!", lookup.HintCommand(os)))
}

// LookupView adapts a Console to lookup.Display.
type LookupView struct{ *Console }

// Lookup returns the lookup.Display view of c.
func (c *Console) Lookup() LookupView { return LookupView{c} }

// Command implements lookup.Display.
func (c LookupView) Command(cmd content.Command, t profile.ColorTheme) {
	p := theme.For(t)
	lines := []string{
		p.Title.Render("Command: " + cmd.Name),
		"",
		p.Desc.Render(cmd.Description),
		"",
		p.Usage.Render("Usage:"),
		p.Example.Render("  " + cmd.Usage),
		"",
		p.Usage.Render("Examples:"),
	}
	for _, ex := range cmd.Examples {
		lines = append(lines, p.Example.Render("  "+ex))
	}
	if cmd.Tip != "" {
		lines = append(lines, "", p.Tip.Render("💡 Tip: "+cmd.Tip))
	}
	c.println(components.Card(theme.Blue, lines...))
}

// NotFound implements lookup.Display.
func (c LookupView) NotFound(name string, os profile.OS, suggestions []content.Command) {
	c.Error(fmt.Sprintf("Command \"%s\" not found or not supported in %s.", name, os))
	if len(suggestions) == 0 {
		return
	}
	c.Warn("\nDid you mean:")
	for _, s := range suggestions {
		c.Info("  " + s.Label())
	}
}

// EasterEgg implements lookup.Display.
func (c LookupView) EasterEgg(egg lookup.Egg) {
	c.println(theme.Fun.Render("\n🎉 You found an Easter egg! 🎉\n"))
	c.println(theme.Warn.Render(egg.Art))
}

// Failed implements lookup.Display.
func (c LookupView) Failed() {
	c.Error("Error explaining command. Please try again.")
}

// SearchResults prints the heading for a search. It reports whether
// anything matched.
func (c *Console) SearchResults(term string, n int) bool {
	if n == 0 {
		c.Warn(fmt.Sprintf("No commands found matching \"%s\"", term))
		return false
	}
	c.Info(fmt.Sprintf("\nFound %d commands matching \"%s\":\n", n, term))
	return true
}

// SearchLabel is the menu entry for a search result.
func SearchLabel(cmd content.Command) string {
	desc := cmd.Description
	if r := []rune(desc); len(r) > 60 {
		desc = string(r[:60])
	}
	return cmd.Label() + " - " + desc + "..."
}

// TipView adapts a Console to tips.Display.
type TipView struct{ *Console }

// Tips returns the tips.Display view of c.
func (c *Console) Tips() TipView { return TipView{c} }

// Tip implements tips.Display.
func (c TipView) Tip(text string) {
	c.println(components.Card(theme.Cyan,
		theme.Title.Render("💡 Terminal Tip 💡"),
		"",
		theme.Body.Render(text),
	))
}

// TipsDisabled implements tips.Display.
func (c TipView) TipsDisabled() {
	c.Warn("Tips are currently disabled in settings.")
}

// Failed implements tips.Display.
func (c TipView) Failed() {
	c.Error("Error showing tip. Please try again.")
}

// Stats prints a progress summary.
func (c *Console) Stats(s stats.Summary) {
	badges := "None yet"
	if len(s.Badges) > 0 {
		badges = strings.Join(s.Badges, ", ")
	}
	c.println(components.Card(theme.Yellow,
		theme.Warn.Bold(true).Render("🏆 Your Progress 🏆"),
		"",
		theme.Info.Render(fmt.Sprintf("Level: %d", s.Level)),
		theme.Correct.UnsetBold().Render(fmt.Sprintf("XP: %d / %d", s.XP, s.NextLevelXP)),
		components.NewProgressBar("Progress", s.Percent).View(),
		"",
		theme.Fun.Render(fmt.Sprintf("Challenges Completed: %d", s.Completed)),
		theme.Warn.Render(fmt.Sprintf("Commands Learned: %d", s.Learned)),
		theme.Hint.Render(fmt.Sprintf("Badges (%d): %s", len(s.Badges), badges)),
	))
	if s.StreakToday {
		c.Success("🔥 You're on a learning streak today!")
	}
}

// History prints reward log entries, newest first.
func (c *Console) History(records []store.RewardEventRecord) {
	if len(records) == 0 {
		c.Warn("No rewards recorded yet.")
		return
	}
	for _, r := range records {
		when := theme.Body.Foreground(theme.TextDim).Render(r.Timestamp.Local().Format("2006-01-02 15:04"))
		var what string
		switch r.Kind {
		case store.RewardKindXP:
			what = theme.Correct.UnsetBold().Render(fmt.Sprintf("+%d XP", r.Amount))
		case store.RewardKindLevel:
			what = theme.Warn.Render(fmt.Sprintf("reached level %d", r.Level))
		case store.RewardKindBadge:
			what = theme.Fun.Render("badge " + r.Badge)
		default:
			what = r.Kind
		}
		c.println(when + "  " + what)
	}
}

// SessionSummary prints what the learner earned since the app started.
func (c *Console) SessionSummary(xp int, badges []string) {
	if xp == 0 && len(badges) == 0 {
		return
	}
	line := fmt.Sprintf("This session: +%d XP", xp)
	if len(badges) > 0 {
		line += fmt.Sprintf(", %d new badge(s): %s", len(badges), strings.Join(badges, ", "))
	}
	c.Info(line)
}

const titleArt = `
 _____                   _             _    ___                              _
|_   _|__ _ __ _ __ ___ (_)_ __   __ _| |  / __|___ _ __  _ __  __ _ _ _  __| |___ _ _
  | |/ _ \ '__| '_ ' _ \| | '_ \ / _' | | | (__/ _ \ '  \| '  \/ _' | ' \/ _' / -_) '_|
  | |  __/ |  | | | | | | | | | | (_| | |  \___\___/_|_|_|_|_|_\__,_|_||_\__,_\___|_|
  |_|\___|_|  |_| |_| |_|_|_| |_|\__,_|_|
`
