package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/termcommander/internal/challenge"
	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/lookup"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"github.com/abhisek/termcommander/internal/stats"
	"github.com/abhisek/termcommander/internal/store"
	"github.com/abhisek/termcommander/internal/tips"
)

var (
	_ rewards.Notifier  = (*Console)(nil)
	_ challenge.Display = ChallengeView{}
	_ lookup.Display    = LookupView{}
	_ tips.Display      = TipView{}
)

func newTestConsole() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	return newWithEnviron(&buf, nil), &buf
}

func TestCommandCard(t *testing.T) {
	c, buf := newTestConsole()

	c.Lookup().Command(content.Command{
		Name:        "ls",
		Description: "List directory contents",
		Usage:       "ls [options]",
		Examples:    []string{"ls -la", "ls -lh"},
		Tip:         "Combine flags.",
	}, profile.ThemeColorblind)

	out := buf.String()
	for _, want := range []string{"Command: ls", "List directory contents", "Usage:", "ls [options]", "Examples:", "ls -lh", "💡 Tip: Combine flags.", "╭"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "colors are stripped for non-terminals")
}

func TestCommandCardWithoutTip(t *testing.T) {
	c, buf := newTestConsole()
	c.Lookup().Command(content.Command{Name: "pwd", Usage: "pwd"}, profile.ThemeDefault)
	assert.NotContains(t, buf.String(), "Tip:")
}

func TestNotFound(t *testing.T) {
	c, buf := newTestConsole()

	c.Lookup().NotFound("lss", profile.Linux, []content.Command{{Name: "ls", Aliases: []string{"dir", "list"}}})

	out := buf.String()
	assert.Contains(t, out, `Command "lss" not found or not supported in linux.`)
	assert.Contains(t, out, "Did you mean:")
	assert.Contains(t, out, "  ls (dir, list)")
}

func TestNotFoundWithoutSuggestions(t *testing.T) {
	c, buf := newTestConsole()
	c.Lookup().NotFound("zzz", profile.Mac, nil)
	assert.NotContains(t, buf.String(), "Did you mean")
}

func TestChallengeMessages(t *testing.T) {
	c, buf := newTestConsole()
	v := c.Challenge()

	v.Present(content.Challenge{Title: "Hidden Treasures", Description: "List hidden files.", Hint: "Use a flag."})
	v.Retry("Use a flag.")
	v.AdditionalHint("It stands for all.")
	v.Exhausted("ls -a")
	v.Correct(52)

	out := buf.String()
	for _, want := range []string{
		"Challenge: Hidden Treasures",
		"Hint: Use a flag.",
		"Not quite right. Try again!",
		"Additional hint: It stands for all.",
		"The correct command was: ls -a",
		"Don't worry! You can try another challenge.",
		"You earned 52 XP for completing this challenge!",
	} {
		assert.Contains(t, out, want)
	}
}

func TestFailedMessagesDiffer(t *testing.T) {
	c, buf := newTestConsole()

	c.Lookup().Failed()
	c.Challenge().Failed()
	c.Tips().Failed()

	out := buf.String()
	assert.Contains(t, out, "Error explaining command. Please try again.")
	assert.Contains(t, out, "Error during challenge. Please try again.")
	assert.Contains(t, out, "Error showing tip. Please try again.")
}

func TestNotifier(t *testing.T) {
	c, buf := newTestConsole()

	c.LevelUp(5)
	c.BadgeEarned("Level 5 Master")

	out := buf.String()
	assert.Contains(t, out, "LEVEL UP!")
	assert.Contains(t, out, "You've reached level 5!")
	assert.Contains(t, out, `You've earned the "Level 5 Master" badge!`)
}

func TestStreak(t *testing.T) {
	tests := []struct {
		streak rewards.Streak
		want   string
	}{
		{rewards.Streak{Kind: rewards.StreakToday}, "You're on a learning streak!"},
		{rewards.Streak{Kind: rewards.StreakContinued, DaysAway: 1, BonusXP: 5}, "maintaining your daily streak"},
		{rewards.Streak{Kind: rewards.StreakBroken, DaysAway: 4}, "It's been 4 days since your last session."},
	}
	for _, tt := range tests {
		c, buf := newTestConsole()
		c.Streak(tt.streak)
		assert.Contains(t, buf.String(), tt.want)
	}
}

func TestStats(t *testing.T) {
	c, buf := newTestConsole()

	c.Stats(stats.Summary{Level: 2, XP: 150, NextLevelXP: 200, Percent: 75, Completed: 4, Learned: 9, StreakToday: true})

	out := buf.String()
	for _, want := range []string{"Level: 2", "XP: 150 / 200", "75%", "Challenges Completed: 4", "Commands Learned: 9", "Badges (0): None yet", "learning streak today"} {
		assert.Contains(t, out, want)
	}
}

func TestSearch(t *testing.T) {
	c, buf := newTestConsole()

	assert.False(t, c.SearchResults("zip", 0))
	assert.True(t, c.SearchResults("net", 2))
	assert.Contains(t, buf.String(), `No commands found matching "zip"`)
	assert.Contains(t, buf.String(), `Found 2 commands matching "net":`)

	long := strings.Repeat("x", 80)
	label := SearchLabel(content.Command{Name: "ping", Description: long})
	assert.Equal(t, "ping - "+strings.Repeat("x", 60)+"...", label)
}

func TestHistory(t *testing.T) {
	c, buf := newTestConsole()

	c.History(nil)
	assert.Contains(t, buf.String(), "No rewards recorded yet.")

	buf.Reset()
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	c.History([]store.RewardEventRecord{
		{RewardEventData: store.RewardEventData{Kind: store.RewardKindBadge, Badge: "Network Ninja"}, Timestamp: ts},
		{RewardEventData: store.RewardEventData{Kind: store.RewardKindLevel, Level: 2}, Timestamp: ts},
		{RewardEventData: store.RewardEventData{Kind: store.RewardKindXP, Amount: 10}, Timestamp: ts},
	})
	out := buf.String()
	assert.Contains(t, out, "badge Network Ninja")
	assert.Contains(t, out, "reached level 2")
	assert.Contains(t, out, "+10 XP")
}

func TestEggAndTips(t *testing.T) {
	c, buf := newTestConsole()

	c.EggHint(profile.Windows)
	egg, _ := lookup.FindEgg(profile.Linux, "sl")
	c.Lookup().EasterEgg(egg)
	c.Tips().Tip("Use Ctrl+R.")
	c.Tips().TipsDisabled()

	out := buf.String()
	assert.Contains(t, out, `Psst! Try learning about the "tree" command for a surprise!`)
	assert.Contains(t, out, "You found an Easter egg!")
	assert.Contains(t, out, "Terminal Commander Express")
	assert.Contains(t, out, "Use Ctrl+R.")
	assert.Contains(t, out, "Tips are currently disabled in settings.")
}

func TestSessionSummary(t *testing.T) {
	c, buf := newTestConsole()

	c.SessionSummary(0, nil)
	assert.Empty(t, buf.String())

	c.SessionSummary(35, []string{"Command Novice"})
	assert.Contains(t, buf.String(), "This session: +35 XP, 1 new badge(s): Command Novice")
}
