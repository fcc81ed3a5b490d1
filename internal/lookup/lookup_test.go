package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCommands = `
version: v1.0.0
systems:
  linux:
    - name: ls
      aliases: [dir, list]
      description: List directory contents
      usage: ls [options] [path]
      examples: [ls -la]
      tip: Use ls -lh for human-readable sizes.
    - name: cat
      description: Print file contents
      usage: cat [file]
      examples: [cat notes.txt]
    - name: grep
      description: Search text
      usage: grep [pattern] [file]
      examples: [grep -r TODO .]
    - name: find
      description: Find files
      usage: find [path] [expression]
      examples: [find . -name '*.go']
    - name: ping
      description: Check network reachability
      usage: ping [host]
      examples: [ping -c 4 example.com]
    - name: ifconfig
      aliases: [ip]
      description: Configure network interfaces
      usage: ifconfig
      examples: [ifconfig eth0]
    - name: ssh
      description: Remote shell
      usage: ssh user@host
      examples: [ssh me@example.com]
    - name: cowsay
      description: A talking cow
      usage: cowsay [message]
      examples: [cowsay hello]
  windows:
    - name: dir
      aliases: [ls]
      description: List directory contents
      usage: dir [path]
      examples: [dir /a]
`

const emptyTable = `
version: v1.0.0
systems: {}
`

type recordingDisplay struct {
	shown       []string
	themes      []profile.ColorTheme
	notFound    []string
	suggestions [][]string
	eggs        []string
	failed      int
}

func (d *recordingDisplay) Command(cmd content.Command, theme profile.ColorTheme) {
	d.shown = append(d.shown, cmd.Name)
	d.themes = append(d.themes, theme)
}

func (d *recordingDisplay) NotFound(name string, _ profile.OS, suggestions []content.Command) {
	d.notFound = append(d.notFound, name)
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Name
	}
	d.suggestions = append(d.suggestions, names)
}

func (d *recordingDisplay) EasterEgg(egg Egg) { d.eggs = append(d.eggs, egg.Command) }
func (d *recordingDisplay) Failed()           { d.failed++ }

type fixture struct {
	svc     *Service
	profile *profile.Profile
	display *recordingDisplay
}

func newFixture(t *testing.T) (*fixture, context.Context) {
	t.Helper()
	cat, err := content.Parse([]byte(testCommands), []byte(emptyTable), []byte(emptyTable))
	require.NoError(t, err)
	p, _ := profile.NewMemory()
	d := &recordingDisplay{}
	svc := NewService(cat, p, rewards.NewService(p, nil), d, nil)
	return &fixture{svc: svc, profile: p, display: d}, context.Background()
}

func TestExplainAliasRecordsRawName(t *testing.T) {
	f, ctx := newFixture(t)

	require.True(t, f.svc.Explain(ctx, "dir", profile.Linux))

	assert.Equal(t, []string{"ls"}, f.display.shown)
	history, err := f.profile.CommandHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dir"}, history)

	xp, _ := f.profile.XP(ctx)
	assert.Equal(t, LearnXP, xp)
}

func TestExplainFiveDistinctEarnsNovice(t *testing.T) {
	f, ctx := newFixture(t)

	for _, name := range []string{"ls", "cat", "grep", "ping", "ssh"} {
		require.True(t, f.svc.Explain(ctx, name, profile.Linux), name)
	}

	xp, _ := f.profile.XP(ctx)
	assert.Equal(t, 50, xp)
	badges, _ := f.profile.Badges(ctx)
	assert.Contains(t, badges, rewards.BadgeCommandNovice)
	assert.Contains(t, badges, rewards.BadgeFileSystemExpert)
	assert.NotContains(t, badges, rewards.BadgeNetworkNinja)
}

func TestExplainRepeatDoesNotAward(t *testing.T) {
	f, ctx := newFixture(t)

	f.svc.Explain(ctx, "ls", profile.Linux)
	f.svc.Explain(ctx, "ls", profile.Linux)

	xp, _ := f.profile.XP(ctx)
	assert.Equal(t, LearnXP, xp)
	history, _ := f.profile.CommandHistory(ctx)
	assert.Equal(t, []string{"ls"}, history)
	assert.Len(t, f.display.shown, 2)
}

func TestExplainAliasAndNameCountSeparately(t *testing.T) {
	f, ctx := newFixture(t)

	f.svc.Explain(ctx, "ls", profile.Linux)
	f.svc.Explain(ctx, "list", profile.Linux)

	history, _ := f.profile.CommandHistory(ctx)
	assert.Equal(t, []string{"ls", "list"}, history)
	xp, _ := f.profile.XP(ctx)
	assert.Equal(t, 2*LearnXP, xp)
}

func TestExplainCategoryBadge(t *testing.T) {
	f, ctx := newFixture(t)

	for _, name := range []string{"ping", "ifconfig", "ssh"} {
		f.svc.Explain(ctx, name, profile.Linux)
	}

	badges, _ := f.profile.Badges(ctx)
	assert.Equal(t, []string{rewards.BadgeNetworkNinja}, badges)
}

func TestExplainNotFound(t *testing.T) {
	f, ctx := newFixture(t)

	assert.False(t, f.svc.Explain(ctx, "i", profile.Linux))

	require.Equal(t, []string{"i"}, f.display.notFound)
	// "ls" via alias "list", "find", "ping" (table order, capped at three).
	assert.Equal(t, []string{"ls", "find", "ping"}, f.display.suggestions[0])

	history, _ := f.profile.CommandHistory(ctx)
	assert.Empty(t, history)
	xp, _ := f.profile.XP(ctx)
	assert.Zero(t, xp)
}

func TestExplainSuggestionsAreCaseSensitive(t *testing.T) {
	f, ctx := newFixture(t)

	f.svc.Explain(ctx, "LS", profile.Linux)

	assert.Empty(t, f.display.suggestions[0])
}

func TestExplainUsesOSTable(t *testing.T) {
	f, ctx := newFixture(t)

	assert.False(t, f.svc.Explain(ctx, "cat", profile.Windows))
	assert.True(t, f.svc.Explain(ctx, "ls", profile.Windows))
	assert.Equal(t, []string{"dir"}, f.display.shown)
}

func TestExplainPassesTheme(t *testing.T) {
	f, ctx := newFixture(t)
	s := profile.DefaultSettings()
	s.ColorTheme = profile.ThemeColorblind
	require.NoError(t, f.profile.SetSettings(ctx, s))

	f.svc.Explain(ctx, "cat", profile.Linux)

	assert.Equal(t, []profile.ColorTheme{profile.ThemeColorblind}, f.display.themes)
}

func TestExplainProfileFailure(t *testing.T) {
	cat, err := content.Parse([]byte(testCommands), []byte(emptyTable), []byte(emptyTable))
	require.NoError(t, err)
	p, repo := profile.NewMemory()
	repo.GetErr = errors.New("disk gone")
	d := &recordingDisplay{}
	svc := NewService(cat, p, rewards.NewService(p, nil), d, nil)

	assert.False(t, svc.Explain(context.Background(), "ls", profile.Linux))
	assert.Equal(t, 1, d.failed)
}

func TestExplainHistoryWriteFailure(t *testing.T) {
	cat, err := content.Parse([]byte(testCommands), []byte(emptyTable), []byte(emptyTable))
	require.NoError(t, err)
	p, repo := profile.NewMemory()
	repo.SetErr = errors.New("read-only")
	d := &recordingDisplay{}
	svc := NewService(cat, p, rewards.NewService(p, nil), d, nil)

	assert.False(t, svc.Explain(context.Background(), "ls", profile.Linux))
	assert.Equal(t, []string{"ls"}, d.shown)
	assert.Equal(t, 1, d.failed)
}

func TestSearch(t *testing.T) {
	f, _ := newFixture(t)

	var names []string
	for _, c := range f.svc.Search(profile.Linux, "  NETWORK ") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"ping", "ifconfig"}, names)
	assert.Empty(t, f.svc.Search(profile.Linux, "   "))
}

func TestEasterEgg(t *testing.T) {
	f, ctx := newFixture(t)

	assert.True(t, f.svc.EasterEgg(ctx, profile.Linux, " cowsay "))
	assert.False(t, f.svc.EasterEgg(ctx, profile.Linux, "tree"))
	assert.False(t, f.svc.EasterEgg(ctx, profile.Linux, "ls"))

	assert.Equal(t, []string{"cowsay"}, f.display.eggs)
	badges, _ := f.profile.Badges(ctx)
	assert.Equal(t, []string{"Easter Egg Hunter"}, badges)
	xp, _ := f.profile.XP(ctx)
	assert.Equal(t, 15, xp)
}

func TestEggTable(t *testing.T) {
	for _, os := range profile.AllOS {
		require.Len(t, eggs[os], 2, os)
		_, ok := FindEgg(os, HintCommand(os))
		assert.True(t, ok, "hint for %s names an egg", os)
	}
	egg, ok := FindEgg(profile.Mac, "caffeinate")
	require.True(t, ok)
	assert.Equal(t, 20, egg.XP)
}
