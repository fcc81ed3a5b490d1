package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/termcommander/internal/profile"
	"github.com/google/go-cmp/cmp"
)

const testCommands = `
version: v1.2.0
systems:
  linux:
    - name: ls
      aliases: [dir, list]
      description: Lists files and directories.
      usage: ls [options]
      examples: [ls, ls -la]
      tip: Use ls -la to see hidden files.
    - name: lsblk
      description: Lists block devices.
      usage: lsblk
      examples: [lsblk]
    - name: dir
      description: Shadowed by the ls alias.
      usage: dir
      examples: [dir]
    - name: cat
      description: Prints FILE contents.
      usage: cat file
      examples: [cat a.txt]
`

const testChallenges = `
version: v1.0.0
systems:
  linux:
    - id: linux_1
      title: Hidden Treasures
      description: List hidden files.
      hint: Use a flag.
      additionalHint: It stands for all.
      solution: ls -a
      difficulty: beginner
    - id: linux_2
      title: Space Explorer
      description: Disk usage.
      hint: du.
      solution: du -sh
      difficulty: intermediate
`

const testTips = `
version: v1.0.0
systems:
  linux: [one, two]
`

func parseTest(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(testCommands), []byte(testChallenges), []byte(testTips))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func TestFindCommand(t *testing.T) {
	c := parseTest(t)

	tests := []struct {
		input string
		want  string
	}{
		{"ls", "ls"},
		{"dir", "ls"}, // alias on an earlier entry wins over a later name
		{"list", "ls"},
		{"cat", "cat"},
	}
	for _, tt := range tests {
		got, err := c.FindCommand(profile.Linux, tt.input)
		if err != nil {
			t.Errorf("FindCommand(%q): %v", tt.input, err)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("FindCommand(%q) = %q, want %q", tt.input, got.Name, tt.want)
		}
	}

	_, err := c.FindCommand(profile.Linux, "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	_, err = c.FindCommand(profile.Mac, "ls")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty os table, got %v", err)
	}
}

func TestSuggest(t *testing.T) {
	c := parseTest(t)

	names := func(cmds []Command) []string {
		var out []string
		for _, cmd := range cmds {
			out = append(out, cmd.Name)
		}
		return out
	}

	if diff := cmp.Diff([]string{"ls", "lsblk"}, names(c.Suggest(profile.Linux, "ls", 3))); diff != "" {
		t.Errorf("Suggest(ls) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ls"}, names(c.Suggest(profile.Linux, "is", 3))); diff != "" {
		t.Errorf("Suggest(is) via alias mismatch (-want +got):\n%s", diff)
	}
	if got := c.Suggest(profile.Linux, "", 3); len(got) != 3 {
		t.Errorf("Suggest limit: got %d, want 3", len(got))
	}
	if got := c.Suggest(profile.Linux, "LS", 3); len(got) != 0 {
		t.Errorf("Suggest should be case-sensitive, got %v", names(got))
	}
}

func TestSearch(t *testing.T) {
	c := parseTest(t)

	got := c.Search(profile.Linux, "  FILE ")
	var names []string
	for _, cmd := range got {
		names = append(names, cmd.Name)
	}
	if diff := cmp.Diff([]string{"ls", "cat"}, names); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
	if got := c.Search(profile.Linux, "   "); got != nil {
		t.Errorf("blank search should return nil, got %v", got)
	}
}

func TestChallengeLookup(t *testing.T) {
	c := parseTest(t)

	ch, err := c.Challenge("linux_2")
	if err != nil {
		t.Fatalf("Challenge: %v", err)
	}
	want := Challenge{
		ID:          "linux_2",
		Title:       "Space Explorer",
		Description: "Disk usage.",
		Hint:        "du.",
		Solution:    "du -sh",
		Difficulty:  profile.Intermediate,
	}
	if diff := cmp.Diff(want, ch); diff != "" {
		t.Errorf("challenge mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Challenge("linux_99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name       string
		commands   string
		challenges string
		wantErr    string
	}{
		{
			name:       "major version",
			commands:   "version: v2.0.0\nsystems: {}\n",
			challenges: testChallenges,
			wantErr:    "unsupported format version",
		},
		{
			name:       "invalid version",
			commands:   "version: one\nsystems: {}\n",
			challenges: testChallenges,
			wantErr:    "invalid format version",
		},
		{
			name:       "duplicate command",
			commands:   "version: v1.0.0\nsystems:\n  linux:\n    - name: ls\n    - name: ls\n",
			challenges: testChallenges,
			wantErr:    "duplicate name",
		},
		{
			name:     "duplicate challenge id",
			commands: "version: v1.0.0\nsystems: {}\n",
			challenges: "version: v1.0.0\nsystems:\n" +
				"  linux:\n    - {id: x_1, solution: ls, difficulty: beginner}\n" +
				"  mac:\n    - {id: x_1, solution: ls, difficulty: beginner}\n",
			wantErr: "duplicate id",
		},
		{
			name:       "bad difficulty",
			commands:   "version: v1.0.0\nsystems: {}\n",
			challenges: "version: v1.0.0\nsystems:\n  linux:\n    - {id: x_1, solution: ls, difficulty: expert}\n",
			wantErr:    "unknown difficulty",
		},
		{
			name:       "empty solution",
			commands:   "version: v1.0.0\nsystems: {}\n",
			challenges: "version: v1.0.0\nsystems:\n  linux:\n    - {id: x_1, solution: '  ', difficulty: beginner}\n",
			wantErr:    "empty solution",
		},
		{
			name:       "unknown os",
			commands:   "version: v1.0.0\nsystems:\n  beos:\n    - name: ls\n",
			challenges: testChallenges,
			wantErr:    "unknown os",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.commands), []byte(tt.challenges), []byte(testTips))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedTables(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, os := range profile.AllOS {
		if n := len(c.Challenges(os)); n != 12 {
			t.Errorf("%s: %d challenges, want 12", os, n)
		}
		if len(c.Commands(os)) == 0 {
			t.Errorf("%s: empty command table", os)
		}
		if len(c.Tips(os)) == 0 {
			t.Errorf("%s: no tips", os)
		}
		for _, ch := range c.Challenges(os) {
			if !strings.HasPrefix(ch.ID, string(os)+"_") {
				t.Errorf("challenge %s listed under %s", ch.ID, os)
			}
		}
	}

	ls, err := c.FindCommand(profile.Linux, "dir")
	if err != nil || ls.Name != "ls" {
		t.Errorf(`linux "dir" = %q, %v; want ls`, ls.Name, err)
	}

	eggs := map[profile.OS][]string{
		profile.Linux:   {"cowsay", "sl"},
		profile.Windows: {"tree", "cls"},
		profile.Mac:     {"say", "caffeinate"},
	}
	for os, names := range eggs {
		for _, name := range names {
			if _, err := c.FindCommand(os, name); err != nil {
				t.Errorf("%s: easter egg command %q missing: %v", os, name, err)
			}
		}
	}

	sol, err := c.Challenge("mac_12")
	if err != nil {
		t.Fatalf("mac_12: %v", err)
	}
	want := `defaults write com.apple.dock persistent-apps -array-add '{"tile-type"="spacer-tile";}'; killall Dock`
	if sol.Solution != want {
		t.Errorf("mac_12 solution = %q, want %q", sol.Solution, want)
	}
	win, _ := c.Challenge("windows_7")
	if win.Solution != `copy *.txt Backup\` {
		t.Errorf("windows_7 solution = %q", win.Solution)
	}
}

func TestLabel(t *testing.T) {
	if got := (Command{Name: "ls", Aliases: []string{"dir", "list"}}).Label(); got != "ls (dir, list)" {
		t.Errorf("Label = %q", got)
	}
	if got := (Command{Name: "pwd"}).Label(); got != "pwd" {
		t.Errorf("Label = %q", got)
	}
}
