package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/termcommander/internal/ui/theme"
)

// KeyHint represents a key binding hint shown under a prompt.
type KeyHint struct {
	Key         string
	Description string
}

// Hint sets shown under the interactive prompts.
var (
	SelectHints  = []KeyHint{{"↑↓", "move"}, {"enter", "select"}, {"esc", "cancel"}}
	InputHints   = []KeyHint{{"enter", "submit"}, {"esc", "cancel"}}
	ConfirmHints = []KeyHint{{"y/n", "answer"}, {"enter", "default"}, {"esc", "cancel"}}
)

// Status is the learner summary shown above the main menu.
type Status struct {
	OS     string
	Level  int
	XP     int
	NextXP int
	Badges int
}

// RenderHeader renders the status bar: app name on the left, progress on
// the right, padded to width.
func RenderHeader(s Status, width int) string {
	left := theme.Title.Render("Terminal Commander")
	if s.OS != "" {
		left += theme.Hint.Render("  " + s.OS)
	}
	right := theme.Warn.Render(fmt.Sprintf("Lv %d", s.Level)) +
		theme.Hint.Render("  ") +
		theme.Correct.Render(fmt.Sprintf("XP %d/%d", s.XP, s.NextXP)) +
		theme.Hint.Render("  ") +
		theme.Fun.Render(fmt.Sprintf("★ %d", s.Badges))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(left + strings.Repeat(" ", gap) + right)
}

// RenderFooter renders key hints on one line.
func RenderFooter(hints []KeyHint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, theme.Body.Bold(true).Render(h.Key)+" "+theme.Hint.Render(h.Description))
	}
	return strings.Join(parts, "   ")
}
