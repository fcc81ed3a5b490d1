package components

import (
	"fmt"

	"github.com/abhisek/termcommander/internal/stats"
	"github.com/abhisek/termcommander/internal/ui/theme"
)

// ProgressBar displays level progress as "Label: [█████░░░░░] 50%".
type ProgressBar struct {
	Label   string
	Percent int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	return theme.Hint.Render(fmt.Sprintf("%s: [%s] %d%%", p.Label, stats.Bar(p.Percent), p.Percent))
}
