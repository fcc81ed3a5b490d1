package components

import (
	"image/color"
	"strings"

	"github.com/abhisek/termcommander/internal/ui/theme"
)

// Card frames lines in a rounded box with the given border color.
// Empty lines are kept as paragraph breaks.
func Card(border color.Color, lines ...string) string {
	return theme.Box(border).Render(strings.Join(lines, "\n"))
}
