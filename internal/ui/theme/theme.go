package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/termcommander/internal/profile"
)

// Basic terminal colors. ANSI indices keep output readable on both light
// and dark backgrounds.
var (
	Black   = lipgloss.Color("0")
	Red     = lipgloss.Color("1")
	Green   = lipgloss.Color("2")
	Yellow  = lipgloss.Color("3")
	Blue    = lipgloss.Color("4")
	Magenta = lipgloss.Color("5")
	Cyan    = lipgloss.Color("6")
	White   = lipgloss.Color("7")
	Gray    = lipgloss.Color("8")
)

// Semantic colors.
var (
	Primary = Cyan
	Success = Green
	Error   = Red
	Warning = Yellow
	Text    = White
	TextDim = Gray
	Border  = Blue
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Yellow)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(Cyan)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)

	Info = lipgloss.NewStyle().
		Foreground(Blue)

	Fun = lipgloss.NewStyle().
		Foreground(Magenta)
)

// Box returns a rounded, padded frame with the given border color.
func Box(border color.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1).
		Margin(1)
}

// Palette colors the sections of a command card.
type Palette struct {
	Title   lipgloss.Style
	Desc    lipgloss.Style
	Usage   lipgloss.Style
	Example lipgloss.Style
	Tip     lipgloss.Style
}

// For returns the palette of a color theme. Unknown themes get the default.
func For(t profile.ColorTheme) Palette {
	fg := func(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	switch t {
	case profile.ThemeDark:
		return Palette{
			Title:   fg(Blue).Bold(true),
			Desc:    fg(Gray),
			Usage:   fg(Yellow),
			Example: fg(Green),
			Tip:     fg(Magenta),
		}
	case profile.ThemeLight:
		return Palette{
			Title:   fg(Blue).Bold(true),
			Desc:    fg(Black),
			Usage:   fg(Yellow),
			Example: fg(Green),
			Tip:     fg(Magenta),
		}
	case profile.ThemeColorblind:
		return Palette{
			Title:   fg(Blue).Bold(true),
			Desc:    fg(White),
			Usage:   fg(Cyan),
			Example: fg(Yellow),
			Tip:     fg(Blue),
		}
	default:
		return Palette{
			Title:   fg(Cyan).Bold(true),
			Desc:    fg(White),
			Usage:   fg(Yellow),
			Example: fg(Green),
			Tip:     fg(Magenta),
		}
	}
}
