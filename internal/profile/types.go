package profile

import (
	"fmt"
	"strings"
)

// OS identifies the command set a learner studies.
type OS string

const (
	Linux   OS = "linux"
	Windows OS = "windows"
	Mac     OS = "mac"
)

// AllOS lists the supported operating systems in menu order.
var AllOS = []OS{Linux, Windows, Mac}

// ParseOS validates s as an OS identifier.
func ParseOS(s string) (OS, error) {
	o := OS(strings.ToLower(strings.TrimSpace(s)))
	if o.Valid() {
		return o, nil
	}
	return "", fmt.Errorf("unsupported os %q (want linux, windows or mac)", s)
}

// Valid reports whether o is a supported OS.
func (o OS) Valid() bool {
	switch o {
	case Linux, Windows, Mac:
		return true
	}
	return false
}

// Title returns the capitalized name used in badges, e.g. "Mac".
func (o OS) Title() string {
	if o == "" {
		return ""
	}
	return strings.ToUpper(string(o[:1])) + string(o[1:])
}

// Difficulty is a challenge tier and the learner's preferred tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// AllDifficulties lists the tiers from easiest to hardest.
var AllDifficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Multiplier scales the base challenge reward.
func (d Difficulty) Multiplier() float64 {
	switch d {
	case Intermediate:
		return 1.5
	case Advanced:
		return 2
	default:
		return 1
	}
}

// ColorTheme selects the palette used when rendering command cards.
type ColorTheme string

const (
	ThemeDefault    ColorTheme = "default"
	ThemeDark       ColorTheme = "dark"
	ThemeLight      ColorTheme = "light"
	ThemeColorblind ColorTheme = "colorblind"
)

// AllColorThemes lists the themes in menu order.
var AllColorThemes = []ColorTheme{ThemeDefault, ThemeDark, ThemeLight, ThemeColorblind}

// Valid reports whether t is a known theme.
func (t ColorTheme) Valid() bool {
	switch t {
	case ThemeDefault, ThemeDark, ThemeLight, ThemeColorblind:
		return true
	}
	return false
}

// Settings are the learner's preferences.
type Settings struct {
	ColorTheme      ColorTheme `json:"colorTheme"`
	ShowTips        bool       `json:"showTips"`
	DifficultyLevel Difficulty `json:"difficultyLevel"`
}

// DefaultSettings returns the settings of a fresh profile.
func DefaultSettings() Settings {
	return Settings{
		ColorTheme:      ThemeDefault,
		ShowTips:        true,
		DifficultyLevel: Beginner,
	}
}
