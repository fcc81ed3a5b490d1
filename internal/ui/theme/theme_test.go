package theme

import (
	"testing"

	"github.com/abhisek/termcommander/internal/profile"
)

func TestForThemes(t *testing.T) {
	tests := []struct {
		theme profile.ColorTheme
		title any
		tip   any
	}{
		{profile.ThemeDefault, Cyan, Magenta},
		{profile.ThemeDark, Blue, Magenta},
		{profile.ThemeLight, Blue, Magenta},
		{profile.ThemeColorblind, Blue, Blue},
		{"neon", Cyan, Magenta},
	}
	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			p := For(tt.theme)
			if got := p.Title.GetForeground(); got != tt.title {
				t.Errorf("title color = %v, want %v", got, tt.title)
			}
			if got := p.Tip.GetForeground(); got != tt.tip {
				t.Errorf("tip color = %v, want %v", got, tt.tip)
			}
			if !p.Title.GetBold() {
				t.Error("title should be bold")
			}
		})
	}
}

func TestEveryThemeHasPalette(t *testing.T) {
	for _, th := range profile.AllColorThemes {
		if For(th).Example.GetForeground() == nil {
			t.Errorf("theme %s has no example color", th)
		}
	}
}
