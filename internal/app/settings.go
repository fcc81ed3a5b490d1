package app

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/termcommander/internal/profile"
)

var themeLabels = map[profile.ColorTheme]string{
	profile.ThemeDefault:    "Default",
	profile.ThemeDark:       "Dark",
	profile.ThemeLight:      "Light",
	profile.ThemeColorblind: "Colorblind Friendly",
}

var difficultyLabels = map[profile.Difficulty]string{
	profile.Beginner:     "Beginner",
	profile.Intermediate: "Intermediate",
	profile.Advanced:     "Advanced",
}

// settings loops over the settings menu until the learner goes back.
func (a *App) settings(ctx context.Context) error {
	for {
		s, err := a.Profile.Settings(ctx)
		if err != nil {
			a.Log.Warn("read settings, showing defaults", zap.Error(err))
		}

		rows := []string{
			"Color Theme: " + string(s.ColorTheme),
			"Show Tips: " + yesNo(s.ShowTips),
			"Difficulty Level: " + string(s.DifficultyLevel),
			"Back to Main Menu",
		}
		row, err := a.Prompts.Select(ctx, "Settings:", rows, 0)
		if err != nil {
			return err
		}

		switch row {
		case 0:
			s.ColorTheme, err = pick(ctx, a.Prompts, "Select color theme:", profile.AllColorThemes, themeLabels, s.ColorTheme)
		case 1:
			s.ShowTips, err = a.Prompts.Confirm(ctx, "Show tips during sessions?", s.ShowTips)
		case 2:
			s.DifficultyLevel, err = pick(ctx, a.Prompts, "Select difficulty level:", profile.AllDifficulties, difficultyLabels, s.DifficultyLevel)
		default:
			return nil
		}
		if err != nil {
			return err
		}

		if err := a.Profile.SetSettings(ctx, s); err != nil {
			a.Log.Error("save settings", zap.Error(err))
			a.Console.Error("Error saving settings. Please try again.")
			continue
		}
		a.Log.Info("settings updated",
			zap.String("theme", string(s.ColorTheme)),
			zap.Bool("tips", s.ShowTips),
			zap.String("difficulty", string(s.DifficultyLevel)),
		)
		a.Console.Success("Settings updated!")
	}
}

// pick selects one of values, preselecting current.
func pick[T comparable](ctx context.Context, p Prompts, message string, values []T, labels map[T]string, current T) (T, error) {
	opts := make([]string, len(values))
	for i, v := range values {
		opts[i] = labels[v]
		if opts[i] == "" {
			opts[i] = fmt.Sprint(v)
		}
	}
	initial := max(slices.Index(values, current), 0)
	i, err := p.Select(ctx, message, opts, initial)
	if err != nil {
		return current, err
	}
	return values[i], nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
