// Package profile gives typed access to the single learner profile kept in a
// store.ProfileRepo. Missing keys read as their defaults; every write is
// validated against the profile schema before it reaches the repo.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/termcommander/internal/store"
)

// Profile keys.
const (
	KeyOS                  = "os"
	KeyXP                  = "xp"
	KeyLevel               = "level"
	KeyCompletedChallenges = "completedChallenges"
	KeyCommandHistory      = "commandHistory"
	KeyBadges              = "badges"
	KeySettings            = "settings"
	KeyLastUsed            = "lastUsed"
)

// Profile is the learner's persistent record.
type Profile struct {
	repo store.ProfileRepo
	now  func() time.Time
}

// New creates a Profile over repo.
func New(repo store.ProfileRepo) *Profile {
	return &Profile{repo: repo, now: time.Now}
}

// NewMemory creates a Profile over a fresh in-memory repo.
func NewMemory() (*Profile, *store.MemoryProfileRepo) {
	repo := store.NewMemoryProfileRepo()
	return New(repo), repo
}

// SetClock overrides the clock used for the lastUsed default.
func (p *Profile) SetClock(now func() time.Time) {
	p.now = now
}

// Has reports whether key has ever been written.
func (p *Profile) Has(ctx context.Context, key string) (bool, error) {
	return p.repo.Has(ctx, key)
}

// get decodes key into dst. dst must already hold the default value; it is
// left untouched when the key is missing.
func (p *Profile) get(ctx context.Context, key string, dst any) error {
	raw, found, err := p.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode profile %q: %w", key, err)
	}
	return nil
}

func (p *Profile) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode profile %q: %w", key, err)
	}
	if err := validate(key, raw); err != nil {
		return err
	}
	return p.repo.Set(ctx, key, raw)
}

// OS returns the selected OS, or "" when none has been chosen.
func (p *Profile) OS(ctx context.Context) (OS, error) {
	var s *string
	if err := p.get(ctx, KeyOS, &s); err != nil {
		return "", err
	}
	if s == nil {
		return "", nil
	}
	return OS(*s), nil
}

func (p *Profile) SetOS(ctx context.Context, os OS) error {
	return p.set(ctx, KeyOS, os)
}

func (p *Profile) XP(ctx context.Context) (int, error) {
	xp := 0
	err := p.get(ctx, KeyXP, &xp)
	return xp, err
}

func (p *Profile) SetXP(ctx context.Context, xp int) error {
	return p.set(ctx, KeyXP, xp)
}

func (p *Profile) Level(ctx context.Context) (int, error) {
	level := 1
	err := p.get(ctx, KeyLevel, &level)
	return level, err
}

func (p *Profile) SetLevel(ctx context.Context, level int) error {
	return p.set(ctx, KeyLevel, level)
}

func (p *Profile) CompletedChallenges(ctx context.Context) ([]string, error) {
	return p.strings(ctx, KeyCompletedChallenges)
}

func (p *Profile) SetCompletedChallenges(ctx context.Context, ids []string) error {
	return p.set(ctx, KeyCompletedChallenges, nonNil(ids))
}

func (p *Profile) CommandHistory(ctx context.Context) ([]string, error) {
	return p.strings(ctx, KeyCommandHistory)
}

func (p *Profile) SetCommandHistory(ctx context.Context, names []string) error {
	return p.set(ctx, KeyCommandHistory, nonNil(names))
}

func (p *Profile) Badges(ctx context.Context) ([]string, error) {
	return p.strings(ctx, KeyBadges)
}

func (p *Profile) SetBadges(ctx context.Context, badges []string) error {
	return p.set(ctx, KeyBadges, nonNil(badges))
}

// Settings returns the stored settings. Fields missing from the stored
// document keep their defaults.
func (p *Profile) Settings(ctx context.Context) (Settings, error) {
	s := DefaultSettings()
	if err := p.get(ctx, KeySettings, &s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

func (p *Profile) SetSettings(ctx context.Context, s Settings) error {
	return p.set(ctx, KeySettings, s)
}

// LastUsed returns the last session start, defaulting to now.
func (p *Profile) LastUsed(ctx context.Context) (time.Time, error) {
	t := p.now()
	err := p.get(ctx, KeyLastUsed, &t)
	return t, err
}

func (p *Profile) SetLastUsed(ctx context.Context, t time.Time) error {
	return p.set(ctx, KeyLastUsed, t.UTC().Format(time.RFC3339Nano))
}

// Reset clears progress. The selected OS and settings are kept.
func (p *Profile) Reset(ctx context.Context) error {
	writes := []struct {
		key string
		v   any
	}{
		{KeyXP, 0},
		{KeyLevel, 1},
		{KeyCompletedChallenges, []string{}},
		{KeyCommandHistory, []string{}},
		{KeyBadges, []string{}},
	}
	for _, w := range writes {
		if err := p.set(ctx, w.key, w.v); err != nil {
			return fmt.Errorf("reset %s: %w", w.key, err)
		}
	}
	return nil
}

func (p *Profile) strings(ctx context.Context, key string) ([]string, error) {
	out := []string{}
	if err := p.get(ctx, key, &out); err != nil {
		return []string{}, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
