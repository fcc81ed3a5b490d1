// Package challenge runs a single multi-attempt command challenge.
//
// A session walks SELECT → PRESENT → AWAIT_ANSWER and ends in CORRECT,
// EXHAUSTED, ALL_COMPLETED or ABORTED. Any failure inside the session is
// logged and reported through Display.Failed; it never escapes Run.
package challenge

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/logging"
	"github.com/abhisek/termcommander/internal/profile"
	"github.com/abhisek/termcommander/internal/rewards"
	"go.uber.org/zap"
)

const (
	MaxAttempts    = 3
	BaseXP         = 25
	AttemptBonusXP = 5
	ConsolationXP  = 5
)

// FallbackAdditionalHint is shown after the second miss when a challenge
// has no additional hint of its own.
const FallbackAdditionalHint = "Think about the specific flags or options needed."

// Prompter asks the learner for an answer. attempt is 1-based.
// Implementations re-ask on blank input; a blank answer never reaches
// the engine.
type Prompter interface {
	Answer(ctx context.Context, attempt, max int) (string, error)
}

// Display renders each step of a session.
type Display interface {
	AllCompleted()
	Present(ch content.Challenge)
	Checking()
	Correct(xp int)
	Retry(hint string)
	AdditionalHint(hint string)
	Exhausted(solution string)
	Failed()
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// Outcome summarizes a finished session.
type Outcome struct {
	State     State
	Challenge *content.Challenge
	// AttemptsUsed is the number of answers submitted.
	AttemptsUsed int
	XPAwarded    int
}

// Engine runs challenge sessions.
type Engine struct {
	catalog *content.Catalog
	profile *profile.Profile
	rewards *rewards.Service
	prompt  Prompter
	display Display
	pick    Picker
	delay   time.Duration
	log     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker replaces the uniform random picker.
func WithPicker(p Picker) Option {
	return func(e *Engine) { e.pick = p }
}

// WithDelay sets the pause between submitting and judging an answer.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.log = logging.OrNop(l) }
}

// NewEngine wires an Engine. The default picker is uniform random and the
// default delay is zero.
func NewEngine(cat *content.Catalog, p *profile.Profile, r *rewards.Service, prompt Prompter, display Display, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		profile: p,
		rewards: r,
		prompt:  prompt,
		display: display,
		pick:    rand.IntN,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Score is the XP for solving a challenge after misses wrong answers at
// the given difficulty setting.
func Score(d profile.Difficulty, misses int) int {
	bonus := MaxAttempts - misses
	return int(math.Floor(BaseXP*d.Multiplier() + float64(bonus*AttemptBonusXP)))
}

// Run plays one challenge for os.
func (e *Engine) Run(ctx context.Context, os profile.OS) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("challenge session panicked",
				zap.String("os", string(os)),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			e.display.Failed()
			out.State = StateAborted
		}
	}()

	out, err := e.run(ctx, os)
	if err != nil {
		e.log.Error("challenge session failed", zap.String("os", string(os)), zap.Error(err))
		e.display.Failed()
		out.State = StateAborted
	}
	return out
}

func (e *Engine) run(ctx context.Context, os profile.OS) (Outcome, error) {
	out := Outcome{State: StateSelect}

	completed, err := e.profile.CompletedChallenges(ctx)
	if err != nil {
		return out, fmt.Errorf("read completed challenges: %w", err)
	}
	difficulty := e.difficulty(ctx)

	ch, ok := e.selectChallenge(os, completed, difficulty)
	if !ok {
		e.display.AllCompleted()
		out.State = StateAllCompleted
		return out, nil
	}

	out.State = StatePresent
	out.Challenge = &ch
	e.display.Present(ch)

	att := NewAttempt(ch)
	for {
		out.State = StateAwaitAnswer
		answer, err := e.prompt.Answer(ctx, att.Number(), att.Max)
		if err != nil {
			return out, fmt.Errorf("read answer: %w", err)
		}
		out.AttemptsUsed++

		e.display.Checking()
		if err := e.pace(ctx); err != nil {
			return out, err
		}

		if att.Check(answer) {
			xp, err := e.complete(ctx, os, ch, completed, difficulty, att.Used)
			if err != nil {
				return out, err
			}
			out.State = StateCorrect
			out.XPAwarded = xp
			return out, nil
		}

		if att.Exhausted() {
			e.display.Exhausted(ch.Solution)
			e.rewards.AwardXP(ctx, ConsolationXP)
			e.log.Info("challenge failed",
				zap.String("id", ch.ID),
				zap.Int("attempts", out.AttemptsUsed),
			)
			out.State = StateExhausted
			out.XPAwarded = ConsolationXP
			return out, nil
		}

		out.State = StateRetry
		e.display.Retry(ch.Hint)
		if att.Used == 2 {
			hint := ch.AdditionalHint
			if hint == "" {
				hint = FallbackAdditionalHint
			}
			e.display.AdditionalHint(hint)
		}
	}
}

// selectChallenge picks an unfinished challenge. A non-beginner setting
// narrows the pool to that difficulty unless nothing would remain.
func (e *Engine) selectChallenge(os profile.OS, completed []string, d profile.Difficulty) (content.Challenge, bool) {
	var available []content.Challenge
	for _, ch := range e.catalog.Challenges(os) {
		if !slices.Contains(completed, ch.ID) {
			available = append(available, ch)
		}
	}
	if len(available) == 0 {
		return content.Challenge{}, false
	}

	pool := available
	if d != profile.Beginner {
		var filtered []content.Challenge
		for _, ch := range available {
			if ch.Difficulty == d {
				filtered = append(filtered, ch)
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return pool[e.pick(len(pool))], true
}

// complete records the solved challenge, awards XP and completion badges.
func (e *Engine) complete(ctx context.Context, os profile.OS, ch content.Challenge, completed []string, d profile.Difficulty, misses int) (int, error) {
	if !slices.Contains(completed, ch.ID) {
		completed = append(completed, ch.ID)
	}
	if err := e.profile.SetCompletedChallenges(ctx, completed); err != nil {
		return 0, fmt.Errorf("record completion of %s: %w", ch.ID, err)
	}

	xp := Score(d, misses)
	e.rewards.AwardXP(ctx, xp)
	e.display.Correct(xp)

	e.rewards.AwardThresholds(ctx, len(completed), rewards.ChallengeThresholds)

	osChallenges := e.catalog.Challenges(os)
	done := 0
	for _, c := range osChallenges {
		if slices.Contains(completed, c.ID) {
			done++
		}
	}
	if len(osChallenges) > 0 && done == len(osChallenges) {
		e.rewards.AwardBadge(ctx, rewards.OSMasterBadge(os))
	}

	e.log.Info("challenge completed",
		zap.String("id", ch.ID),
		zap.Int("misses", misses),
		zap.Int("xp", xp),
	)
	return xp, nil
}

func (e *Engine) difficulty(ctx context.Context) profile.Difficulty {
	s, err := e.profile.Settings(ctx)
	if err != nil {
		e.log.Warn("read settings, using beginner difficulty", zap.Error(err))
		return profile.Beginner
	}
	if !s.DifficultyLevel.Valid() {
		return profile.Beginner
	}
	return s.DifficultyLevel
}

func (e *Engine) pace(ctx context.Context) error {
	if e.delay <= 0 {
		return nil
	}
	t := time.NewTimer(e.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
