// Package prompt asks the learner questions on the terminal.
//
// On a TTY each prompt is a small Bubble Tea program. Otherwise prompts
// fall back to plain line reads so scripted input keeps working.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/theme"
)

// ErrCancelled is returned when the learner aborts a prompt or input ends.
var ErrCancelled = errors.New("prompt cancelled")

// Terminal runs prompts against an input and output stream.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	lines       *bufio.Reader
	interactive bool
}

// New creates a Terminal. interactive selects Bubble Tea prompts; pass
// false for pipes and tests.
func New(in io.Reader, out io.Writer, interactive bool) *Terminal {
	return &Terminal{
		in:          in,
		out:         out,
		lines:       bufio.NewReader(in),
		interactive: interactive,
	}
}

// Stdio creates a Terminal on stdin and stdout, interactive when both are
// terminals.
func Stdio() *Terminal {
	return New(os.Stdin, os.Stdout, IsTerminal(os.Stdin) && IsTerminal(os.Stdout))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Interactive reports whether prompts use Bubble Tea.
func (t *Terminal) Interactive() bool {
	return t.interactive
}

// Select asks the learner to pick one of options and returns its index.
func (t *Terminal) Select(ctx context.Context, message string, options []string, initial int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", message)
	}
	if !t.interactive {
		return t.selectLine(message, options, initial)
	}
	final, err := t.run(ctx, newSelectModel(message, options, initial))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	if m.cancelled || m.chosen < 0 {
		return 0, ErrCancelled
	}
	return m.chosen, nil
}

// Input reads a line. validate, when non-nil, returns a message for
// rejected values and the learner is asked again.
func (t *Terminal) Input(ctx context.Context, message string, validate func(string) string) (string, error) {
	if !t.interactive {
		return t.inputLine(message, validate)
	}
	final, err := t.run(ctx, newInputModel(message, validate))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.cancelled || !m.done {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if !t.interactive {
		return t.confirmLine(message, def)
	}
	final, err := t.run(ctx, newConfirmModel(message, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.cancelled || !m.done {
		return false, ErrCancelled
	}
	return m.value, nil
}

// Pause waits for Enter.
func (t *Terminal) Pause(ctx context.Context) error {
	_, err := t.Input(ctx, "Press Enter to continue...", nil)
	return err
}

// Answer asks for a challenge answer and re-asks on blank input.
func (t *Terminal) Answer(ctx context.Context, attempt, max int) (string, error) {
	msg := fmt.Sprintf("Enter the command to solve this challenge (Attempt %d/%d):", attempt, max)
	return t.Input(ctx, msg, components.Required("Please enter a command"))
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.lines.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) selectLine(message string, options []string, initial int) (int, error) {
	for {
		fmt.Fprintln(t.out, question(message))
		for i, o := range options {
			fmt.Fprintf(t.out, "  %d) %s\n", i+1, o)
		}
		fmt.Fprint(t.out, "› ")
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if line == "" && initial >= 0 && initial < len(options) {
			return initial, nil
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		fmt.Fprintln(t.out, theme.Incorrect.Render(fmt.Sprintf("✗ Enter a number from 1 to %d", len(options))))
	}
}

func (t *Terminal) inputLine(message string, validate func(string) string) (string, error) {
	for {
		fmt.Fprint(t.out, question(message)+" ")
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		if validate != nil {
			if problem := validate(line); problem != "" {
				fmt.Fprintln(t.out, theme.Incorrect.Render("✗ "+problem))
				continue
			}
		}
		return strings.TrimSpace(line), nil
	}
}

func (t *Terminal) confirmLine(message string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		fmt.Fprint(t.out, question(message)+" "+hint+" ")
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}
