package challenge

import (
	"strings"

	"github.com/abhisek/termcommander/internal/content"
)

// State is a step of a challenge session.
type State int

const (
	StateSelect State = iota
	StatePresent
	StateAwaitAnswer
	StateRetry
	StateCorrect
	StateExhausted
	StateAllCompleted
	StateAborted
)

var stateNames = map[State]string{
	StateSelect:       "select",
	StatePresent:      "present",
	StateAwaitAnswer:  "await_answer",
	StateRetry:        "retry",
	StateCorrect:      "correct",
	StateExhausted:    "exhausted",
	StateAllCompleted: "all_completed",
	StateAborted:      "aborted",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Attempt tracks answers against one challenge.
type Attempt struct {
	Challenge content.Challenge
	// Used counts wrong answers so far.
	Used int
	Max  int
}

// NewAttempt starts an attempt with MaxAttempts tries.
func NewAttempt(ch content.Challenge) *Attempt {
	return &Attempt{Challenge: ch, Max: MaxAttempts}
}

// Check compares the trimmed answer with the solution. A wrong answer
// consumes one try.
func (a *Attempt) Check(answer string) bool {
	if strings.TrimSpace(answer) == a.Challenge.Solution {
		return true
	}
	a.Used++
	return false
}

// Exhausted reports whether no tries remain.
func (a *Attempt) Exhausted() bool {
	return a.Used >= a.Max
}

// Number is the 1-based number of the next answer.
func (a *Attempt) Number() int {
	return a.Used + 1
}
