package console

import (
	"fmt"

	"github.com/abhisek/termcommander/internal/content"
	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/theme"
)

// ChallengeView adapts a Console to challenge.Display.
type ChallengeView struct{ *Console }

// Challenge returns the challenge.Display view of c.
func (c *Console) Challenge() ChallengeView { return ChallengeView{c} }

func (c ChallengeView) AllCompleted() {
	c.Warn("You have completed all available challenges! More coming soon.")
}

func (c ChallengeView) Present(ch content.Challenge) {
	c.println(components.Card(theme.Green,
		theme.Correct.Render("Challenge: "+ch.Title),
		"",
		theme.Body.Render(ch.Description),
		"",
		theme.Warn.Render("Hint: ")+theme.Body.Foreground(theme.TextDim).Render(ch.Hint),
	))
}

func (c ChallengeView) Checking() {
	c.Dim("Checking your answer...")
}

func (c ChallengeView) Correct(xp int) {
	c.Success("✔ Correct! Challenge completed!")
	c.Success(fmt.Sprintf("You earned %d XP for completing this challenge!", xp))
}

func (c ChallengeView) Retry(hint string) {
	c.Error("✖ Not quite right. Try again!")
	c.Dim("Hint: " + hint)
}

func (c ChallengeView) AdditionalHint(hint string) {
	c.Warn("Additional hint: " + hint)
}

func (c ChallengeView) Exhausted(solution string) {
	c.Error("✖ Challenge not completed.")
	c.println(theme.Warn.Render("The correct command was: ") + theme.Correct.UnsetBold().Render(solution))
	c.Info("Don't worry! You can try another challenge.")
}

func (c ChallengeView) Failed() {
	c.Error("Error during challenge. Please try again.")
}
