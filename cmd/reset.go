package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/termcommander/internal/ui/prompt"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long:  "Reset XP, level, badges, completed challenges and command history. The operating system and settings are kept. With --history the reward log is cleared too.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := d.term.Confirm(ctx, "Are you sure you want to reset all your progress? This cannot be undone.", false)
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := d.profile.Reset(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		d.log.Info("progress reset")
		d.console.Success("✔ Progress reset successfully!")

		if clear, _ := cmd.Flags().GetBool("history"); clear {
			if err := d.store.EventRepo().ClearRewardEvents(ctx); err != nil {
				return fmt.Errorf("clear reward log: %w", err)
			}
			d.log.Info("reward log cleared")
			d.console.Success("✔ Reward history cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	resetCmd.Flags().Bool("history", false, "Also clear the reward log shown by the history command")
}
