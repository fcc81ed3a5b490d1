package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/termcommander/internal/challenge"
)

var errChallengeAborted = errors.New("challenge aborted")

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Take a random challenge",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		os, err := d.resolveOS(ctx, cmd)
		if err != nil {
			return err
		}

		if out := d.engine().Run(ctx, os); out.State == challenge.StateAborted {
			return errChallengeAborted
		}
		return nil
	},
}
