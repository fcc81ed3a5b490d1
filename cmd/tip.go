package cmd

import (
	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show a random terminal tip",
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
		d.tips().Show(ctx, os)
		return nil
	},
}
