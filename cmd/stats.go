package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/termcommander/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		s, err := stats.Compute(cmd.Context(), d.profile, time.Now())
		if err != nil {
			return fmt.Errorf("compute stats: %w", err)
		}
		d.console.Stats(s)
		return nil
	},
}
