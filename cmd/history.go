package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/termcommander/internal/store"
)

// dateLayout is the format of --since and --until, read in local time.
const dateLayout = "2006-01-02"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent XP, level and badge awards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := historyQuery(cmd)
		if err != nil {
			return err
		}

		d, err := setup(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		repo := d.store.EventRepo()

		records, err := repo.QueryRewardEvents(ctx, opts)
		if err != nil {
			return fmt.Errorf("query reward log: %w", err)
		}
		d.console.History(records)
		if len(records) == 0 {
			return nil
		}

		xp, badges, err := repo.RewardTotals(ctx)
		if err != nil {
			return fmt.Errorf("reward totals: %w", err)
		}
		d.console.Info(fmt.Sprintf("\nAll time: %d XP awarded, %d badges earned", xp, badges))
		return nil
	},
}

// historyQuery builds the log filter from --limit, --since and --until.
// Both dates are inclusive.
func historyQuery(cmd *cobra.Command) (store.QueryOpts, error) {
	limit, _ := cmd.Flags().GetInt("limit")
	opts := store.QueryOpts{Limit: limit}

	if v, _ := cmd.Flags().GetString("since"); v != "" {
		day, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return opts, fmt.Errorf("invalid --since %q: want YYYY-MM-DD", v)
		}
		opts.From = day
	}
	if v, _ := cmd.Flags().GetString("until"); v != "" {
		day, err := time.ParseInLocation(dateLayout, v, time.Local)
		if err != nil {
			return opts, fmt.Errorf("invalid --until %q: want YYYY-MM-DD", v)
		}
		opts.To = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !opts.From.IsZero() && !opts.To.IsZero() && opts.To.Before(opts.From) {
		return opts, errors.New("--until is before --since")
	}
	return opts, nil
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of entries to show (0 shows all)")
	historyCmd.Flags().String("since", "", "Only show awards on or after this date (YYYY-MM-DD)")
	historyCmd.Flags().String("until", "", "Only show awards on or before this date (YYYY-MM-DD)")
}
