package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/termcommander/internal/ui/components"
	"github.com/abhisek/termcommander/internal/ui/console"
	"github.com/abhisek/termcommander/internal/ui/prompt"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search commands by name, alias or description",
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

		term := strings.Join(args, " ")
		if strings.TrimSpace(term) == "" {
			term, err = d.term.Input(ctx, "Enter search term:", components.Required("Please enter a search term"))
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			if err != nil {
				return err
			}
		}

		svc := d.lookup()
		results := svc.Search(os, term)
		if !d.console.SearchResults(term, len(results)) {
			return nil
		}

		labels := make([]string, len(results))
		for i, c := range results {
			labels[i] = console.SearchLabel(c)
		}
		if !d.term.Interactive() {
			for _, l := range labels {
				d.console.Info("  " + l)
			}
			return nil
		}

		i, err := d.term.Select(ctx, "Select a command to learn more:", labels, 0)
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		svc.Explain(ctx, results[i].Name, os)
		return nil
	},
}
