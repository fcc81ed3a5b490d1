package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:     "explain <command>",
	Aliases: []string{"learn"},
	Short:   "Explain a terminal command",
	Args:    cobra.MinimumNArgs(1),
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

		name := strings.Join(args, " ")
		svc := d.lookup()
		if svc.Explain(ctx, name, os) {
			svc.EasterEgg(ctx, os, name)
		}
		return nil
	},
}
