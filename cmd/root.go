package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termcommander",
	Short: "Learn terminal commands by playing",
	Long: "Terminal Commander is an interactive assistant that teaches shell commands " +
		"for Linux, Windows and macOS with explanations, challenges, XP and badges.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides TERMCOMMANDER_DB env var)")
	flags.String("os", "", "Operating system to learn: linux, windows or mac (overrides TERMCOMMANDER_OS env var)")
	flags.BoolP("verbose", "v", false, "Echo warnings and errors to stderr")

	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
