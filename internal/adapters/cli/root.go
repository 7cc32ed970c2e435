package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "homestead",
		Short: "Stellar Homestead - a turn-based colony survival simulation",
		Long: `Stellar Homestead runs a small off-world colony through turn cycles of
production, random events and management decisions. Keep the colonists fed
and breathing for ten turns to win.

Examples:
  homestead run
  homestead run --turns 10 --seed 42
  homestead run --script decisions.txt --no-save
  homestead resume <run-id>
  homestead saves list`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewResumeCommand())
	rootCmd.AddCommand(NewSavesCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
