package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	scenarioPath string
	seed         int64
	verbose      bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starlane",
		Short: "Starlane - interstellar logistics for a mercenary campaign",
		Long: `Starlane plans jump routes, estimates delivery times, works the shopping list
and keeps the quartermaster's stock for a campaign scenario.

Examples:
  starlane route --from galax --to tharkad
  starlane transit --from new-avalon
  starlane transit --availability E
  starlane acquire target --item "Medium Laser" --person ana
  starlane shop run --days 30
  starlane stock list
  starlane stock remove-ammo --type "LRM-10 Ammo" --shots 12`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./starlane.yaml, ./configs, /etc/starlane)")
	rootCmd.PersistentFlags().StringVar(&scenarioPath, "scenario", "",
		"Path to scenario YAML (overrides campaign.scenario)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Dice seed (overrides campaign.seed; 0 seeds from the clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewRouteCommand())
	rootCmd.AddCommand(NewTransitCommand())
	rootCmd.AddCommand(NewAcquireCommand())
	rootCmd.AddCommand(NewShopCommand())
	rootCmd.AddCommand(NewStockCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewMetricsCommand())

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
