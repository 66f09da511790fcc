package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Starlane configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SL_* prefix, e.g. SL_CAMPAIGN_TRANSIT_UNIT=week)
2. Config file (starlane.yaml)
3. Default values

Example:
  starlane config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}
			printConfig(cfg)
			return nil
		},
	}
}

func printConfig(cfg *config.Config) {
	fmt.Println("Starlane Configuration")
	fmt.Println("======================")

	fmt.Println("\nDatabase:")
	fmt.Printf("  Enabled:          %t\n", cfg.Database.Enabled)
	fmt.Printf("  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.URL != "":
		fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
	case cfg.Database.Type == "sqlite":
		fmt.Printf("  Path:             %s\n", cfg.Database.Path)
	default:
		fmt.Printf("  Host:             %s\n", cfg.Database.Host)
		fmt.Printf("  Port:             %d\n", cfg.Database.Port)
		fmt.Printf("  Database:         %s\n", cfg.Database.Name)
		fmt.Printf("  User:             %s\n", cfg.Database.User)
	}

	fmt.Println("\nLogging:")
	fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
	fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
	fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

	fmt.Println("\nMetrics:")
	fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
	fmt.Printf("  Endpoint:         http://%s%s\n", cfg.Metrics.Addr(), cfg.Metrics.Path)

	c := cfg.Campaign
	fmt.Println("\nCampaign:")
	fmt.Printf("  Scenario:         %s\n", valueOr(c.Scenario, "(not set)"))
	fmt.Printf("  Seed:             %d\n", c.Seed)
	fmt.Printf("  Transit Unit:     %s\n", c.Transit.Unit)
	fmt.Printf("  Avoid Empty:      %t\n", c.Routing.AvoidEmptySystems)
	fmt.Printf("  Faction Standing: %t (outlaw at %.1f)\n", c.Access.TrackFactionStanding, c.Access.OutlawThreshold)
	fmt.Printf("  Command Circuit:  %t (standing %.1f)\n", c.Access.UseCommandCircuit, c.Access.CommandCircuitThreshold)
	fmt.Printf("  Acquisition:      %s, tech level %s\n", c.Acquisition.Skill, c.Acquisition.TechLevel)
	fmt.Printf("  Procurement:      %s (cap %d, wait %d days, %d jumps)\n",
		c.Procurement.Mode, c.Procurement.MaxAcquisitions, c.Procurement.WaitingPeriod, c.Procurement.MaxJumpsPlanetary)
	fmt.Printf("  Ammo By Type:     %t\n", c.Quartermaster.UseAmmoByType)
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
