package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/adapters/metrics"
	"github.com/andrescamacho/starlane-logistics/internal/application/procurement/commands"
)

// NewMetricsCommand creates the metrics command with subcommands
func NewMetricsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Expose Prometheus metrics",
	}

	cmd.AddCommand(newMetricsServeCommand())

	return cmd
}

func newMetricsServeCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run procurement cycles and serve the resulting metrics until interrupted",
		Long: `Serve Prometheus metrics at metrics.host:metrics.port/metrics.path.

With --days the scenario is advanced first so the endpoint has data to show.
Metrics must be enabled (metrics.enabled or SL_METRICS_ENABLED=true).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if !metrics.IsEnabled() {
				return fmt.Errorf("metrics are disabled; set metrics.enabled")
			}
			if days > 0 {
				if _, err := app.Send(cmd.Context(), &commands.RunProcurementCycleCommand{Days: days}); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := app.Config.Metrics
			app.Logger.Info("Serving metrics", "addr", cfg.Addr(), "path", cfg.Path)
			return metrics.Serve(ctx, cfg.Addr(), cfg.Path)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days of procurement to run before serving")

	return cmd
}
