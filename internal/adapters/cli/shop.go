package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/application/procurement/commands"
)

// NewShopCommand creates the shop command with subcommands
func NewShopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Work the shopping list",
		Long: `Run procurement cycles over the shopping list.

The mode (automatic, standard or planetary) comes from campaign.procurement.mode.

Examples:
  starlane shop run
  starlane shop run --days 30 --seed 42`,
	}

	cmd.AddCommand(newShopRunCommand())

	return cmd
}

// newShopRunCommand creates the shop run subcommand
func newShopRunCommand() *cobra.Command {
	var (
		days  int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance the campaign and run one cycle per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &commands.RunProcurementCycleCommand{Days: days})
			if err != nil {
				return err
			}
			result := response.(*commands.RunProcurementCycleResponse)

			deliveries := 0
			for _, report := range result.Reports {
				deliveries += len(report.Deliveries)
				if quiet {
					continue
				}
				fmt.Printf("== %s (%s) ==\n", report.Date.Format("2006-01-02"), report.Mode)
				for _, line := range report.Lines {
					fmt.Printf("  %s\n", line)
				}
			}

			fmt.Printf("\nDays: %d  Deliveries: %d  Arrived: %d  Balance: %s\n",
				len(result.Reports), deliveries, result.Arrived, formatCredits(result.Balance))

			if len(result.Remaining) == 0 {
				fmt.Println("Shopping list is empty.")
				return nil
			}
			fmt.Println("\nRemaining:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ITEM\tQTY\tAVAIL\tWAIT")
			for _, work := range result.Remaining {
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\n", work.Name, work.Quantity, work.Availability, work.DaysToWait)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&days, "days", 1, "Number of days to advance")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print the summary")

	return cmd
}
