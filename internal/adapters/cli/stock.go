package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/application/stock/commands"
	"github.com/andrescamacho/starlane-logistics/internal/application/stock/queries"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
	"github.com/andrescamacho/starlane-logistics/internal/domain/warehouse"
)

// NewStockCommand creates the stock command with subcommands
func NewStockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Quartermaster operations",
		Long: `View and change the warehouse.

Stock changes are saved when database.enabled is set.

Examples:
  starlane stock list
  starlane stock add --type "Medium Laser" --quality C --quantity 2
  starlane stock remove-ammo --type "LRM-10 Ammo" --shots 12`,
	}

	cmd.AddCommand(newStockListCommand())
	cmd.AddCommand(newStockAddCommand())
	cmd.AddCommand(newStockRemoveAmmoCommand())

	return cmd
}

func newStockListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stock on hand and in transit",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &queries.ListStockQuery{})
			if err != nil {
				return err
			}
			result := response.(*queries.ListStockResponse)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tQUALITY\tQTY\tKIND\tARRIVES")
			for _, line := range result.OnHand {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t-\n", line.Type, line.Quality, line.Quantity, kindOf(line.IsAmmo))
			}
			for _, line := range result.InTransit {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%dd\n", line.Type, line.Quality, line.Quantity, kindOf(line.IsAmmo), line.DaysToArrival)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\nBalance: %s\n", formatCredits(result.Balance))
			return nil
		},
	}
}

func newStockAddCommand() *cobra.Command {
	var (
		partType string
		quality  string
		quantity int
		unitCost int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add parts or ammunition to the warehouse",
		Long: `Add parts to the warehouse, merging with entries of the same type and quality.
When --type names a scenario ammunition type, --quantity counts shots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := shared.ParseRating(quality)
			if err != nil {
				return err
			}

			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &commands.AddStockCommand{
				PartType: partType,
				Quality:  rating,
				Quantity: quantity,
				UnitCost: unitCost,
			})
			if err != nil {
				return err
			}
			result := response.(*commands.AddStockResponse)
			fmt.Printf("%s now holds %d\n", result.Key, result.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&partType, "type", "", "Part or ammunition type [required]")
	cmd.Flags().StringVar(&quality, "quality", "D", "Quality rating A-F")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units, or shots for ammunition")
	cmd.Flags().Int64Var(&unitCost, "unit-cost", 0, "Cost per unit in C-bills")
	cmd.MarkFlagRequired("type")

	return cmd
}

func newStockRemoveAmmoCommand() *cobra.Command {
	var (
		ammoType string
		shots    int
	)

	cmd := &cobra.Command{
		Use:   "remove-ammo",
		Short: "Withdraw ammunition, converting compatible racks when allowed",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &commands.WithdrawAmmoCommand{AmmoType: ammoType, Shots: shots})
			if err != nil {
				return err
			}
			result := response.(*warehouse.Withdrawal)

			fmt.Printf("Delivered %d of %d shots (%d from exact stock)\n", result.Delivered, result.Requested, result.FromExact)
			for _, c := range result.Conversions {
				fmt.Printf("  converted %d shots of %s into %d\n", c.Consumed, c.From.Name, c.Equivalent)
			}
			if result.Loss > 0 {
				fmt.Printf("  %d rounds lost to rounding\n", result.Loss)
			}
			if result.Surplus > 0 {
				fmt.Printf("  %d surplus shots returned to stock\n", result.Surplus)
			}
			if result.Shortfall() > 0 {
				fmt.Printf("  short by %d shots\n", result.Shortfall())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ammoType, "type", "", "Ammunition type [required]")
	cmd.Flags().IntVar(&shots, "shots", 0, "Shots needed [required]")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("shots")

	return cmd
}

func kindOf(isAmmo bool) string {
	if isAmmo {
		return "ammo"
	}
	return "part"
}
