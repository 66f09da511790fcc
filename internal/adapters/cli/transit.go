package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/application/navigation/queries"
	"github.com/andrescamacho/starlane-logistics/internal/domain/shared"
)

// NewTransitCommand creates the transit command
func NewTransitCommand() *cobra.Command {
	var (
		from         string
		availability string
	)

	cmd := &cobra.Command{
		Use:   "transit",
		Short: "Estimate delivery time to the force",
		Long: `Estimate how many days a shipment takes to reach the force.

Give --from for a shipment leaving a known system, or --availability for an
item sourced by rarity alone. Padding is rolled in campaign.transit.unit.

Examples:
  starlane transit --from new-avalon
  starlane transit --availability E --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (from == "") == (availability == "") {
				return fmt.Errorf("exactly one of --from or --availability is required")
			}

			query := &queries.EstimateTransitQuery{OriginSystemID: from}
			if availability != "" {
				rating, err := shared.ParseRating(availability)
				if err != nil {
					return err
				}
				query.Availability = &rating
			}

			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), query)
			if err != nil {
				return err
			}
			result := response.(*queries.EstimateTransitResponse)

			fmt.Printf("Estimated transit: %d days (unit: %s)\n", result.Days, result.Unit)
			if from != "" {
				fmt.Printf("Minimum transit:   %d days\n", result.MinimumDays)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Origin system id")
	cmd.Flags().StringVar(&availability, "availability", "", "Availability rating A-F or X")

	return cmd
}
