package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/application/navigation/queries"
)

// NewRouteCommand creates the route command
func NewRouteCommand() *cobra.Command {
	var (
		from        string
		to          string
		bypassAcces bool
		bypassEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Plan a jump path between two systems",
		Long: `Plan the shortest jump path between two systems.

Jumps are limited to 30 light years. Systems whose owners have outlawed the
force are avoided unless --bypass-access is set, and unpopulated systems are
avoided when campaign.routing.avoid_empty_systems is on.

Examples:
  starlane route --from galax --to tharkad
  starlane route --from galax --to tharkad --bypass-access`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &queries.PlanRouteQuery{
				FromSystemID:           from,
				ToSystemID:             to,
				BypassAccessCheck:      bypassAcces,
				BypassEmptySystemCheck: bypassEmpty,
			})
			if err != nil {
				return err
			}
			result := response.(*queries.PlanRouteResponse)

			if len(result.SystemIDs) == 0 {
				fmt.Printf("No route from %s to %s (%s)\n", from, to, result.Reason)
				return nil
			}
			status := "complete"
			if !result.Reached {
				status = fmt.Sprintf("partial, %s", result.Reason)
			}
			fmt.Printf("Route %s -> %s (%s)\n", from, to, status)
			fmt.Printf("  Path:          %s\n", strings.Join(result.SystemIDs, " -> "))
			fmt.Printf("  Jumps:         %d\n", result.Jumps)
			fmt.Printf("  Distance:      %.1f ly\n", result.DistanceLY)
			fmt.Printf("  Recharge:      %.1f days\n", result.RechargeDays)
			fmt.Printf("  Expansions:    %d\n", result.Expansions)
			if result.Escaping {
				fmt.Println("  Escaping hostile space from the origin")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Origin system id [required]")
	cmd.Flags().StringVar(&to, "to", "", "Destination system id [required]")
	cmd.Flags().BoolVar(&bypassAcces, "bypass-access", false, "Ignore faction access restrictions")
	cmd.Flags().BoolVar(&bypassEmpty, "bypass-empty", false, "Allow unpopulated systems")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
