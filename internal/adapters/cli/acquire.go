package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/starlane-logistics/internal/application/procurement/queries"
)

// NewAcquireCommand creates the acquire command with subcommands
func NewAcquireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acquire",
		Short: "Inspect acquisition rolls",
		Long: `Inspect the target numbers personnel face when acquiring shopping list items.

Examples:
  starlane acquire target --item "Medium Laser"
  starlane acquire target --item "Medium Laser" --person ana --system new-avalon`,
	}

	cmd.AddCommand(newAcquireTargetCommand())

	return cmd
}

// newAcquireTargetCommand creates the acquire target subcommand
func newAcquireTargetCommand() *cobra.Command {
	var (
		item     string
		personID string
		systemID string
	)

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Show the target roll for an item",
		Long: `Show the target roll and its modifiers for a shopping list item.

Without --person the best qualified acquirer is used. With --system the
planetary modifiers of that system are applied as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			response, err := app.Send(cmd.Context(), &queries.EvaluateTargetQuery{
				ItemName: item,
				PersonID: personID,
				SystemID: systemID,
			})
			if err != nil {
				return err
			}
			result := response.(*queries.EvaluateTargetResponse)

			fmt.Printf("%s: %s\n", item, result.Value)
			fmt.Printf("  %s\n", result.Description)
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "Shopping list item name [required]")
	cmd.Flags().StringVar(&personID, "person", "", "Person id")
	cmd.Flags().StringVar(&systemID, "system", "", "System to shop at")
	cmd.MarkFlagRequired("item")

	return cmd
}
