package cli

import (
	"fmt"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/spf13/cobra"
)

func newPantryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "View or manage the pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Pantry.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPantry(p))
			return nil
		},
	}

	cmd.AddCommand(
		newPantryMarkCmd(app, "add", "Mark items as in stock", true),
		newPantryMarkCmd(app, "remove", "Mark items as need to buy", false),
	)
	return cmd
}

// newPantryMarkCmd builds "pantry add" and "pantry remove". Items may be
// separate arguments or one comma-separated string.
func newPantryMarkCmd(app *App, use, short string, inStock bool) *cobra.Command {
	return &cobra.Command{
		Use:     use + " ITEMS...",
		Short:   short,
		Example: fmt.Sprintf("  recipebot pantry %s \"spinach, tofu\"", use),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				change *contract.PantryChange
				err    error
			)
			if inStock {
				change, err = app.Pantry.MarkInStock(cmd.Context(), args)
			} else {
				change, err = app.Pantry.MarkOutOfStock(cmd.Context(), args)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPantryChange(change))
			return nil
		},
	}
}
