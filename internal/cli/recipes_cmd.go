package cli

import (
	"fmt"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecipesCmd(app *App) *cobra.Command {
	var cuisine string

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List the recipe catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			recipes, err := app.Catalog.List(ctx, cuisine)
			if err != nil {
				return err
			}
			counts, err := app.Catalog.Cuisines(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatRecipes(recipes))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatCuisines(counts))
			return nil
		},
	}

	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Only show one cuisine (case-insensitive)")
	_ = cmd.RegisterFlagCompletionFunc("cuisine", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		counts, err := app.Catalog.Cuisines(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, len(counts))
		for i, c := range counts {
			names[i] = c.Cuisine
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
