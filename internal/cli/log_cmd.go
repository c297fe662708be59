package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var notes, date string

	cmd := &cobra.Command{
		Use:   "log [RECIPE]",
		Short: "Log a meal you cooked",
		Long: `Append a meal to this week's log. RECIPE may be a partial, case-insensitive
name. Without RECIPE an interactive picker is shown on a terminal.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			recipes, err := app.Catalog.List(cmd.Context(), "")
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return matching.SortedNames(recipes), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			name := ""
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			}
			if name == "" {
				if !app.interactive() {
					return errors.New("recipe name required, e.g. recipebot log \"Dal Tadka\"")
				}
				recipes, err := app.Catalog.List(ctx, "")
				if err != nil {
					return err
				}
				if len(recipes) == 0 {
					return errors.New("the recipe catalog is empty")
				}
				if err := logMealForm(recipes, &name, &notes, &date).Run(); err != nil {
					return err
				}
			}

			req := contract.LogMealRequest{Name: name, Notes: notes}
			if date != "" {
				on, err := domain.ParseDate(date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: use YYYY-MM-DD", date)
				}
				req.On = &on
			}

			resp, err := app.Meals.LogMeal(ctx, req)
			if errors.Is(err, domain.ErrRecipeNotFound) {
				if recipes, listErr := app.Catalog.List(ctx, ""); listErr == nil {
					fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecipeNotFound(name, matching.SortedNames(recipes)))
				}
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLogged(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().StringVar(&date, "date", "", "Cooked-on date (YYYY-MM-DD, default today)")

	return cmd
}
