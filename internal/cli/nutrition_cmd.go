package cli

import (
	"fmt"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNutritionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nutrition",
		Short: "Weekly nutrition progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Nutrition.Weekly(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNutrition(w))
			return nil
		},
	}
}

func newMealsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "meals",
		Short: "This week's meal log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meals, err := app.Meals.ThisWeek(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMeals(meals, app.now()))
			return nil
		},
	}
}
