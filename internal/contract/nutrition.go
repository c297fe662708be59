package contract

import (
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/nutrition"
)

// WeeklyNutrition is the week-to-date view shown by `nutrition` and the
// header of `dinner`.
type WeeklyNutrition struct {
	WeekStart time.Time
	Totals    domain.WeeklyTotals
	Goals     domain.NutritionGoals
	Progress  nutrition.GoalProgress
	Advice    nutrition.Advice
	Meals     []domain.MealEntry
}

type LogMealRequest struct {
	Name  string
	Notes string
	// On overrides the cooked-on date; nil means today.
	On *time.Time
}

type LogMealResponse struct {
	Entry  domain.MealEntry
	Recipe domain.Recipe
	Weekly WeeklyNutrition
}

type PantryChange struct {
	Items   []string
	InStock bool
}
