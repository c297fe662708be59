package service

import (
	"time"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/nutrition"
)

// Clock returns the current time. Tests pass a fixed clock.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// buildWeekly assembles the week-to-date nutrition view from the full
// history.
func buildWeekly(history []domain.MealEntry, goals domain.NutritionGoals, now time.Time) contract.WeeklyNutrition {
	totals := nutrition.WeeklyTotals(history, now)
	progress := nutrition.Progress(totals, goals)
	return contract.WeeklyNutrition{
		WeekStart: nutrition.WeekStart(now),
		Totals:    totals,
		Goals:     goals,
		Progress:  progress,
		Advice:    nutrition.AdviceFor(progress),
		Meals:     nutrition.MealsThisWeek(history, now),
	}
}
