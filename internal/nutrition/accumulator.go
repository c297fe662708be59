// Package nutrition derives weekly totals and goal progress from the meal log.
// Every function is pure: callers pass the history and the reference date.
package nutrition

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// DefaultRecentDays is how far back a recipe counts as "had recently".
const DefaultRecentDays = 3

// WeekStart returns Monday 00:00 of asOf's week, in asOf's location.
func WeekStart(asOf time.Time) time.Time {
	offset := (int(asOf.Weekday()) + 6) % 7
	y, m, d := asOf.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, asOf.Location())
}

// WeeklyTotals sums every entry cooked on or after WeekStart(asOf).
func WeeklyTotals(history []domain.MealEntry, asOf time.Time) domain.WeeklyTotals {
	var totals domain.WeeklyTotals
	for _, e := range MealsThisWeek(history, asOf) {
		totals.Add(e)
	}
	return totals
}

// MealsThisWeek returns this week's entries ordered by cooked date, keeping
// log order within a day.
func MealsThisWeek(history []domain.MealEntry, asOf time.Time) []domain.MealEntry {
	start := domain.DateOf(WeekStart(asOf))
	var out []domain.MealEntry
	for _, e := range history {
		if !domain.DateOf(e.CookedOn).Before(start) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return domain.DateOf(out[i].CookedOn).Before(domain.DateOf(out[j].CookedOn))
	})
	return out
}

// RecentRecipeNames returns the lower-cased names cooked within windowDays of
// asOf, inclusive at date granularity.
func RecentRecipeNames(history []domain.MealEntry, asOf time.Time, windowDays int) map[string]bool {
	cutoff := domain.DateOf(asOf).AddDate(0, 0, -windowDays)
	recent := make(map[string]bool)
	for _, e := range history {
		if !domain.DateOf(e.CookedOn).Before(cutoff) {
			recent[strings.ToLower(e.RecipeName)] = true
		}
	}
	return recent
}

// IsRecent reports whether name is in a set built by RecentRecipeNames.
func IsRecent(recent map[string]bool, name string) bool {
	return recent[strings.ToLower(name)]
}
