// Package scoring ranks recipes for tonight's dinner. The engine is pure: it
// never reads the clock, the store, or the network.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/alexanderramin/recipebot/internal/nutrition"
)

const (
	timeFitBonus       = 0.3
	proteinReferenceG  = 24.0
	fiberReferenceG    = 14.0
	nutritionBoost     = 1.5
	nutritionReasonMin = 0.6
	varietyRecent      = 0.05
	varietyFresh       = 0.85
	pantryUnknown      = 0.5
	maxMissingListed   = 3
	favoriteRating     = 5
)

type Input struct {
	Recipes      []domain.Recipe
	AvailableMin int
	Pantry       domain.Pantry
	Goals        domain.NutritionGoals
	History      []domain.MealEntry
	AsOf         time.Time
	Emphasis     domain.Emphasis
	// Matcher defaults to matching.Fuzzy.
	Matcher matching.Matcher
	// RecentDays defaults to nutrition.DefaultRecentDays.
	RecentDays int
}

// scoringContext is everything derived once per Score call and shared by
// every recipe.
type scoringContext struct {
	availableMin int
	pantry       domain.Pantry
	matcher      matching.Matcher
	recent       map[string]bool
	progress     nutrition.GoalProgress
	gap          domain.Macro
}

type factorFunc func(domain.Recipe, *scoringContext) (float64, *contract.Reason)

// Score filters out recipes that do not fit the time budget, scores the rest,
// and returns them best first. Ties keep catalog order.
func Score(in Input) []contract.Recommendation {
	if in.AvailableMin <= 0 || len(in.Recipes) == 0 {
		return []contract.Recommendation{}
	}

	sc := newScoringContext(in)
	weights := WeightsFor(in.Emphasis)

	recs := make([]contract.Recommendation, 0, len(in.Recipes))
	for _, r := range in.Recipes {
		if r.TotalMinutes > in.AvailableMin {
			continue
		}
		recs = append(recs, scoreRecipe(r, sc, weights))
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

func newScoringContext(in Input) *scoringContext {
	m := in.Matcher
	if m == nil {
		m = matching.Fuzzy{}
	}
	days := in.RecentDays
	if days <= 0 {
		days = nutrition.DefaultRecentDays
	}
	progress := nutrition.Progress(nutrition.WeeklyTotals(in.History, in.AsOf), in.Goals)
	gap, _ := nutrition.BiggestGap(progress)
	return &scoringContext{
		availableMin: in.AvailableMin,
		pantry:       in.Pantry,
		matcher:      m,
		recent:       nutrition.RecentRecipeNames(in.History, in.AsOf, days),
		progress:     progress,
		gap:          gap,
	}
}

func scoreRecipe(r domain.Recipe, sc *scoringContext, w Weights) contract.Recommendation {
	rec := contract.Recommendation{Recipe: r}
	factors := []struct {
		fn      factorFunc
		weight  float64
		display *int
	}{
		{scoreTimeFit, w.TimeFit, &rec.Factors.TimeFit},
		{scoreNutrition, w.Nutrition, &rec.Factors.Nutrition},
		{scoreVariety, w.Variety, &rec.Factors.Variety},
		{scoreRating, w.Rating, &rec.Factors.Rating},
		{scorePantry, w.Pantry, &rec.Factors.Pantry},
	}

	var total float64
	for _, f := range factors {
		v, reason := f.fn(r, sc)
		v = clamp(v, 0, 1)
		total += v * f.weight
		*f.display = toPercent(v)
		if reason != nil {
			rec.Reasons = append(rec.Reasons, *reason)
		}
	}
	rec.Score = toPercent(clamp(total, 0, 1))
	return rec
}

func scoreTimeFit(r domain.Recipe, sc *scoringContext) (float64, *contract.Reason) {
	avail := float64(max(sc.availableMin, 1))
	v := math.Min(1.0, float64(sc.availableMin-r.TotalMinutes)/avail+timeFitBonus)
	return v, &contract.Reason{
		Code:    contract.ReasonTimeFit,
		Message: fmt.Sprintf("%d min (you have %d)", r.TotalMinutes, sc.availableMin),
	}
}

func scoreNutrition(r domain.Recipe, sc *scoringContext) (float64, *contract.Reason) {
	ref, code, label := proteinReferenceG, contract.ReasonProteinGap, "protein"
	if sc.gap == domain.MacroFiber {
		ref, code, label = fiberReferenceG, contract.ReasonFiberGap, "fiber"
	}
	grams := r.Macros(sc.gap)
	v := math.Min(1.0, float64(grams)/ref*nutritionBoost)
	if v <= nutritionReasonMin {
		return v, nil
	}
	return v, &contract.Reason{
		Code:    code,
		Message: fmt.Sprintf("Great %s: %dg (you're at %d%% this week)", label, grams, sc.progress.Pct(sc.gap)),
	}
}

func scoreVariety(r domain.Recipe, sc *scoringContext) (float64, *contract.Reason) {
	if nutrition.IsRecent(sc.recent, r.Name) {
		return varietyRecent, &contract.Reason{
			Code:    contract.ReasonRecentlyHad,
			Message: "Had this recently",
		}
	}
	return varietyFresh, nil
}

func scoreRating(r domain.Recipe, _ *scoringContext) (float64, *contract.Reason) {
	v := float64(r.FamilyRating) / 5.0
	if r.FamilyRating >= favoriteRating {
		return v, &contract.Reason{
			Code:    contract.ReasonFamilyFavorite,
			Message: "Family favorite!",
		}
	}
	return v, nil
}

func scorePantry(r domain.Recipe, sc *scoringContext) (float64, *contract.Reason) {
	if len(r.KeyIngredients) == 0 {
		return pantryUnknown, nil
	}
	var missing []string
	for _, ing := range r.KeyIngredients {
		if !matching.PantryHas(sc.matcher, ing, sc.pantry) {
			missing = append(missing, ing)
		}
	}
	matched := len(r.KeyIngredients) - len(missing)
	v := float64(matched) / float64(len(r.KeyIngredients))
	if len(missing) == 0 {
		return v, &contract.Reason{
			Code:    contract.ReasonPantryComplete,
			Message: "All ingredients on hand",
		}
	}
	if len(missing) > maxMissingListed {
		missing = missing[:maxMissingListed]
	}
	return v, &contract.Reason{
		Code:    contract.ReasonPantryMissing,
		Message: "Need: " + strings.Join(missing, ", "),
	}
}

func toPercent(v float64) int {
	return int(math.Round(v * 100))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
