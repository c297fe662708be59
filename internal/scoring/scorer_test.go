package scoring

import (
	"testing"
	"time"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2025, 3, 12, 17, 0, 0, 0, time.UTC)

func recipe(name string, minutes int, opts ...func(*domain.Recipe)) domain.Recipe {
	r := domain.NewRecipe(name)
	r.TotalMinutes = minutes
	for _, o := range opts {
		o(&r)
	}
	return r
}

func withMacros(protein, fiber, cal int) func(*domain.Recipe) {
	return func(r *domain.Recipe) {
		r.ProteinG = protein
		r.FiberG = fiber
		r.Calories = cal
	}
}

func withRating(n int) func(*domain.Recipe) {
	return func(r *domain.Recipe) { r.FamilyRating = n }
}

func withIngredients(ings ...string) func(*domain.Recipe) {
	return func(r *domain.Recipe) { r.KeyIngredients = ings }
}

func baseInput(recipes ...domain.Recipe) Input {
	return Input{
		Recipes:      recipes,
		AvailableMin: 60,
		Pantry:       domain.Pantry{},
		Goals:        domain.DefaultGoals(),
		AsOf:         asOf,
	}
}

func hasReason(rec contract.Recommendation, code contract.ReasonCode) bool {
	for _, r := range rec.Reasons {
		if r.Code == code {
			return true
		}
	}
	return false
}

func TestScore_EndToEndPalakPaneer(t *testing.T) {
	in := baseInput(recipe("Palak Paneer", 40,
		withMacros(22, 6, 400),
		withRating(5),
		withIngredients("spinach", "paneer"),
	))
	in.Pantry = domain.Pantry{"spinach": true, "paneer": false}

	recs := Score(in)
	require.Len(t, recs, 1)
	rec := recs[0]

	assert.Equal(t, contract.FactorScores{TimeFit: 63, Nutrition: 100, Variety: 85, Rating: 100, Pantry: 50}, rec.Factors)
	// 0.15*0.633 + 0.25*1 + 0.20*0.85 + 0.25*1 + 0.15*0.5 = 0.84
	assert.Equal(t, 84, rec.Score)

	require.Len(t, rec.Reasons, 4)
	assert.Equal(t, contract.Reason{Code: contract.ReasonTimeFit, Message: "40 min (you have 60)"}, rec.Reasons[0])
	assert.Equal(t, contract.Reason{Code: contract.ReasonProteinGap, Message: "Great protein: 22g (you're at 0% this week)"}, rec.Reasons[1])
	assert.Equal(t, contract.ReasonFamilyFavorite, rec.Reasons[2].Code)
	assert.Equal(t, contract.Reason{Code: contract.ReasonPantryMissing, Message: "Need: paneer"}, rec.Reasons[3])
}

func TestScore_HardFilterOnTime(t *testing.T) {
	in := baseInput(
		recipe("Quick", 20),
		recipe("Exact", 60),
		recipe("Slow", 61),
	)
	recs := Score(in)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.LessOrEqual(t, r.Recipe.TotalMinutes, 60)
	}
}

func TestScore_ZeroOrNegativeAvailability(t *testing.T) {
	for _, avail := range []int{0, -15} {
		in := baseInput(recipe("Quick", 5))
		in.AvailableMin = avail
		recs := Score(in)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	}
}

func TestScore_EmptyCatalog(t *testing.T) {
	recs := Score(baseInput())
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestScore_NothingFits(t *testing.T) {
	in := baseInput(recipe("Biryani", 120))
	assert.Empty(t, Score(in))
}

func TestScore_VarietyPenalty(t *testing.T) {
	in := baseInput(
		recipe("Dal Tadka", 30),
		recipe("Chana Masala", 30),
	)
	in.History = []domain.MealEntry{{CookedOn: domain.DateOf(asOf), RecipeName: "dal tadka"}}

	recs := Score(in)
	require.Len(t, recs, 2)
	assert.Equal(t, "Chana Masala", recs[0].Recipe.Name)
	assert.Equal(t, "Dal Tadka", recs[1].Recipe.Name)
	assert.Equal(t, 5, recs[1].Factors.Variety)
	assert.Equal(t, 85, recs[0].Factors.Variety)
	assert.True(t, hasReason(recs[1], contract.ReasonRecentlyHad))
	assert.Less(t, recs[1].Score, recs[0].Score)
}

func TestScore_VarietyWindowExpires(t *testing.T) {
	in := baseInput(recipe("Dal Tadka", 30))
	in.History = []domain.MealEntry{{CookedOn: domain.DateOf(asOf).AddDate(0, 0, -4), RecipeName: "Dal Tadka"}}
	recs := Score(in)
	require.Len(t, recs, 1)
	assert.Equal(t, 85, recs[0].Factors.Variety)
}

func TestScore_NutritionTargetsFiberWhenBehind(t *testing.T) {
	in := baseInput(
		recipe("High Protein", 30, withMacros(30, 2, 500)),
		recipe("High Fiber", 30, withMacros(8, 14, 400)),
	)
	// Protein at 50% of goal, fiber at ~3%.
	in.History = []domain.MealEntry{{CookedOn: domain.DateOf(asOf), RecipeName: "Steak", ProteinG: 200, FiberG: 5}}

	recs := Score(in)
	require.Len(t, recs, 2)

	byName := map[string]contract.Recommendation{}
	for _, r := range recs {
		byName[r.Recipe.Name] = r
	}
	assert.Equal(t, 100, byName["High Fiber"].Factors.Nutrition)
	assert.Equal(t, 21, byName["High Protein"].Factors.Nutrition) // 2/14*1.5
	assert.True(t, hasReason(byName["High Fiber"], contract.ReasonFiberGap))
	assert.False(t, hasReason(byName["High Protein"], contract.ReasonProteinGap))
}

func TestScore_NutritionReasonOnlyAboveThreshold(t *testing.T) {
	in := baseInput(recipe("Light Salad", 15, withMacros(9, 3, 200)))
	recs := Score(in)
	require.Len(t, recs, 1)
	// 9/24*1.5 = 0.5625
	assert.Equal(t, 56, recs[0].Factors.Nutrition)
	assert.False(t, hasReason(recs[0], contract.ReasonProteinGap))
}

func TestScore_PantryNoIngredientsIsNeutral(t *testing.T) {
	recs := Score(baseInput(recipe("Mystery", 20)))
	require.Len(t, recs, 1)
	assert.Equal(t, 50, recs[0].Factors.Pantry)
	assert.False(t, hasReason(recs[0], contract.ReasonPantryMissing))
	assert.False(t, hasReason(recs[0], contract.ReasonPantryComplete))
}

func TestScore_PantryListsAtMostThreeMissing(t *testing.T) {
	in := baseInput(recipe("Biryani", 50, withIngredients("rice", "chicken", "yogurt", "saffron", "onion")))
	recs := Score(in)
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Factors.Pantry)
	assert.Contains(t, recs[0].Reasons, contract.Reason{Code: contract.ReasonPantryMissing, Message: "Need: rice, chicken, yogurt"})
}

func TestScore_PantryAllOnHand(t *testing.T) {
	in := baseInput(recipe("Rajma", 45, withIngredients("Kidney Beans", "onion")))
	in.Pantry = domain.Pantry{"kidney beans": true, "red onion": true}
	recs := Score(in)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].Factors.Pantry)
	assert.True(t, hasReason(recs[0], contract.ReasonPantryComplete))
}

func TestScore_InjectedMatcher(t *testing.T) {
	in := baseInput(recipe("Curry", 30, withIngredients("chicken")))
	in.Pantry = domain.Pantry{"chicken thighs": true}

	in.Matcher = matching.Exact{}
	assert.Equal(t, 0, Score(in)[0].Factors.Pantry)

	in.Matcher = nil
	assert.Equal(t, 100, Score(in)[0].Factors.Pantry)
}

func TestScore_TimeFitClampsToOne(t *testing.T) {
	in := baseInput(recipe("Toast", 5))
	recs := Score(in)
	require.Len(t, recs, 1)
	assert.Equal(t, 100, recs[0].Factors.TimeFit)
	assert.Equal(t, contract.ReasonTimeFit, recs[0].Reasons[0].Code)
}

func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	in := baseInput(
		recipe("First", 30),
		recipe("Second", 30),
		recipe("Third", 30),
	)
	recs := Score(in)
	require.Len(t, recs, 3)
	assert.Equal(t, "First", recs[0].Recipe.Name)
	assert.Equal(t, "Second", recs[1].Recipe.Name)
	assert.Equal(t, "Third", recs[2].Recipe.Name)
}

func TestScore_ComfortEmphasisPrefersRating(t *testing.T) {
	in := baseInput(
		recipe("Healthy", 30, withMacros(30, 10, 400), withRating(3)),
		recipe("Mac and Cheese", 30, withMacros(8, 1, 700), withRating(5)),
	)
	assert.Equal(t, "Healthy", Score(in)[0].Recipe.Name)

	in.Emphasis = domain.EmphasisComfort
	assert.Equal(t, "Mac and Cheese", Score(in)[0].Recipe.Name)
}

func TestScore_QuickEmphasisPrefersShorter(t *testing.T) {
	in := baseInput(
		recipe("Slow Roast", 55, withRating(5)),
		recipe("Stir Fry", 10, withRating(4)),
	)
	in.Emphasis = domain.EmphasisQuick
	assert.Equal(t, "Stir Fry", Score(in)[0].Recipe.Name)
}

func TestScore_OverweightProfilesStayInRange(t *testing.T) {
	in := baseInput(
		recipe("Perfect", 10, withMacros(40, 20, 500), withRating(5), withIngredients("rice")),
		recipe("Almost", 20, withMacros(40, 20, 500), withRating(5), withIngredients("rice")),
	)
	in.Pantry = domain.Pantry{"rice": true}

	for _, e := range []domain.Emphasis{domain.EmphasisPantry, domain.EmphasisComfort} {
		in.Emphasis = e
		recs := Score(in)
		require.Len(t, recs, 2)
		for _, rec := range recs {
			assert.GreaterOrEqual(t, rec.Score, 0, "profile %q", e)
			assert.LessOrEqual(t, rec.Score, 100, "profile %q", e)
		}
	}
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	recipes := []domain.Recipe{recipe("B", 30, withRating(2)), recipe("A", 30, withRating(5))}
	pantry := domain.Pantry{"rice": true}
	in := baseInput(recipes...)
	in.Pantry = pantry

	Score(in)
	assert.Equal(t, "B", recipes[0].Name)
	assert.Equal(t, domain.Pantry{"rice": true}, pantry)
}
