package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeNames(recs []contract.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Recipe.Name)
	}
	return out
}

func TestRecommendService_FiltersByTimeAndRanks(t *testing.T) {
	f := newFixture(t, nil)
	resp, err := f.recommendService().Recommend(context.Background(), contract.NewDinnerRequest(45))
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalFeasible, "lasagna does not fit in 45 minutes")
	assert.Len(t, resp.Recommendations, 3)
	assert.NotContains(t, recipeNames(resp.Recommendations), "Lasagna")
	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t, resp.Recommendations[i-1].Score, resp.Recommendations[i].Score)
	}
	assert.Equal(t, testNow, resp.GeneratedAt)
	assert.Equal(t, 45, resp.AvailableMin)
	assert.Equal(t, []string{"recommend"}, f.events.names())
	assert.Equal(t, 3, f.events.last().Fields["feasible"])
}

func TestRecommendService_CapAndLimit(t *testing.T) {
	f := newFixture(t, nil)
	req := contract.NewDinnerRequest(120)
	req.CapMin = 30
	req.Limit = 1
	req.Emphasis = domain.EmphasisQuick

	resp, err := f.recommendService().Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.AvailableMin)
	assert.Equal(t, 1, resp.TotalFeasible)
	assert.Equal(t, []string{"Chicken Stir Fry"}, recipeNames(resp.Recommendations))
	assert.Equal(t, domain.EmphasisQuick, resp.Emphasis)
}

func TestRecommendService_SkipDropsTopPick(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first, err := f.recommendService().Recommend(ctx, contract.NewDinnerRequest(45))
	require.NoError(t, err)

	req := contract.NewDinnerRequest(45)
	req.Skip = 1
	second, err := f.recommendService().Recommend(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, recipeNames(first.Recommendations)[1:], recipeNames(second.Recommendations))
}

func TestRecommendService_SkipKeepsOnlyResult(t *testing.T) {
	f := newFixture(t, nil)
	req := contract.NewDinnerRequest(25)
	req.Skip = 1

	resp, err := f.recommendService().Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chicken Stir Fry"}, recipeNames(resp.Recommendations))
}

func TestRecommendService_NothingFits(t *testing.T) {
	f := newFixture(t, nil)
	resp, err := f.recommendService().Recommend(context.Background(), contract.NewDinnerRequest(10))
	require.NoError(t, err)
	assert.Empty(t, resp.Recommendations)
	assert.Equal(t, 0, resp.TotalFeasible)
}

func TestRecommendService_RecentMealIsPenalized(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.mealService().LogMeal(ctx, contract.LogMealRequest{Name: "dal tadka"})
	require.NoError(t, err)

	resp, err := f.recommendService().Recommend(ctx, contract.NewDinnerRequest(45))
	require.NoError(t, err)

	require.Len(t, resp.Recommendations, 3)
	last := resp.Recommendations[len(resp.Recommendations)-1]
	assert.Equal(t, "Dal Tadka", last.Recipe.Name)
	assert.Equal(t, 5, last.Factors.Variety)
	assert.Equal(t, 1, resp.Weekly.Totals.MealCount)
}

func TestRecommendService_UsesStoredPantry(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	_, err := f.pantryService().MarkInStock(ctx, []string{"spinach", "paneer"})
	require.NoError(t, err)

	resp, err := f.recommendService().Recommend(ctx, contract.NewDinnerRequest(45))
	require.NoError(t, err)

	for _, rec := range resp.Recommendations {
		if rec.Recipe.Name == "Palak Paneer" {
			assert.Equal(t, 100, rec.Factors.Pantry)
			return
		}
	}
	t.Fatal("Palak Paneer missing from recommendations")
}

func TestRecommendService_RequestNowOverridesClock(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	// Logged last week: not in this week's totals at testNow.
	lastWeek := testNow.AddDate(0, 0, -7)
	_, err := f.mealService().LogMeal(ctx, contract.LogMealRequest{Name: "Lasagna", On: &lastWeek})
	require.NoError(t, err)

	req := contract.NewDinnerRequest(45)
	resp, err := f.recommendService().Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Weekly.Totals.MealCount)

	req.Now = &lastWeek
	resp, err = f.recommendService().Recommend(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Weekly.Totals.MealCount)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), resp.Weekly.WeekStart)
}

func TestRecommendService_UnknownEmphasis(t *testing.T) {
	f := newFixture(t, nil)
	req := contract.NewDinnerRequest(45)
	req.Emphasis = "spicy"

	_, err := f.recommendService().Recommend(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownEmphasis)
	assert.False(t, f.events.last().Success)
}
