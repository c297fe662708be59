package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/recipebot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealRepo_AppendAndList(t *testing.T) {
	repo := NewSQLiteMealRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	r := testutil.NewTestRecipe("Palak Paneer", testutil.WithMacros(22, 6, 400))
	cooked := time.Date(2025, 3, 12, 19, 30, 0, 0, time.UTC)

	e := testutil.NewTestMeal(r, cooked, testutil.WithNotes("kids loved it"))
	require.NoError(t, repo.Append(ctx, e))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	got := all[0]
	assert.Equal(t, e.ID, got.ID)
	assert.Equal(t, "Palak Paneer", got.RecipeName)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), got.CookedOn)
	assert.Equal(t, 22, got.ProteinG)
	assert.Equal(t, 6, got.FiberG)
	assert.Equal(t, 400, got.Calories)
	assert.Equal(t, "kids loved it", got.Notes)
	assert.True(t, got.CreatedAt.Equal(cooked))
}

func TestMealRepo_AppendAssignsIDAndCreatedAt(t *testing.T) {
	repo := NewSQLiteMealRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	e := testutil.NewTestMeal(testutil.NewTestRecipe("Dal"), time.Now())
	e.ID = ""
	e.CreatedAt = time.Time{}

	require.NoError(t, repo.Append(ctx, e))
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())
}

func TestMealRepo_DuplicateSameDayAllowed(t *testing.T) {
	repo := NewSQLiteMealRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	r := testutil.NewTestRecipe("Dal")
	day := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, testutil.NewTestMeal(r, day)))
	require.NoError(t, repo.Append(ctx, testutil.NewTestMeal(r, day)))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMealRepo_ListSinceInclusive(t *testing.T) {
	repo := NewSQLiteMealRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	r := testutil.NewTestRecipe("Dal")

	for _, d := range []int{8, 10, 11, 14} {
		require.NoError(t, repo.Append(ctx, testutil.NewTestMeal(r, time.Date(2025, 3, d, 18, 0, 0, 0, time.UTC))))
	}

	since, err := repo.ListSince(ctx, time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, since, 3)
	assert.Equal(t, 10, since[0].CookedOn.Day())
	assert.Equal(t, 14, since[2].CookedOn.Day())
}

func TestMealRepo_ListOrderedByDate(t *testing.T) {
	repo := NewSQLiteMealRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestMeal(testutil.NewTestRecipe("Later"), time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestMeal(testutil.NewTestRecipe("Earlier"), time.Date(2025, 3, 11, 18, 0, 0, 0, time.UTC))))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Earlier", all[0].RecipeName)
	assert.Equal(t, "Later", all[1].RecipeName)
}
