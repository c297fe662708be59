package catalog

import (
	"errors"
	"testing"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AppliesDefaults(t *testing.T) {
	cat, err := ParseJSON([]byte(`{
		"recipes": [
			{"name": "Rajma", "cuisine": "Indian", "total_minutes": 50, "difficulty": "medium",
			 "family_rating": 4, "protein_g": 18, "fiber_g": 15, "calories": 450,
			 "key_ingredients": ["kidney beans", "onion"], "tags": ["vegetarian"], "notes": "soak overnight"},
			{"name": "Toast"}
		],
		"pantry": {"in_stock": ["Rice", " onion "], "need_to_buy": ["paneer", ""]}
	}`))
	require.NoError(t, err)
	require.Len(t, cat.Recipes, 2)

	rajma := cat.Recipes[0]
	assert.Equal(t, domain.DifficultyMedium, rajma.Difficulty)
	assert.Equal(t, 50, rajma.TotalMinutes)
	assert.Equal(t, 40, rajma.CarbsG, "omitted carbs default")
	assert.Equal(t, []string{"vegetarian"}, rajma.Tags)
	assert.Equal(t, "soak overnight", rajma.Notes)

	toast := cat.Recipes[1]
	assert.Equal(t, domain.NewRecipe("Toast"), toast)

	assert.Equal(t, domain.Pantry{"rice": true, "onion": true, "paneer": false}, cat.Pantry)
}

func TestParseJSON_ExplicitZeroIsKept(t *testing.T) {
	cat, err := ParseJSON([]byte(`{"recipes": [{"name": "Water", "calories": 0, "fiber_g": 0}]}`))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Recipes[0].Calories)
	assert.Equal(t, 0, cat.Recipes[0].FiberG)
}

func TestParseJSON_ReportsEveryInvalidRecipe(t *testing.T) {
	_, err := ParseJSON([]byte(`{"recipes": [
		{"name": "Bad Rating", "family_rating": 9},
		{"name": "Fine"},
		{"name": "Bad Time", "total_minutes": 0, "difficulty": "Brutal"},
		{"name": ""}
	]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))

	msg := err.Error()
	assert.Contains(t, msg, `recipe #1 "Bad Rating"`)
	assert.Contains(t, msg, "FamilyRating must be at most 5")
	assert.Contains(t, msg, `recipe #3 "Bad Time"`)
	assert.Contains(t, msg, "TotalMinutes must be at least 1")
	assert.Contains(t, msg, "Difficulty must be one of Easy Medium Hard")
	assert.Contains(t, msg, "Name is required")
	assert.NotContains(t, msg, "Fine")
}

func TestParseJSON_NegativeMacro(t *testing.T) {
	_, err := ParseJSON([]byte(`{"recipes": [{"name": "Odd", "protein_g": -3}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProteinG must be at least 0")
}

func TestParseJSON_BlankIngredientRejected(t *testing.T) {
	_, err := ParseJSON([]byte(`{"recipes": [{"name": "Odd", "key_ingredients": ["rice", ""]}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRecipe))
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{"recipes": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding catalog json")
}
