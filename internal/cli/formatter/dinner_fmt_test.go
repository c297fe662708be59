package formatter

import (
	"testing"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/nutrition"
	"github.com/stretchr/testify/assert"
)

func sampleDinner() *contract.DinnerResponse {
	palak := domain.NewRecipe("Palak Paneer")
	palak.Cuisine = "Indian"
	palak.TotalMinutes = 40
	palak.FamilyRating = 5
	palak.ProteinG, palak.FiberG, palak.Calories = 22, 6, 400

	dal := domain.NewRecipe("Dal Tadka")
	dal.Cuisine = "Indian"
	dal.TotalMinutes = 35

	return &contract.DinnerResponse{
		AvailableMin:    45,
		CalendarSummary: "45 min free tonight",
		Weekly: contract.WeeklyNutrition{
			Goals:  domain.DefaultGoals(),
			Advice: nutrition.Advice{Level: nutrition.AdviceProteinLow, Message: "Protein is low at 0%, prioritizing high-protein recipes."},
		},
		Recommendations: []contract.Recommendation{
			{Recipe: palak, Score: 81, Reasons: []contract.Reason{
				{Code: contract.ReasonTimeFit, Message: "40 min (you have 45)"},
				{Code: contract.ReasonFamilyFavorite, Message: "Family favorite!"},
			}},
			{Recipe: dal, Score: 64},
		},
		TotalFeasible: 4,
	}
}

func TestFormatDinner_Picks(t *testing.T) {
	out := FormatDinner(sampleDinner(), "recipebot")

	assert.Contains(t, out, "📅 45 min free tonight")
	assert.Contains(t, out, "Protein: 0g / 400g (0%)")
	assert.Contains(t, out, "⚠️ Protein is low at 0%")
	assert.Contains(t, out, "TONIGHT'S PICKS")
	assert.Contains(t, out, "🥇 Palak Paneer")
	assert.Contains(t, out, "Indian · Easy · 40 min · ⭐ 5/5 · Match: 81%")
	assert.Contains(t, out, "⏱️ 40 min (you have 45)")
	assert.Contains(t, out, "⭐ Family favorite!")
	assert.Contains(t, out, "P:22g · Fiber:6g · 400cal")
	assert.Contains(t, out, "🥈 Dal Tadka")
	assert.Contains(t, out, "2 more recipe(s) fit tonight.")
	assert.Contains(t, out, `💡 To log: recipebot log "Palak Paneer"`)
}

func TestFormatDinner_NothingFits(t *testing.T) {
	resp := sampleDinner()
	resp.AvailableMin = 10
	resp.Recommendations = nil
	resp.TotalFeasible = 0

	out := FormatDinner(resp, "recipebot")
	assert.Contains(t, out, "😅 No recipes fit a 10-min window!")
	assert.NotContains(t, out, "To log")
}

func TestMedal(t *testing.T) {
	assert.Equal(t, "🥇", Medal(0))
	assert.Equal(t, "🥉", Medal(2))
	assert.Equal(t, "4.", Medal(3))
}

func TestReasonGlyph(t *testing.T) {
	assert.Equal(t, "🛒", ReasonGlyph(contract.ReasonPantryMissing))
	assert.Equal(t, "🥬", ReasonGlyph(contract.ReasonFiberGap))
	assert.Equal(t, "•", ReasonGlyph("SOMETHING_ELSE"))
}

func TestScoreStyle(t *testing.T) {
	assert.Equal(t, StyleGreen, ScoreStyle(75))
	assert.Equal(t, StyleYellow, ScoreStyle(50))
	assert.Equal(t, StyleRed, ScoreStyle(49))
}
