package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

func FormatRecipes(recipes []domain.Recipe) string {
	if len(recipes) == 0 {
		return Dim("No recipes found.") + "\n"
	}
	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		rows = append(rows, []string{
			r.Name,
			StylePurple.Render(r.Cuisine),
			strconv.Itoa(r.TotalMinutes),
			DifficultyBadge(r.Difficulty),
			strconv.Itoa(r.FamilyRating),
			strconv.Itoa(r.ProteinG),
			strconv.Itoa(r.FiberG),
			strconv.Itoa(r.Calories),
		})
	}
	return RenderTable(
		[]string{"NAME", "CUISINE", "MIN", "DIFFICULTY", "RATING", "PROTEIN", "FIBER", "CAL"},
		rows, 2, 4, 5, 6, 7,
	)
}

// FormatCuisines renders "Indian 2 · Asian 1".
func FormatCuisines(counts []contract.CuisineCount) string {
	parts := make([]string, 0, len(counts))
	total := 0
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s %d", StylePurple.Render(c.Cuisine), c.Count))
		total += c.Count
	}
	return fmt.Sprintf("%s %s", Bold(fmt.Sprintf("%d recipes:", total)), strings.Join(parts, Dim(" · ")))
}

// FormatRecipeNotFound lists what can be logged after a failed lookup.
func FormatRecipeNotFound(query string, names []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("❌ %s\n", StyleRed.Render(fmt.Sprintf("Recipe not found: %q", query))))
	b.WriteString("   Available recipes:\n")
	for _, n := range names {
		b.WriteString("     - " + n + "\n")
	}
	return b.String()
}
