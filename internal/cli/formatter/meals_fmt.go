package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// FormatMeals renders this week's meal log as a table, oldest first.
func FormatMeals(meals []domain.MealEntry, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 %s\n\n", StyleHeader.Render(fmt.Sprintf("MEALS THIS WEEK (%d logged)", len(meals)))))
	if len(meals) == 0 {
		b.WriteString("  " + Dim("(none logged yet)") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(meals))
	for _, m := range meals {
		rows = append(rows, []string{
			m.CookedOn.Format(domain.DateLayout),
			Dim(HumanDate(m.CookedOn, now)),
			m.RecipeName,
			strconv.Itoa(m.ProteinG) + "g",
			strconv.Itoa(m.FiberG) + "g",
			strconv.Itoa(m.Calories),
			Dim(m.Notes),
		})
	}
	b.WriteString(RenderTable(
		[]string{"DATE", "DAY", "RECIPE", "PROTEIN", "FIBER", "CAL", "NOTES"},
		rows, 3, 4, 5,
	))
	return b.String()
}
