package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
)

var medals = []string{"🥇", "🥈", "🥉"}

// Medal returns the podium icon for rank i (zero based), or "N." past third.
func Medal(i int) string {
	if i >= 0 && i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("%d.", i+1)
}

// FormatDinner renders tonight's picks with the calendar and weekly nutrition
// context above them.
func FormatDinner(resp *contract.DinnerResponse, cmdName string) string {
	var b strings.Builder

	if resp.CalendarSummary != "" {
		b.WriteString("📅 " + StyleBlue.Render(resp.CalendarSummary) + "\n")
	}
	b.WriteString(FormatWeeklySummary(&resp.Weekly))
	b.WriteString("\n\n")

	if len(resp.Recommendations) == 0 {
		b.WriteString(fmt.Sprintf("😅 %s\n",
			StyleYellow.Render(fmt.Sprintf("No recipes fit a %d-min window!", resp.AvailableMin))))
		return b.String()
	}

	b.WriteString(Header("🍳 Tonight's picks"))
	b.WriteString("\n\n")

	for i, rec := range resp.Recommendations {
		r := rec.Recipe
		b.WriteString(fmt.Sprintf("  %s %s\n", Medal(i), Bold(r.Name)))
		b.WriteString(fmt.Sprintf("     %s · %s · %d min · %s · Match: %s\n",
			StylePurple.Render(r.Cuisine),
			DifficultyBadge(r.Difficulty),
			r.TotalMinutes,
			Rating(r.FamilyRating),
			ScoreStyle(rec.Score).Render(fmt.Sprintf("%d%%", rec.Score)),
		))
		for _, reason := range rec.Reasons {
			b.WriteString("     " + FormatReason(reason) + "\n")
		}
		b.WriteString("     " + Dim(MacroLine(r.ProteinG, r.FiberG, r.Calories)) + "\n\n")
	}

	if more := resp.TotalFeasible - len(resp.Recommendations); more > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d more recipe(s) fit tonight. Try --top.", more)) + "\n")
	}
	if top, ok := resp.Top(); ok {
		b.WriteString(fmt.Sprintf("💡 To log: %s log %q\n", cmdName, top.Recipe.Name))
	}
	return b.String()
}
