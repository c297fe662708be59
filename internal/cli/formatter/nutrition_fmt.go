package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

const barWidth = 20

type macroRow struct {
	icon     string
	label    string
	macro    domain.Macro
	consumed int
	goal     int
	unit     string
}

func macroRows(w *contract.WeeklyNutrition) []macroRow {
	return []macroRow{
		{"💪", "Protein", domain.MacroProtein, w.Totals.ProteinG, w.Goals.ProteinG, "g"},
		{"🥬", "Fiber", domain.MacroFiber, w.Totals.FiberG, w.Goals.FiberG, "g"},
		{"🔥", "Calories", domain.MacroCalories, w.Totals.Calories, w.Goals.Calories, ""},
	}
}

// FormatWeeklySummary is the compact block printed above dinner picks.
func FormatWeeklySummary(w *contract.WeeklyNutrition) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 %s (%d meals logged):\n", Bold("This week"), w.Totals.MealCount))
	for _, row := range macroRows(w) {
		b.WriteString(fmt.Sprintf("  %s %s: %d%s / %d%s (%d%%)\n",
			row.icon, row.label, row.consumed, row.unit, row.goal, row.unit, w.Progress.Pct(row.macro)))
	}
	b.WriteString("\n" + AdviceIndicator(w.Advice))
	return b.String()
}

// FormatNutrition renders the weekly progress view with one bar per macro.
func FormatNutrition(w *contract.WeeklyNutrition) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week of %s", w.WeekStart.Format("Jan 2"))))
	b.WriteString("\n\n")

	rows := macroRows(w)
	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(row.label))
	}
	for _, row := range rows {
		pct := float64(w.Progress.Pct(row.macro)) / 100
		b.WriteString(fmt.Sprintf("%s %-*s  %s  %s\n",
			row.icon, labelWidth, row.label,
			RenderProgress(pct, barWidth),
			Dim(fmt.Sprintf("%d%s / %d%s", row.consumed, row.unit, row.goal, row.unit)),
		))
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d meals logged since %s", w.Totals.MealCount, w.WeekStart.Format(domain.DateLayout))))
	b.WriteString("\n")
	b.WriteString(RenderBox("", AdviceIndicator(w.Advice)))
	b.WriteString("\n")
	return b.String()
}

// FormatLogged confirms a logged meal and shows where protein stands.
func FormatLogged(resp *contract.LogMealResponse) string {
	var b strings.Builder
	r := resp.Recipe
	b.WriteString("✅ " + StyleGreen.Render("Logged: "+r.Name) + "\n")
	b.WriteString(fmt.Sprintf("   +%dg protein · +%dg fiber · +%d cal\n", r.ProteinG, r.FiberG, r.Calories))
	b.WriteString(fmt.Sprintf("   Protein this week: %dg / %dg (%d%%)\n",
		resp.Weekly.Totals.ProteinG, resp.Weekly.Goals.ProteinG, resp.Weekly.Progress.Pct(domain.MacroProtein)))
	if resp.Entry.Notes != "" {
		b.WriteString("   " + Dim("Notes: "+resp.Entry.Notes) + "\n")
	}
	return b.String()
}
