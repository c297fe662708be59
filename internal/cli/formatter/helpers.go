package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate names a cooked-on date relative to now: "Today", "Yesterday",
// otherwise "Mon Mar 9".
func HumanDate(t, now time.Time) string {
	d := domain.DateOf(t)
	today := domain.DateOf(now)
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return d.Format("Mon Jan 2")
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Rating renders "⭐ 4/5".
func Rating(n int) string {
	return fmt.Sprintf("⭐ %d/5", n)
}

// MacroLine renders per-serving macros as "P:22g · Fiber:6g · 400cal".
func MacroLine(protein, fiber, calories int) string {
	return fmt.Sprintf("P:%dg · Fiber:%dg · %dcal", protein, fiber, calories)
}

// DifficultyBadge colors a difficulty level.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen.Render(string(d))
	case domain.DifficultyMedium:
		return StyleYellow.Render(string(d))
	case domain.DifficultyHard:
		return StyleRed.Render(string(d))
	default:
		return StyleDim.Render(string(d))
	}
}
