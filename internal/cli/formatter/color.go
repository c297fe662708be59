package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/nutrition"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreStyle colors a 0-100 match score.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 75:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

var reasonGlyphs = map[contract.ReasonCode]string{
	contract.ReasonTimeFit:        "⏱️",
	contract.ReasonProteinGap:     "💪",
	contract.ReasonFiberGap:       "🥬",
	contract.ReasonRecentlyHad:    "⚠️",
	contract.ReasonFamilyFavorite: "⭐",
	contract.ReasonPantryMissing:  "🛒",
	contract.ReasonPantryComplete: "✅",
}

// ReasonGlyph returns the icon printed in front of a reason, or "•" for codes
// without one.
func ReasonGlyph(code contract.ReasonCode) string {
	if g, ok := reasonGlyphs[code]; ok {
		return g
	}
	return "•"
}

// ReasonStyle colors warnings yellow, positives green, the rest dim.
func ReasonStyle(code contract.ReasonCode) lipgloss.Style {
	switch code {
	case contract.ReasonRecentlyHad, contract.ReasonPantryMissing:
		return StyleYellow
	case contract.ReasonFamilyFavorite, contract.ReasonPantryComplete,
		contract.ReasonProteinGap, contract.ReasonFiberGap:
		return StyleGreen
	default:
		return StyleDim
	}
}

// FormatReason renders one reason line body such as "⭐ Family favorite!".
func FormatReason(r contract.Reason) string {
	return ReasonGlyph(r.Code) + " " + ReasonStyle(r.Code).Render(r.Message)
}

// AdviceIndicator renders the weekly nudge with its level icon.
func AdviceIndicator(a nutrition.Advice) string {
	switch a.Level {
	case nutrition.AdviceOnTrack:
		return "✅ " + StyleGreen.Render(a.Message)
	case nutrition.AdviceProteinLow, nutrition.AdviceFiberLow:
		return "⚠️ " + StyleYellow.Render(a.Message)
	default:
		return StyleDim.Render(a.Message)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
