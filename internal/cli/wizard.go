package cli

import (
	"fmt"

	"github.com/alexanderramin/recipebot/internal/cli/formatter"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// recipebotHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func recipebotHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// logMealForm asks which recipe was cooked, plus optional notes and date.
// Recipes are offered in the given order; the first is preselected.
func logMealForm(recipes []domain.Recipe, name, notes, date *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(recipes))
	for _, r := range recipes {
		label := fmt.Sprintf("%s  %s", r.Name, formatter.Dim(fmt.Sprintf("%s · %d min", r.Cuisine, r.TotalMinutes)))
		options = append(options, huh.NewOption(label, r.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What did you cook?").
				Options(options...).
				Height(10).
				Value(name),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				Value(notes),
			huh.NewInput().
				Title("Cooked on (YYYY-MM-DD, blank for today)").
				Value(date).
				Validate(validateOptionalDate),
		),
	).WithTheme(recipebotHuhTheme()).WithShowHelp(false)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
