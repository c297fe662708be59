package cli

import (
	"time"

	"github.com/alexanderramin/recipebot/internal/availability"
	"github.com/alexanderramin/recipebot/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Recommend service.RecommendService
	Meals     service.MealService
	Nutrition service.NutritionService
	Pantry    service.PantryService
	Catalog   service.CatalogService

	// Calendar builds the availability chain for a published ICS URL, falling
	// back to fallbackMin when the calendar cannot be read. Nil disables
	// calendars entirely.
	Calendar func(icsURL string, fallbackMin int) availability.Provider
	// ICSURL is the configured calendar, overridden by --ics.
	ICSURL         string
	DefaultMinutes int

	// CatalogPath is watched by chat so recipe edits show up live. Empty
	// disables watching.
	CatalogPath string
	// HistoryPath stores chat input history. Empty keeps it in memory.
	HistoryPath string

	IsInteractive func() bool
	Logger        *zap.Logger
	Now           func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) defaultMinutes() int {
	if a.DefaultMinutes > 0 {
		return a.DefaultMinutes
	}
	return availability.DefaultMinutes
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// availabilityFor picks the provider for one request. An explicit --ics wins,
// then the configured URL unless the user pinned the time with --time.
func (a *App) availabilityFor(icsURL string, minutes int, pinned bool) (availability.Provider, bool) {
	if icsURL == "" && !pinned {
		icsURL = a.ICSURL
	}
	if icsURL == "" || a.Calendar == nil {
		return availability.Static{Minutes: minutes}, false
	}
	return a.Calendar(icsURL, minutes), true
}

// NewRootCmd creates the top-level "recipebot" command. Run without a
// subcommand it behaves like "dinner" with default flags.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "recipebot",
		Short: "What's for dinner? Picks recipes from your calendar, pantry and weekly nutrition",
		Example: `  recipebot dinner                   What's for dinner tonight?
  recipebot dinner --time 30         Quick meal under 30 min
  recipebot dinner --boost protein   Prioritize protein
  recipebot log "Dal Tadka"          Log what you cooked
  recipebot pantry add spinach       Mark items in stock
  recipebot nutrition                Weekly nutrition progress`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDinner(cmd, app, dinnerOptions{minutes: app.defaultMinutes(), top: defaultTop})
		},
	}

	root.AddCommand(
		newDinnerCmd(app),
		newLogCmd(app),
		newPantryCmd(app),
		newNutritionCmd(app),
		newMealsCmd(app),
		newRecipesCmd(app),
		newChatCmd(app),
	)

	return root
}
