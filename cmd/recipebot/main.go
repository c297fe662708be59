package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/recipebot/internal/availability"
	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/cli"
	"github.com/alexanderramin/recipebot/internal/config"
	"github.com/alexanderramin/recipebot/internal/db"
	"github.com/alexanderramin/recipebot/internal/logging"
	"github.com/alexanderramin/recipebot/internal/repository"
	"github.com/alexanderramin/recipebot/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

const historyFileName = "chat_history"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	pantryRepo := repository.NewSQLitePantryRepo(database)
	mealRepo := repository.NewSQLiteMealRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	recipes := catalog.NewCache(catalog.NewFileSource(cfg.RecipesPath, logger))
	observer := service.NewLogUseCaseObserver(logger)
	goals := cfg.NutritionGoals()

	pantrySvc := service.NewPantryService(pantryRepo, recipes, uow, observer)

	// A missing recipe file is reported by the command that needs it.
	ctx := context.Background()
	if n, err := pantrySvc.SeedIfEmpty(ctx); err != nil {
		logger.Debug("pantry not seeded", zap.Error(err))
	} else if n > 0 {
		logger.Info("seeded pantry from recipe file", zap.Int("items", n))
	}

	window := cfg.CookingWindow()
	app := &cli.App{
		Recommend: service.NewRecommendService(recipes, pantryRepo, mealRepo, service.RecommendConfig{
			Goals:      goals,
			RecentDays: cfg.RecentDays,
		}, observer),
		Meals:     service.NewMealService(recipes, mealRepo, goals, nil, observer),
		Nutrition: service.NewNutritionService(mealRepo, goals, nil),
		Pantry:    pantrySvc,
		Catalog:   service.NewCatalogService(recipes),

		Calendar: func(icsURL string, fallbackMin int) availability.Provider {
			return availability.New(availability.Options{
				ICSURL:         icsURL,
				DefaultMinutes: fallbackMin,
				Window:         window,
				Logger:         logger,
			})
		},
		ICSURL:         cfg.ICSURL,
		DefaultMinutes: cfg.DefaultMinutes,
		CatalogPath:    cfg.RecipesPath,
		HistoryPath:    filepath.Join(filepath.Dir(cfg.DBPath), historyFileName),
		Logger:         logger,
	}

	// Spinners and the log form only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
