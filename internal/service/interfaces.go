package service

import (
	"context"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

type RecommendService interface {
	Recommend(ctx context.Context, req contract.DinnerRequest) (*contract.DinnerResponse, error)
}

type MealService interface {
	// LogMeal resolves req.Name against the catalog and appends one entry.
	LogMeal(ctx context.Context, req contract.LogMealRequest) (*contract.LogMealResponse, error)
	// LogRecipe appends an entry for a recipe the caller already holds.
	LogRecipe(ctx context.Context, r domain.Recipe, notes string) (*contract.LogMealResponse, error)
	ThisWeek(ctx context.Context) ([]domain.MealEntry, error)
	History(ctx context.Context) ([]domain.MealEntry, error)
}

type NutritionService interface {
	Weekly(ctx context.Context) (*contract.WeeklyNutrition, error)
}

type PantryService interface {
	Snapshot(ctx context.Context) (domain.Pantry, error)
	MarkInStock(ctx context.Context, items []string) (*contract.PantryChange, error)
	MarkOutOfStock(ctx context.Context, items []string) (*contract.PantryChange, error)
	// SeedIfEmpty copies the catalog's declared pantry into an empty store and
	// reports how many items were written.
	SeedIfEmpty(ctx context.Context) (int, error)
}

type CatalogService interface {
	List(ctx context.Context, cuisine string) ([]domain.Recipe, error)
	Cuisines(ctx context.Context) ([]contract.CuisineCount, error)
	// Reload drops the cached catalog so the next call rereads the source.
	Reload()
}
