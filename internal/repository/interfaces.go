package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// ErrNotFound is returned, wrapped, when a lookup matches no row.
var ErrNotFound = domain.ErrNotFound

type PantryRepo interface {
	Snapshot(ctx context.Context) (domain.Pantry, error)
	Get(ctx context.Context, name string) (bool, error)
	Set(ctx context.Context, name string, inStock bool) error
	SetMany(ctx context.Context, names []string, inStock bool) error
	Count(ctx context.Context) (int, error)
}

// MealRepo is append-only: there is no update or delete.
type MealRepo interface {
	Append(ctx context.Context, e *domain.MealEntry) error
	List(ctx context.Context) ([]domain.MealEntry, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.MealEntry, error)
}
