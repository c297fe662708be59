package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/db"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/repository"
)

var ErrNoPantryItems = errors.New("no pantry items given")

type pantryService struct {
	pantry   repository.PantryRepo
	recipes  catalog.Source
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPantryService(
	pantry repository.PantryRepo,
	recipes catalog.Source,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PantryService {
	return &pantryService{
		pantry:   pantry,
		recipes:  recipes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *pantryService) Snapshot(ctx context.Context) (domain.Pantry, error) {
	return s.pantry.Snapshot(ctx)
}

func (s *pantryService) MarkInStock(ctx context.Context, items []string) (*contract.PantryChange, error) {
	return s.mark(ctx, "pantry-in-stock", items, true)
}

func (s *pantryService) MarkOutOfStock(ctx context.Context, items []string) (*contract.PantryChange, error) {
	return s.mark(ctx, "pantry-out-of-stock", items, false)
}

// mark writes every item in one transaction so a failure leaves the pantry
// unchanged.
func (s *pantryService) mark(ctx context.Context, name string, items []string, inStock bool) (change *contract.PantryChange, err error) {
	startedAt := time.Now()
	keys := normalizeItems(items)
	fields := map[string]any{"items": keys}
	defer func() { observe(ctx, s.observer, name, startedAt, fields, err) }()

	if len(keys) == 0 {
		return nil, ErrNoPantryItems
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePantryRepo(tx).SetMany(ctx, keys, inStock)
	})
	if err != nil {
		return nil, fmt.Errorf("updating pantry: %w", err)
	}
	return &contract.PantryChange{Items: keys, InStock: inStock}, nil
}

func (s *pantryService) SeedIfEmpty(ctx context.Context) (seeded int, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		fields["seeded"] = seeded
		observe(ctx, s.observer, "pantry-seed", startedAt, fields, err)
	}()

	n, err := s.pantry.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	cat, err := s.recipes.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading recipes: %w", err)
	}
	if len(cat.Pantry) == 0 {
		return 0, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePantryRepo(tx)
		if err := repo.SetMany(ctx, cat.Pantry.InStock(), true); err != nil {
			return err
		}
		return repo.SetMany(ctx, cat.Pantry.OutOfStock(), false)
	})
	if err != nil {
		return 0, fmt.Errorf("seeding pantry: %w", err)
	}
	return len(cat.Pantry), nil
}

// normalizeItems normalizes, drops blanks and de-duplicates, keeping first
// occurrence order.
func normalizeItems(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, raw := range items {
		for _, part := range domain.SplitIngredients(raw) {
			key := domain.NormalizeIngredient(part)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}
