package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

type catalogService struct {
	cache *catalog.Cache
}

func NewCatalogService(cache *catalog.Cache) CatalogService {
	return &catalogService{cache: cache}
}

func (s *catalogService) List(ctx context.Context, cuisine string) ([]domain.Recipe, error) {
	cat, err := s.cache.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	return cat.ByCuisine(cuisine), nil
}

// Cuisines returns per-cuisine counts, largest first, ties by name.
func (s *catalogService) Cuisines(ctx context.Context) ([]contract.CuisineCount, error) {
	cat, err := s.cache.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	counts := cat.Cuisines()
	out := make([]contract.CuisineCount, 0, len(counts))
	for _, name := range cat.CuisineNames() {
		out = append(out, contract.CuisineCount{Cuisine: name, Count: counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out, nil
}

func (s *catalogService) Reload() {
	s.cache.Invalidate()
}
