// Package catalog loads the household recipe corpus and its pantry seed from
// disk. Two formats are understood: the hand-edited markdown-ish recipes.txt
// and a JSON document.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/logging"
	"go.uber.org/zap"
)

// Catalog is one parse of a recipe source.
type Catalog struct {
	Recipes []domain.Recipe
	// Pantry is the seed pantry declared alongside the recipes. It is only
	// used to populate an empty store.
	Pantry domain.Pantry
}

// Cuisines counts recipes per cuisine.
func (c *Catalog) Cuisines() map[string]int {
	out := make(map[string]int)
	for _, r := range c.Recipes {
		out[r.Cuisine]++
	}
	return out
}

// CuisineNames returns cuisine names sorted alphabetically.
func (c *Catalog) CuisineNames() []string {
	counts := c.Cuisines()
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ByCuisine filters case-insensitively. An empty cuisine returns everything.
func (c *Catalog) ByCuisine(cuisine string) []domain.Recipe {
	if cuisine == "" {
		return c.Recipes
	}
	var out []domain.Recipe
	for _, r := range c.Recipes {
		if strings.EqualFold(r.Cuisine, cuisine) {
			out = append(out, r)
		}
	}
	return out
}

// DuplicateNames lists names that appear more than once, ignoring case.
func (c *Catalog) DuplicateNames() []string {
	seen := make(map[string]int)
	var dups []string
	for _, r := range c.Recipes {
		key := strings.ToLower(r.Name)
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, r.Name)
		}
	}
	return dups
}

type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// FileSource reads a catalog from Path, choosing the parser by extension.
type FileSource struct {
	Path   string
	Logger *zap.Logger
}

func NewFileSource(path string, logger *zap.Logger) *FileSource {
	return &FileSource{Path: path, Logger: logging.OrNop(logger)}
}

func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var cat *Catalog
	if strings.EqualFold(filepath.Ext(s.Path), ".json") {
		cat, err = ParseJSON(data)
	} else {
		cat, err = ParseText(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(s.Path), err)
	}

	log := logging.OrNop(s.Logger)
	log.Debug("catalog loaded",
		zap.String("path", s.Path),
		zap.Int("recipes", len(cat.Recipes)),
		zap.Int("pantry_items", len(cat.Pantry)),
	)
	if dups := cat.DuplicateNames(); len(dups) > 0 {
		log.Warn("duplicate recipe names in catalog", zap.Strings("names", dups))
	}
	return cat, nil
}

// StaticSource serves a fixed catalog.
type StaticSource struct {
	Catalog *Catalog
}

func (s StaticSource) Load(ctx context.Context) (*Catalog, error) {
	if s.Catalog == nil {
		return &Catalog{Pantry: domain.Pantry{}}, nil
	}
	return s.Catalog, nil
}
