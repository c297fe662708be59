package domain

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty matches case-insensitively and returns false for anything
// outside the three known levels.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}

// Values applied by catalog loaders when a record omits a field.
const (
	DefaultTotalMinutes = 30
	DefaultDifficulty   = DifficultyEasy
	DefaultRating       = 3
	DefaultProteinG     = 10
	DefaultCarbsG       = 40
	DefaultFatG         = 10
	DefaultFiberG       = 4
	DefaultCalories     = 300
	DefaultCuisine      = "Other"
)

// Recipe is immutable for the lifetime of a session.
type Recipe struct {
	Name           string
	Cuisine        string
	TotalMinutes   int
	Difficulty     Difficulty
	FamilyRating   int
	ProteinG       int
	FiberG         int
	CarbsG         int
	FatG           int
	Calories       int
	KeyIngredients []string
	Tags           []string
	Notes          string
}

// NewRecipe returns a recipe with every optional field set to its default.
func NewRecipe(name string) Recipe {
	return Recipe{
		Name:         name,
		Cuisine:      DefaultCuisine,
		TotalMinutes: DefaultTotalMinutes,
		Difficulty:   DefaultDifficulty,
		FamilyRating: DefaultRating,
		ProteinG:     DefaultProteinG,
		FiberG:       DefaultFiberG,
		CarbsG:       DefaultCarbsG,
		FatG:         DefaultFatG,
		Calories:     DefaultCalories,
	}
}

func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("recipe name is required: %w", ErrInvalidRecipe)
	}
	if r.TotalMinutes <= 0 {
		return fmt.Errorf("recipe %q: total minutes must be positive, got %d: %w", r.Name, r.TotalMinutes, ErrInvalidRecipe)
	}
	if r.FamilyRating < 1 || r.FamilyRating > 5 {
		return fmt.Errorf("recipe %q: rating must be 1-5, got %d: %w", r.Name, r.FamilyRating, ErrInvalidRecipe)
	}
	if _, ok := ParseDifficulty(string(r.Difficulty)); !ok {
		return fmt.Errorf("recipe %q: unknown difficulty %q: %w", r.Name, r.Difficulty, ErrInvalidRecipe)
	}
	if r.ProteinG < 0 || r.FiberG < 0 || r.CarbsG < 0 || r.FatG < 0 || r.Calories < 0 {
		return fmt.Errorf("recipe %q: macros must be non-negative: %w", r.Name, ErrInvalidRecipe)
	}
	return nil
}

// Macros returns the per-serving value of m.
func (r Recipe) Macros(m Macro) int {
	switch m {
	case MacroProtein:
		return r.ProteinG
	case MacroFiber:
		return r.FiberG
	case MacroCalories:
		return r.Calories
	}
	return 0
}
