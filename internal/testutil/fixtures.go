package testutil

import (
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

// Recipe options
type RecipeOption func(*domain.Recipe)

func WithMinutes(m int) RecipeOption {
	return func(r *domain.Recipe) { r.TotalMinutes = m }
}

func WithCuisine(c string) RecipeOption {
	return func(r *domain.Recipe) { r.Cuisine = c }
}

func WithRating(n int) RecipeOption {
	return func(r *domain.Recipe) { r.FamilyRating = n }
}

func WithMacros(protein, fiber, calories int) RecipeOption {
	return func(r *domain.Recipe) {
		r.ProteinG = protein
		r.FiberG = fiber
		r.Calories = calories
	}
}

func WithIngredients(ings ...string) RecipeOption {
	return func(r *domain.Recipe) { r.KeyIngredients = ings }
}

func NewTestRecipe(name string, opts ...RecipeOption) domain.Recipe {
	r := domain.NewRecipe(name)
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Meal options
type MealOption func(*domain.MealEntry)

func WithNotes(n string) MealOption {
	return func(e *domain.MealEntry) { e.Notes = n }
}

// NewTestMeal copies r's macros into an entry cooked on the given date.
func NewTestMeal(r domain.Recipe, cookedOn time.Time, opts ...MealOption) *domain.MealEntry {
	e := &domain.MealEntry{
		ID:         uuid.New().String(),
		CookedOn:   domain.DateOf(cookedOn),
		RecipeName: r.Name,
		ProteinG:   r.ProteinG,
		FiberG:     r.FiberG,
		Calories:   r.Calories,
		CreatedAt:  cookedOn.UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SampleCatalog is a small fixed catalog shared by service and CLI tests.
func SampleCatalog() []domain.Recipe {
	return []domain.Recipe{
		NewTestRecipe("Palak Paneer",
			WithCuisine("Indian"), WithMinutes(40), WithRating(5),
			WithMacros(22, 6, 400), WithIngredients("spinach", "paneer")),
		NewTestRecipe("Dal Tadka",
			WithCuisine("Indian"), WithMinutes(35), WithRating(4),
			WithMacros(18, 12, 380), WithIngredients("toor dal", "onion", "tomatoes")),
		NewTestRecipe("Chicken Stir Fry",
			WithCuisine("Asian"), WithMinutes(20), WithRating(4),
			WithMacros(32, 4, 520), WithIngredients("chicken thighs", "broccoli", "soy sauce")),
		NewTestRecipe("Lasagna",
			WithCuisine("Italian"), WithMinutes(90), WithRating(5),
			WithMacros(28, 5, 750), WithIngredients("pasta sheets", "ricotta", "beef")),
	}
}

// FakeCatalog builds n plausible recipes from a seeded faker so property tests
// are reproducible.
func FakeCatalog(seed int64, n int) []domain.Recipe {
	f := gofakeit.New(seed)
	cuisines := []string{"Indian", "Italian", "Mexican", "Asian", "Other"}
	out := make([]domain.Recipe, 0, n)
	for i := 0; i < n; i++ {
		r := domain.NewRecipe(f.Dessert() + " " + f.Noun())
		r.Cuisine = f.RandomString(cuisines)
		r.TotalMinutes = f.Number(10, 120)
		r.FamilyRating = f.Number(1, 5)
		r.ProteinG = f.Number(0, 50)
		r.FiberG = f.Number(0, 20)
		r.Calories = f.Number(150, 1100)
		for j := f.Number(0, 4); j > 0; j-- {
			r.KeyIngredients = append(r.KeyIngredients, f.Vegetable())
		}
		out = append(out, r)
	}
	return out
}
