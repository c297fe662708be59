// Package matching holds the fuzzy ingredient and recipe-name matching used by
// the scoring engine and meal logging. It is the single place to swap in a
// stricter matcher.
package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// minSharedWordLen is the shortest word that counts as a shared-word match.
const minSharedWordLen = 4

// Matcher reports whether a pantry entry satisfies a recipe ingredient. Both
// arguments are already normalized.
type Matcher interface {
	Match(ingredient, pantryItem string) bool
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(ingredient, pantryItem string) bool

func (f MatcherFunc) Match(ingredient, pantryItem string) bool { return f(ingredient, pantryItem) }

// Fuzzy matches when either string contains the other, or when they share a
// word of at least four letters. "toor dal" and "dal tadka" do not match;
// "basmati rice" and "brown rice" do.
type Fuzzy struct{}

func (Fuzzy) Match(ingredient, pantryItem string) bool {
	if ingredient == "" || pantryItem == "" {
		return false
	}
	if strings.Contains(pantryItem, ingredient) || strings.Contains(ingredient, pantryItem) {
		return true
	}
	words := make(map[string]bool)
	for _, w := range strings.Fields(ingredient) {
		if utf8.RuneCountInString(w) >= minSharedWordLen {
			words[w] = true
		}
	}
	for _, w := range strings.Fields(pantryItem) {
		if words[w] {
			return true
		}
	}
	return false
}

// Exact only matches identical names.
type Exact struct{}

func (Exact) Match(ingredient, pantryItem string) bool { return ingredient == pantryItem }

// PantryHas reports whether any in-stock pantry item satisfies ingredient.
// Out-of-stock entries never match.
func PantryHas(m Matcher, ingredient string, pantry domain.Pantry) bool {
	if m == nil {
		m = Fuzzy{}
	}
	ing := domain.NormalizeIngredient(ingredient)
	if ing == "" {
		return false
	}
	for item, inStock := range pantry {
		if !inStock {
			continue
		}
		if m.Match(ing, item) {
			return true
		}
	}
	return false
}
