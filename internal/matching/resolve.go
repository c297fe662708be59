package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// ResolveRecipe finds the recipe a user meant by query. An exact
// case-insensitive name match wins; otherwise the first recipe in catalog
// order whose name contains the query.
func ResolveRecipe(query string, recipes []domain.Recipe) (domain.Recipe, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.Recipe{}, fmt.Errorf("empty recipe name: %w", domain.ErrRecipeNotFound)
	}
	for _, r := range recipes {
		if strings.ToLower(r.Name) == q {
			return r, nil
		}
	}
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), q) {
			return r, nil
		}
	}
	return domain.Recipe{}, fmt.Errorf("%q: %w", query, domain.ErrRecipeNotFound)
}

// FindMentioned returns the first recipe whose name appears inside free text,
// as in "I'll cook palak paneer tonight".
func FindMentioned(text string, recipes []domain.Recipe) (domain.Recipe, bool) {
	lower := strings.ToLower(text)
	for _, r := range recipes {
		if r.Name != "" && strings.Contains(lower, strings.ToLower(r.Name)) {
			return r, true
		}
	}
	return domain.Recipe{}, false
}

// SortedNames lists recipe names alphabetically, for not-found hints.
func SortedNames(recipes []domain.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}
