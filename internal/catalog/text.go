package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/recipebot/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	headingRecipe      = "### "
	headingSection     = "## "
	pantryStocked      = "Always stocked:"
	pantryNeedToBuy    = "Usually need to buy:"
	minPantryItemChars = 2
)

// Section headings that group household notes rather than a cuisine.
var nonCuisinePrefixes = []string{"Dietary", "Favorite", "Household", "Weekly", "WHAT"}

var (
	minutesRe = regexp.MustCompile(`(\d+)\s*min`)
	ratingRe  = regexp.MustCompile(`Rating:\s*(\d)/5`)
	macroRe   = regexp.MustCompile(`(\w+):\s*(\d+)`)
)

type textMode int

const (
	modeNone textMode = iota
	modeRecipe
	modeStocked
	modeNeedToBuy
)

// ParseText reads the recipes.txt format:
//
//	## SOUTH INDIAN RECIPES
//	### Sambar
//	- Time: 45 min | Medium | Rating: 4/5
//	- Protein: 14g | Fiber: 9g | Calories: 320
//	- Ingredients: toor dal, tamarind, drumsticks
//	- Notes: make extra
//
//	### Always stocked:
//	rice, lentils, onions
//	### Usually need to buy:
//	paneer, cream
//
// Missing fields take the domain defaults. Section headings become the
// cuisine of the recipes under them.
func ParseText(content string) (*Catalog, error) {
	p := textParser{cat: &Catalog{Pantry: domain.Pantry{}}}
	for _, raw := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		p.line(raw)
	}
	p.flush()
	return p.cat, nil
}

type textParser struct {
	cat     *Catalog
	mode    textMode
	cuisine string
	current *domain.Recipe
}

func (p *textParser) line(raw string) {
	switch {
	case strings.HasPrefix(raw, headingRecipe):
		p.flush()
		p.startBlock(strings.TrimSpace(strings.TrimPrefix(raw, headingRecipe)))
	case strings.HasPrefix(raw, headingSection):
		p.flush()
		p.mode = modeNone
		p.cuisine = cuisineFromHeading(strings.TrimPrefix(raw, headingSection))
	default:
		switch p.mode {
		case modeRecipe:
			parseRecipeLine(p.current, raw)
		case modeStocked:
			p.addPantry(raw, true)
		case modeNeedToBuy:
			p.addPantry(raw, false)
		}
	}
}

func (p *textParser) startBlock(name string) {
	switch name {
	case pantryStocked:
		p.mode = modeStocked
	case pantryNeedToBuy:
		p.mode = modeNeedToBuy
	default:
		r := domain.NewRecipe(name)
		r.Cuisine = domain.FirstNonEmpty(p.cuisine, domain.DefaultCuisine)
		p.current = &r
		p.mode = modeRecipe
	}
}

func (p *textParser) flush() {
	if p.current != nil && p.current.Name != "" {
		clampRecipe(p.current)
		p.cat.Recipes = append(p.cat.Recipes, *p.current)
	}
	p.current = nil
}

// clampRecipe pulls hand-typed values back into range: a non-positive time
// takes the default and ratings are clamped to 1-5.
func clampRecipe(r *domain.Recipe) {
	if r.TotalMinutes <= 0 {
		r.TotalMinutes = domain.DefaultTotalMinutes
	}
	r.FamilyRating = min(max(r.FamilyRating, 1), 5)
}

func (p *textParser) addPantry(line string, inStock bool) {
	for _, item := range strings.Split(line, ",") {
		key := domain.NormalizeIngredient(strings.TrimLeft(strings.TrimSpace(item), "- "))
		if len(key) >= minPantryItemChars {
			p.cat.Pantry[key] = inStock
		}
	}
}

// cuisineFromHeading turns "SOUTH INDIAN RECIPES" into "South Indian". It
// returns "" for household-note headings.
func cuisineFromHeading(heading string) string {
	h := strings.TrimSpace(heading)
	for _, prefix := range nonCuisinePrefixes {
		if strings.HasPrefix(h, prefix) {
			return ""
		}
	}
	h = strings.ReplaceAll(h, " RECIPES", "")
	h = strings.ReplaceAll(h, "RECIPES", "")
	h = strings.ReplaceAll(h, " / ", "/")
	return cases.Title(language.English).String(strings.TrimSpace(h))
}

func parseRecipeLine(r *domain.Recipe, raw string) {
	line := strings.TrimLeft(strings.TrimSpace(raw), "- ")
	switch {
	case strings.HasPrefix(line, "Time:"):
		if m := minutesRe.FindStringSubmatch(line); m != nil {
			r.TotalMinutes = atoi(m[1], r.TotalMinutes)
		}
		switch {
		case strings.Contains(line, "Easy"):
			r.Difficulty = domain.DifficultyEasy
		case strings.Contains(line, "Medium"):
			r.Difficulty = domain.DifficultyMedium
		case strings.Contains(line, "Hard"):
			r.Difficulty = domain.DifficultyHard
		}
		if m := ratingRe.FindStringSubmatch(line); m != nil {
			r.FamilyRating = atoi(m[1], r.FamilyRating)
		}
	case strings.HasPrefix(line, "Protein:"):
		for _, m := range macroRe.FindAllStringSubmatch(line, -1) {
			v := atoi(m[2], 0)
			switch strings.ToLower(m[1]) {
			case "protein":
				r.ProteinG = v
			case "fiber":
				r.FiberG = v
			case "carbs":
				r.CarbsG = v
			case "fat":
				r.FatG = v
			case "calories":
				r.Calories = v
			}
		}
	case strings.HasPrefix(line, "Ingredients:"):
		r.KeyIngredients = splitList(strings.TrimPrefix(line, "Ingredients:"))
	case strings.HasPrefix(line, "Tags:"):
		r.Tags = splitList(strings.TrimPrefix(line, "Tags:"))
	case strings.HasPrefix(line, "Notes:"):
		r.Notes = strings.TrimSpace(strings.TrimPrefix(line, "Notes:"))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
