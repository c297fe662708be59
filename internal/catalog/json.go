package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/go-playground/validator/v10"
)

type jsonDocument struct {
	Recipes []jsonRecipe `json:"recipes"`
	Pantry  struct {
		InStock   []string `json:"in_stock"`
		NeedToBuy []string `json:"need_to_buy"`
	} `json:"pantry"`
}

// jsonRecipe uses pointers so an omitted field can be told apart from zero.
type jsonRecipe struct {
	Name           string   `json:"name"`
	Cuisine        *string  `json:"cuisine"`
	TotalMinutes   *int     `json:"total_minutes"`
	Difficulty     *string  `json:"difficulty"`
	FamilyRating   *int     `json:"family_rating"`
	ProteinG       *int     `json:"protein_g"`
	FiberG         *int     `json:"fiber_g"`
	CarbsG         *int     `json:"carbs_g"`
	FatG           *int     `json:"fat_g"`
	Calories       *int     `json:"calories"`
	KeyIngredients []string `json:"key_ingredients"`
	Tags           []string `json:"tags"`
	Notes          string   `json:"notes"`
}

// recipeRecord is a JSON recipe after defaults, in the shape the validator
// checks.
type recipeRecord struct {
	Name           string   `validate:"required,max=200"`
	Cuisine        string   `validate:"required"`
	TotalMinutes   int      `validate:"min=1,max=1440"`
	Difficulty     string   `validate:"oneof=Easy Medium Hard"`
	FamilyRating   int      `validate:"min=1,max=5"`
	ProteinG       int      `validate:"min=0"`
	FiberG         int      `validate:"min=0"`
	CarbsG         int      `validate:"min=0"`
	FatG           int      `validate:"min=0"`
	Calories       int      `validate:"min=0"`
	KeyIngredients []string `validate:"dive,required"`
}

var validate = validator.New()

// ParseJSON decodes a JSON catalog. Every invalid recipe is reported, not
// just the first.
func ParseJSON(data []byte) (*Catalog, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog json: %w", err)
	}

	cat := &Catalog{Pantry: domain.Pantry{}}
	var errs []error
	for i, jr := range doc.Recipes {
		rec := applyDefaults(jr)
		if err := validate.Struct(rec); err != nil {
			errs = append(errs, describeInvalid(i, rec.Name, err))
			continue
		}
		cat.Recipes = append(cat.Recipes, rec.toDomain(jr))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, item := range doc.Pantry.InStock {
		if key := domain.NormalizeIngredient(item); key != "" {
			cat.Pantry[key] = true
		}
	}
	for _, item := range doc.Pantry.NeedToBuy {
		if key := domain.NormalizeIngredient(item); key != "" {
			cat.Pantry[key] = false
		}
	}
	return cat, nil
}

func applyDefaults(jr jsonRecipe) recipeRecord {
	difficulty := string(domain.DefaultDifficulty)
	if jr.Difficulty != nil {
		if d, ok := domain.ParseDifficulty(*jr.Difficulty); ok {
			difficulty = string(d)
		} else {
			difficulty = *jr.Difficulty
		}
	}
	return recipeRecord{
		Name:           strings.TrimSpace(jr.Name),
		Cuisine:        domain.StringOr(jr.Cuisine, domain.DefaultCuisine),
		TotalMinutes:   domain.IntOr(jr.TotalMinutes, domain.DefaultTotalMinutes),
		Difficulty:     difficulty,
		FamilyRating:   domain.IntOr(jr.FamilyRating, domain.DefaultRating),
		ProteinG:       domain.IntOr(jr.ProteinG, domain.DefaultProteinG),
		FiberG:         domain.IntOr(jr.FiberG, domain.DefaultFiberG),
		CarbsG:         domain.IntOr(jr.CarbsG, domain.DefaultCarbsG),
		FatG:           domain.IntOr(jr.FatG, domain.DefaultFatG),
		Calories:       domain.IntOr(jr.Calories, domain.DefaultCalories),
		KeyIngredients: jr.KeyIngredients,
	}
}

func (rec recipeRecord) toDomain(jr jsonRecipe) domain.Recipe {
	return domain.Recipe{
		Name:           rec.Name,
		Cuisine:        rec.Cuisine,
		TotalMinutes:   rec.TotalMinutes,
		Difficulty:     domain.Difficulty(rec.Difficulty),
		FamilyRating:   rec.FamilyRating,
		ProteinG:       rec.ProteinG,
		FiberG:         rec.FiberG,
		CarbsG:         rec.CarbsG,
		FatG:           rec.FatG,
		Calories:       rec.Calories,
		KeyIngredients: rec.KeyIngredients,
		Tags:           jr.Tags,
		Notes:          jr.Notes,
	}
}

func describeInvalid(index int, name string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("recipe #%d %q: %w", index+1, name, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("recipe #%d %q: %s: %w", index+1, name, strings.Join(msgs, "; "), domain.ErrInvalidRecipe)
}
