package contract

import "github.com/alexanderramin/recipebot/internal/domain"

type ReasonCode string

const (
	ReasonTimeFit        ReasonCode = "TIME_FIT"
	ReasonProteinGap     ReasonCode = "PROTEIN_GAP"
	ReasonFiberGap       ReasonCode = "FIBER_GAP"
	ReasonRecentlyHad    ReasonCode = "RECENTLY_HAD"
	ReasonFamilyFavorite ReasonCode = "FAMILY_FAVORITE"
	ReasonPantryMissing  ReasonCode = "PANTRY_MISSING"
	ReasonPantryComplete ReasonCode = "PANTRY_COMPLETE"
)

type Reason struct {
	Code    ReasonCode
	Message string
}

type Factor string

const (
	FactorTimeFit   Factor = "time_fit"
	FactorNutrition Factor = "nutrition"
	FactorVariety   Factor = "variety"
	FactorRating    Factor = "rating"
	FactorPantry    Factor = "pantry"
)

// Factors lists every factor in evaluation order.
var Factors = []Factor{FactorTimeFit, FactorNutrition, FactorVariety, FactorRating, FactorPantry}

// FactorScores holds each factor scaled to 0-100 for display.
type FactorScores struct {
	TimeFit   int
	Nutrition int
	Variety   int
	Rating    int
	Pantry    int
}

func (f FactorScores) Get(factor Factor) int {
	switch factor {
	case FactorTimeFit:
		return f.TimeFit
	case FactorNutrition:
		return f.Nutrition
	case FactorVariety:
		return f.Variety
	case FactorRating:
		return f.Rating
	case FactorPantry:
		return f.Pantry
	}
	return 0
}

type Recommendation struct {
	Recipe  domain.Recipe
	Score   int
	Factors FactorScores
	Reasons []Reason
}

// CuisineCount is one row of the recipes summary.
type CuisineCount struct {
	Cuisine string
	Count   int
}
