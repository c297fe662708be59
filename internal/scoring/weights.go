package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

const weightSumTolerance = 1e-9

// Weights are the per-factor multipliers of a profile. The default, protein,
// fiber and quick profiles sum to 1.0. The pantry and comfort overrides are
// applied literally and sum to 1.05; Score clamps their totals to 100.
type Weights struct {
	TimeFit   float64
	Nutrition float64
	Variety   float64
	Rating    float64
	Pantry    float64
}

func DefaultWeights() Weights {
	return Weights{
		TimeFit:   0.15,
		Nutrition: 0.25,
		Variety:   0.20,
		Rating:    0.25,
		Pantry:    0.15,
	}
}

// WeightsFor applies an emphasis profile's overrides on top of the default
// weights. Factors a profile does not name keep their default weight.
func WeightsFor(e domain.Emphasis) Weights {
	w := DefaultWeights()
	switch e {
	case domain.EmphasisProtein:
		w.Nutrition = 0.40
		w.Rating = 0.10
	case domain.EmphasisQuick:
		w.TimeFit = 0.35
		w.Variety = 0.10
		w.Pantry = 0.05
	case domain.EmphasisPantry:
		w.Pantry = 0.35
		w.Nutrition = 0.10
	case domain.EmphasisComfort:
		w.Rating = 0.40
		w.Variety = 0.10
	}
	return w
}

func (w Weights) Sum() float64 {
	return w.TimeFit + w.Nutrition + w.Variety + w.Rating + w.Pantry
}

func (w Weights) Validate() error {
	for i, v := range []float64{w.TimeFit, w.Nutrition, w.Variety, w.Rating, w.Pantry} {
		if v < 0 {
			return fmt.Errorf("weight %s is negative: %v", contract.Factors[i], v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("weights sum to %v, want 1.0", sum)
	}
	return nil
}

// ParseEmphasis accepts the --boost values. An empty string means no
// emphasis.
func ParseEmphasis(s string) (domain.Emphasis, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return domain.EmphasisNone, nil
	}
	for _, e := range domain.ValidEmphases {
		if string(e) == v {
			return e, nil
		}
	}
	return domain.EmphasisNone, fmt.Errorf("%q (want one of %s): %w", s, emphasisList(), domain.ErrUnknownEmphasis)
}

func emphasisList() string {
	names := make([]string, len(domain.ValidEmphases))
	for i, e := range domain.ValidEmphases {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
