package nutrition

import (
	"fmt"
	"math"

	"github.com/alexanderramin/recipebot/internal/domain"
)

// lowThresholdPct is the week-to-date percentage under which a macro is
// flagged as low.
const lowThresholdPct = 30

// GoalProgress is week-to-date consumption as a percentage of each goal.
type GoalProgress struct {
	ProteinPct  float64
	FiberPct    float64
	CaloriesPct float64
}

func Progress(totals domain.WeeklyTotals, goals domain.NutritionGoals) GoalProgress {
	return GoalProgress{
		ProteinPct:  pct(totals.ProteinG, goals.ProteinG),
		FiberPct:    pct(totals.FiberG, goals.FiberG),
		CaloriesPct: pct(totals.Calories, goals.Calories),
	}
}

// A zero goal counts as met.
func pct(consumed, goal int) float64 {
	if goal == 0 {
		return 100
	}
	return float64(consumed) * 100 / float64(goal)
}

// Pct returns the rounded percentage for m, for display.
func (p GoalProgress) Pct(m domain.Macro) int {
	switch m {
	case domain.MacroProtein:
		return int(math.Round(p.ProteinPct))
	case domain.MacroFiber:
		return int(math.Round(p.FiberPct))
	case domain.MacroCalories:
		return int(math.Round(p.CaloriesPct))
	}
	return 0
}

// BiggestGap picks the macro furthest behind its goal among protein and
// fiber. Ties go to protein.
func BiggestGap(p GoalProgress) (domain.Macro, float64) {
	if p.ProteinPct <= p.FiberPct {
		return domain.MacroProtein, p.ProteinPct
	}
	return domain.MacroFiber, p.FiberPct
}

type AdviceLevel string

const (
	AdviceProteinLow AdviceLevel = "protein_low"
	AdviceFiberLow   AdviceLevel = "fiber_low"
	AdviceOnTrack    AdviceLevel = "on_track"
)

// Advice is the one-line nudge printed under the weekly summary.
type Advice struct {
	Level   AdviceLevel
	Message string
}

func AdviceFor(p GoalProgress) Advice {
	proteinPct := p.Pct(domain.MacroProtein)
	fiberPct := p.Pct(domain.MacroFiber)
	switch {
	case proteinPct < lowThresholdPct:
		return Advice{
			Level:   AdviceProteinLow,
			Message: fmt.Sprintf("Protein is low at %d%%, prioritizing high-protein recipes.", proteinPct),
		}
	case fiberPct < lowThresholdPct:
		return Advice{
			Level:   AdviceFiberLow,
			Message: fmt.Sprintf("Fiber is low at %d%%, prioritizing high-fiber recipes.", fiberPct),
		}
	default:
		return Advice{Level: AdviceOnTrack, Message: "On track!"}
	}
}
