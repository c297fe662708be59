package domain

type Macro string

const (
	MacroProtein  Macro = "protein"
	MacroFiber    Macro = "fiber"
	MacroCalories Macro = "calories"
)

// NutritionGoals are weekly targets.
type NutritionGoals struct {
	ProteinG int
	FiberG   int
	Calories int
}

func DefaultGoals() NutritionGoals {
	return NutritionGoals{
		ProteinG: 400,
		FiberG:   175,
		Calories: 14000,
	}
}

// WeeklyTotals sums the meal log from the start of the current week.
type WeeklyTotals struct {
	ProteinG  int
	FiberG    int
	Calories  int
	MealCount int
}

func (w *WeeklyTotals) Add(e MealEntry) {
	w.ProteinG += e.ProteinG
	w.FiberG += e.FiberG
	w.Calories += e.Calories
	w.MealCount++
}
