package contract

import (
	"time"

	"github.com/alexanderramin/recipebot/internal/domain"
)

type DinnerRequest struct {
	AvailableMin    int
	CalendarSummary string
	// CapMin, when positive, further limits AvailableMin.
	CapMin   int
	Emphasis domain.Emphasis
	Now      *time.Time
	Limit    int
	// Skip drops the top N feasible recommendations ("suggest another").
	Skip int
}

func NewDinnerRequest(availableMin int) DinnerRequest {
	return DinnerRequest{
		AvailableMin: availableMin,
		Limit:        3,
	}
}

// EffectiveMinutes is the time budget after CapMin is applied.
func (r DinnerRequest) EffectiveMinutes() int {
	if r.CapMin > 0 && r.CapMin < r.AvailableMin {
		return r.CapMin
	}
	return r.AvailableMin
}

type DinnerResponse struct {
	GeneratedAt     time.Time
	AvailableMin    int
	CalendarSummary string
	Emphasis        domain.Emphasis
	Weekly          WeeklyNutrition
	Recommendations []Recommendation
	// TotalFeasible counts every recipe that passed the time filter, before
	// Skip and Limit.
	TotalFeasible int
}

func (r *DinnerResponse) Top() (Recommendation, bool) {
	if len(r.Recommendations) == 0 {
		return Recommendation{}, false
	}
	return r.Recommendations[0], true
}
