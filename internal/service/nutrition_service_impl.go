package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/nutrition"
	"github.com/alexanderramin/recipebot/internal/repository"
)

type nutritionService struct {
	meals repository.MealRepo
	goals domain.NutritionGoals
	now   Clock
}

func NewNutritionService(meals repository.MealRepo, goals domain.NutritionGoals, clock Clock) NutritionService {
	if goals == (domain.NutritionGoals{}) {
		goals = domain.DefaultGoals()
	}
	return &nutritionService{meals: meals, goals: goals, now: clockOrNow(clock)}
}

func (s *nutritionService) Weekly(ctx context.Context) (*contract.WeeklyNutrition, error) {
	now := s.now()
	history, err := s.meals.ListSince(ctx, nutrition.WeekStart(now))
	if err != nil {
		return nil, fmt.Errorf("loading meal history: %w", err)
	}
	weekly := buildWeekly(history, s.goals, now)
	return &weekly, nil
}
