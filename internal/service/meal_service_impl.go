package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/alexanderramin/recipebot/internal/nutrition"
	"github.com/alexanderramin/recipebot/internal/repository"
)

type mealService struct {
	recipes  catalog.Source
	meals    repository.MealRepo
	goals    domain.NutritionGoals
	now      Clock
	observer UseCaseObserver
}

func NewMealService(
	recipes catalog.Source,
	meals repository.MealRepo,
	goals domain.NutritionGoals,
	clock Clock,
	observers ...UseCaseObserver,
) MealService {
	if goals == (domain.NutritionGoals{}) {
		goals = domain.DefaultGoals()
	}
	return &mealService{
		recipes:  recipes,
		meals:    meals,
		goals:    goals,
		now:      clockOrNow(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *mealService) LogMeal(ctx context.Context, req contract.LogMealRequest) (resp *contract.LogMealResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"query": req.Name}
	defer func() { observe(ctx, s.observer, "log-meal", startedAt, fields, err) }()

	cat, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	recipe, err := matching.ResolveRecipe(req.Name, cat.Recipes)
	if err != nil {
		return nil, err
	}
	cookedOn := s.now()
	if req.On != nil {
		cookedOn = *req.On
	}
	return s.appendEntry(ctx, recipe, req.Notes, cookedOn, fields)
}

func (s *mealService) LogRecipe(ctx context.Context, r domain.Recipe, notes string) (resp *contract.LogMealResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "log-meal", startedAt, fields, err) }()

	if strings.TrimSpace(r.Name) == "" {
		return nil, fmt.Errorf("logging meal: %w", domain.ErrRecipeNotFound)
	}
	return s.appendEntry(ctx, r, notes, s.now(), fields)
}

// appendEntry records r and fills fields for the caller's observer event.
func (s *mealService) appendEntry(ctx context.Context, r domain.Recipe, notes string, cookedOn time.Time, fields map[string]any) (*contract.LogMealResponse, error) {
	fields["recipe"] = r.Name
	entry := domain.MealEntry{
		CookedOn:   domain.DateOf(cookedOn),
		RecipeName: r.Name,
		ProteinG:   r.ProteinG,
		FiberG:     r.FiberG,
		Calories:   r.Calories,
		Notes:      strings.TrimSpace(notes),
	}
	if err := s.meals.Append(ctx, &entry); err != nil {
		return nil, fmt.Errorf("logging meal: %w", err)
	}
	fields["cooked_on"] = entry.CookedOn.Format(domain.DateLayout)

	history, err := s.meals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading meal history: %w", err)
	}
	return &contract.LogMealResponse{
		Entry:  entry,
		Recipe: r,
		Weekly: buildWeekly(history, s.goals, s.now()),
	}, nil
}

func (s *mealService) ThisWeek(ctx context.Context) ([]domain.MealEntry, error) {
	now := s.now()
	history, err := s.meals.ListSince(ctx, nutrition.WeekStart(now))
	if err != nil {
		return nil, err
	}
	return nutrition.MealsThisWeek(history, now), nil
}

func (s *mealService) History(ctx context.Context) ([]domain.MealEntry, error) {
	return s.meals.List(ctx)
}
