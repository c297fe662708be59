package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/matching"
	"github.com/alexanderramin/recipebot/internal/repository"
	"github.com/alexanderramin/recipebot/internal/scoring"
)

const defaultLimit = 3

// RecommendConfig carries the per-run constants of the recommender.
type RecommendConfig struct {
	Goals domain.NutritionGoals
	// RecentDays is the variety window; zero uses the scorer default.
	RecentDays int
	// Matcher defaults to matching.Fuzzy.
	Matcher matching.Matcher
	Clock   Clock
}

type recommendService struct {
	recipes  catalog.Source
	pantry   repository.PantryRepo
	meals    repository.MealRepo
	cfg      RecommendConfig
	now      Clock
	observer UseCaseObserver
}

func NewRecommendService(
	recipes catalog.Source,
	pantry repository.PantryRepo,
	meals repository.MealRepo,
	cfg RecommendConfig,
	observers ...UseCaseObserver,
) RecommendService {
	if cfg.Goals == (domain.NutritionGoals{}) {
		cfg.Goals = domain.DefaultGoals()
	}
	return &recommendService{
		recipes:  recipes,
		pantry:   pantry,
		meals:    meals,
		cfg:      cfg,
		now:      clockOrNow(cfg.Clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *recommendService) Recommend(ctx context.Context, req contract.DinnerRequest) (resp *contract.DinnerResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"available_min": req.EffectiveMinutes(),
		"emphasis":      string(req.Emphasis),
	}
	defer func() { observe(ctx, s.observer, "recommend", startedAt, fields, err) }()

	emphasis, err := scoring.ParseEmphasis(string(req.Emphasis))
	if err != nil {
		return nil, err
	}

	now := s.now()
	if req.Now != nil {
		now = *req.Now
	}

	cat, err := s.recipes.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading recipes: %w", err)
	}
	pantry, err := s.pantry.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading pantry: %w", err)
	}
	history, err := s.meals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading meal history: %w", err)
	}

	avail := req.EffectiveMinutes()
	ranked := scoring.Score(scoring.Input{
		Recipes:      cat.Recipes,
		AvailableMin: avail,
		Pantry:       pantry,
		Goals:        s.cfg.Goals,
		History:      history,
		AsOf:         now,
		Emphasis:     emphasis,
		Matcher:      s.cfg.Matcher,
		RecentDays:   s.cfg.RecentDays,
	})
	total := len(ranked)

	// Skipping never empties a non-empty list.
	if req.Skip > 0 && len(ranked) > req.Skip {
		ranked = ranked[req.Skip:]
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	fields["feasible"] = total
	fields["returned"] = len(ranked)

	return &contract.DinnerResponse{
		GeneratedAt:     now,
		AvailableMin:    avail,
		CalendarSummary: req.CalendarSummary,
		Emphasis:        emphasis,
		Weekly:          buildWeekly(history, s.cfg.Goals, now),
		Recommendations: ranked,
		TotalFeasible:   total,
	}, nil
}
