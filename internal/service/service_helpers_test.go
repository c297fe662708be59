package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/recipebot/internal/catalog"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/alexanderramin/recipebot/internal/repository"
	"github.com/alexanderramin/recipebot/internal/testutil"
)

// Wednesday; the week starts on Monday 2026-03-09.
var testNow = time.Date(2026, 3, 11, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type fixture struct {
	conn    *sql.DB
	source  catalog.Source
	pantry  repository.PantryRepo
	meals   repository.MealRepo
	events  *recordingObserver
	catalog *catalog.Catalog
}

func newFixture(t *testing.T, pantry domain.Pantry) *fixture {
	t.Helper()
	conn := testutil.NewTestDB(t)
	cat := &catalog.Catalog{Recipes: testutil.SampleCatalog(), Pantry: pantry}
	return &fixture{
		conn:    conn,
		source:  catalog.StaticSource{Catalog: cat},
		pantry:  repository.NewSQLitePantryRepo(conn),
		meals:   repository.NewSQLiteMealRepo(conn),
		events:  &recordingObserver{},
		catalog: cat,
	}
}

func (f *fixture) recommendService() RecommendService {
	return NewRecommendService(f.source, f.pantry, f.meals, RecommendConfig{Clock: fixedClock}, f.events)
}

func (f *fixture) mealService() MealService {
	return NewMealService(f.source, f.meals, domain.DefaultGoals(), fixedClock, f.events)
}

func (f *fixture) pantryService() PantryService {
	return NewPantryService(f.pantry, f.source, testutil.NewTestUoW(f.conn), f.events)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	o.events = append(o.events, e)
	o.mu.Unlock()
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
