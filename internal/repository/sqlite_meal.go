package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/recipebot/internal/db"
	"github.com/alexanderramin/recipebot/internal/domain"
	"github.com/google/uuid"
)

const mealColumns = `id, cooked_on, recipe_name, protein_g, fiber_g, calories, notes, created_at`

// SQLiteMealRepo implements MealRepo using a SQLite database.
type SQLiteMealRepo struct {
	db db.DBTX
}

func NewSQLiteMealRepo(conn db.DBTX) *SQLiteMealRepo {
	return &SQLiteMealRepo{db: conn}
}

// Append inserts e, assigning an ID and CreatedAt when they are unset.
func (r *SQLiteMealRepo) Append(ctx context.Context, e *domain.MealEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	e.CookedOn = domain.DateOf(e.CookedOn)

	query := `INSERT INTO meal_log (` + mealColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		formatDate(e.CookedOn),
		e.RecipeName,
		e.ProteinG,
		e.FiberG,
		e.Calories,
		e.Notes,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting meal log entry: %w", err)
	}
	return nil
}

func (r *SQLiteMealRepo) List(ctx context.Context) ([]domain.MealEntry, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_log ORDER BY cooked_on, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing meal log: %w", err)
	}
	defer rows.Close()
	return scanMeals(rows)
}

// ListSince returns entries cooked on or after since's date.
func (r *SQLiteMealRepo) ListSince(ctx context.Context, since time.Time) ([]domain.MealEntry, error) {
	query := `SELECT ` + mealColumns + ` FROM meal_log WHERE cooked_on >= ? ORDER BY cooked_on, created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query, formatDate(since))
	if err != nil {
		return nil, fmt.Errorf("listing meal log since %s: %w", formatDate(since), err)
	}
	defer rows.Close()
	return scanMeals(rows)
}

func scanMeals(rows *sql.Rows) ([]domain.MealEntry, error) {
	var entries []domain.MealEntry
	for rows.Next() {
		var e domain.MealEntry
		var cookedOn, createdAt string
		err := rows.Scan(&e.ID, &cookedOn, &e.RecipeName, &e.ProteinG, &e.FiberG, &e.Calories, &e.Notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning meal log row: %w", err)
		}
		if e.CookedOn, err = parseDate(cookedOn); err != nil {
			return nil, err
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating meal log: %w", err)
	}
	return entries, nil
}
