package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/recipebot/internal/db"
	"github.com/alexanderramin/recipebot/internal/domain"
)

// SQLitePantryRepo implements PantryRepo using a SQLite database.
type SQLitePantryRepo struct {
	db db.DBTX
}

func NewSQLitePantryRepo(conn db.DBTX) *SQLitePantryRepo {
	return &SQLitePantryRepo{db: conn}
}

func (r *SQLitePantryRepo) Snapshot(ctx context.Context) (domain.Pantry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, in_stock FROM pantry_items ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing pantry items: %w", err)
	}
	defer rows.Close()

	pantry := domain.Pantry{}
	for rows.Next() {
		var name string
		var inStock int
		if err := rows.Scan(&name, &inStock); err != nil {
			return nil, fmt.Errorf("scanning pantry item: %w", err)
		}
		pantry[name] = intToBool(inStock)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pantry items: %w", err)
	}
	return pantry, nil
}

func (r *SQLitePantryRepo) Get(ctx context.Context, name string) (bool, error) {
	key := domain.NormalizeIngredient(name)
	var inStock int
	err := r.db.QueryRowContext(ctx, `SELECT in_stock FROM pantry_items WHERE name = ?`, key).Scan(&inStock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("pantry item %q: %w", key, ErrNotFound)
		}
		return false, fmt.Errorf("reading pantry item: %w", err)
	}
	return intToBool(inStock), nil
}

// Set upserts one item. Blank names are ignored.
func (r *SQLitePantryRepo) Set(ctx context.Context, name string, inStock bool) error {
	key := domain.NormalizeIngredient(name)
	if key == "" {
		return nil
	}
	query := `INSERT INTO pantry_items (name, in_stock, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET in_stock = excluded.in_stock, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, boolToInt(inStock), nowUTC()); err != nil {
		return fmt.Errorf("upserting pantry item %q: %w", key, err)
	}
	return nil
}

// SetMany applies Set to each name. Callers wanting all-or-nothing run it on
// a repo built from a transaction.
func (r *SQLitePantryRepo) SetMany(ctx context.Context, names []string, inStock bool) error {
	for _, n := range names {
		if err := r.Set(ctx, n, inStock); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLitePantryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pantry_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting pantry items: %w", err)
	}
	return n, nil
}
