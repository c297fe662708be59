package db

import (
	"database/sql"
	"fmt"
	"strings"
)

const mealLogNoUpdateTrigger = `CREATE TRIGGER IF NOT EXISTS meal_log_no_update
	BEFORE UPDATE ON meal_log
	BEGIN
		SELECT RAISE(ABORT, 'meal_log is append-only');
	END`

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS pantry_items (
		name       TEXT PRIMARY KEY CHECK(name <> '' AND name = lower(trim(name))),
		in_stock   INTEGER NOT NULL DEFAULT 1 CHECK(in_stock IN (0, 1)),
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS meal_log (
		id          TEXT PRIMARY KEY,
		cooked_on   TEXT NOT NULL,
		recipe_name TEXT NOT NULL,
		protein_g   INTEGER NOT NULL DEFAULT 0,
		fiber_g     INTEGER NOT NULL DEFAULT 0,
		calories    INTEGER NOT NULL DEFAULT 0
	)`,
	// Columns added after the first release; re-running is tolerated below.
	`ALTER TABLE meal_log ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE meal_log ADD COLUMN created_at TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_meal_log_cooked_on ON meal_log(cooked_on)`,
	mealLogNoUpdateTrigger,
	`CREATE TRIGGER IF NOT EXISTS meal_log_no_delete
		BEFORE DELETE ON meal_log
		BEGIN
			SELECT RAISE(ABORT, 'meal_log is append-only');
		END`,
}

// Migrate brings the schema up to date. It is safe to run on every open.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillCreatedAt(conn); err != nil {
		return fmt.Errorf("backfilling meal_log created_at: %w", err)
	}
	return nil
}

// backfillCreatedAt fills created_at for rows logged before the column
// existed. The append-only trigger is lifted for the duration.
func backfillCreatedAt(conn *sql.DB) error {
	var pending int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM meal_log WHERE created_at = ''`).Scan(&pending); err != nil {
		return fmt.Errorf("counting rows: %w", err)
	}
	if pending == 0 {
		return nil
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	steps := []string{
		`DROP TRIGGER IF EXISTS meal_log_no_update`,
		`UPDATE meal_log SET created_at = cooked_on || 'T00:00:00Z' WHERE created_at = ''`,
		mealLogNoUpdateTrigger,
	}
	for _, s := range steps {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}
	return tx.Commit()
}
