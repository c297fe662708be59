package domain

import "time"

// DateLayout is the storage and display format of a cooked-on date.
const DateLayout = "2006-01-02"

// MealEntry is one row of the append-only meal log. Macros are copied from the
// recipe at log time so later catalog edits do not rewrite history.
type MealEntry struct {
	ID         string
	CookedOn   time.Time
	RecipeName string
	ProteinG   int
	FiberG     int
	Calories   int
	Notes      string
	CreatedAt  time.Time
}

// DateOf truncates t to its civil date, expressed as midnight UTC so dates
// compare independently of the caller's zone.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
