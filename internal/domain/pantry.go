package domain

import (
	"sort"
	"strings"
)

// Pantry maps a normalized ingredient name to whether it is in stock.
type Pantry map[string]bool

// NormalizeIngredient is the only way pantry keys are produced.
func NormalizeIngredient(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SplitIngredients splits a comma or newline separated list into normalized
// names, dropping blanks.
func SplitIngredients(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '\n' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := NormalizeIngredient(f); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func (p Pantry) InStock() []string {
	return p.filter(true)
}

func (p Pantry) OutOfStock() []string {
	return p.filter(false)
}

func (p Pantry) filter(want bool) []string {
	var names []string
	for name, ok := range p {
		if ok == want {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy safe to hand to the scoring engine.
func (p Pantry) Clone() Pantry {
	out := make(Pantry, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
