package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_ExactLayout(t *testing.T) {
	out := RenderTable(
		[]string{"RECIPE", "MIN", "CUISINE"},
		[][]string{
			{"Dal Tadka", "35", "Indian"},
			{"Chicken Stir Fry", "20", StylePurple.Render("Asian")},
		},
		1,
	)

	want := "RECIPE            MIN  CUISINE\n" +
		"────────────────  ───  ───────\n" +
		"Dal Tadka          35  Indian\n" +
		"Chicken Stir Fry   20  Asian\n"
	assert.Equal(t, want, stripANSI(out))
}
