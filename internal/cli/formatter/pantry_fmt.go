package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recipebot/internal/contract"
	"github.com/alexanderramin/recipebot/internal/domain"
)

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return Dim("(none)")
	}
	return strings.Join(items, ", ")
}

func FormatPantry(p domain.Pantry) string {
	in, out := p.InStock(), p.OutOfStock()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🥫 %s\n", StyleHeader.Render(fmt.Sprintf("PANTRY (%d in stock)", len(in)))))
	b.WriteString("   " + StyleGreen.Render(joinOrNone(in)) + "\n\n")
	b.WriteString(fmt.Sprintf("🛒 %s\n", StyleHeader.Render(fmt.Sprintf("NEED TO BUY (%d)", len(out)))))
	b.WriteString("   " + StyleYellow.Render(joinOrNone(out)) + "\n")
	return b.String()
}

func FormatPantryChange(c *contract.PantryChange) string {
	if c.InStock {
		return fmt.Sprintf("✅ Marked as IN STOCK: %s\n", strings.Join(c.Items, ", "))
	}
	return fmt.Sprintf("❌ Marked as NEED TO BUY: %s\n", strings.Join(c.Items, ", "))
}
