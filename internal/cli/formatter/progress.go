package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// Thresholds, as fractions of the weekly goal, at which a macro bar turns
// yellow and then green.
const (
	lowProgress = 0.30
	midProgress = 0.60
)

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// RenderCompactBar renders just the blocks of a bar, without brackets or a
// percentage. dim draws it in the muted color regardless of progress.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampFraction(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	return progressStyle(pct).Render(bar)
}

// RenderProgress renders a bar like [████░░░░] 45%. pct is a fraction of the
// goal; values above 1 fill the bar but keep their true percentage.
func RenderProgress(pct float64, width int) string {
	label := pct * 100
	if label < 0 {
		label = 0
	}
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, false), label)
}

func progressStyle(pct float64) lipgloss.Style {
	switch {
	case pct < lowProgress:
		return StyleRed
	case pct < midProgress:
		return StyleYellow
	default:
		return StyleGreen
	}
}
