package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a 0-100 percentage.
// Color follows the fill: green from 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}

// RenderSparkBar renders a fixed-height vertical bar for small chart columns,
// scaled against max. Used by the weekly progress chart.
func RenderSparkBar(value, max int) string {
	levels := []rune(" ▁▂▃▄▅▆▇█")
	if max <= 0 || value <= 0 {
		return string(levels[0])
	}
	idx := value * (len(levels) - 1) / max
	if idx >= len(levels) {
		idx = len(levels) - 1
	}
	return string(levels[idx])
}
