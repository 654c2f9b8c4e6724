package formatter

import (
	"fmt"
	"strings"

	"github.com/igorvolkov/taskmaster/internal/insight"
)

// FormatTrend renders the 30-day trend comparison.
func FormatTrend(trend insight.TrendAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("30-Day Trend") + "\n")
	writeField(&b, "Direction", TrendIndicator(trend.Direction))
	writeField(&b, "Recent", fmt.Sprintf("%d completed in the last 30 days", trend.RecentCompleted))
	writeField(&b, "Previous", fmt.Sprintf("%d completed in the 30 days before", trend.PreviousCompleted))
	if trend.PreviousCompleted > 0 {
		writeField(&b, "Change", fmt.Sprintf("%+.1f%%", trend.ChangePercentage))
	}
	return b.String()
}

// FormatCompletionTrend renders the 7-day completion points as a small table
// with a spark column.
func FormatCompletionTrend(points []insight.CompletionPoint) string {
	max := 0
	for _, p := range points {
		if p.Completed > max {
			max = p.Completed
		}
	}

	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			p.Date.Format("Mon 02"),
			StyleGreen.Render(RenderSparkBar(p.Completed, max)),
			fmt.Sprintf("%d", p.Completed),
			fmt.Sprintf("%d", p.Total),
			fmt.Sprintf("%.0f%%", p.CompletionRate()*100),
		})
	}
	return RenderTable([]string{"Day", "", "Done", "Total", "Rate"}, rows)
}
