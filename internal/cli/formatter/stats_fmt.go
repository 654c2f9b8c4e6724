package formatter

import (
	"fmt"
	"strings"

	"github.com/igorvolkov/taskmaster/internal/insight"
)

// FormatProductivityStats renders the headline numbers block.
func FormatProductivityStats(stats insight.ProductivityStats, teamEfficiency float64) string {
	var b strings.Builder
	b.WriteString(Header("Productivity") + "\n")
	writeField(&b, "Tasks", fmt.Sprintf("%d total, %d completed, %d in progress",
		stats.TotalTasks, stats.CompletedTasks, stats.InProgressTasks))
	if stats.OverdueTasks > 0 {
		writeField(&b, "Overdue", StyleRed.Render(fmt.Sprintf("%d", stats.OverdueTasks)))
	} else {
		writeField(&b, "Overdue", StyleGreen.Render("0"))
	}
	writeField(&b, "Completion", RenderProgress(stats.CompletionRate, 20))
	if stats.AverageCompletionTimeHours > 0 {
		writeField(&b, "Avg time", fmt.Sprintf("%.1fh to complete", stats.AverageCompletionTimeHours))
	}
	writeField(&b, "On time", RenderProgress(teamEfficiency, 20))
	return b.String()
}

// FormatWeeklyProgress renders the 7-day completion chart, oldest day first.
func FormatWeeklyProgress(week []insight.DayProgress) string {
	max := 0
	for _, d := range week {
		if d.TasksCompleted > max {
			max = d.TasksCompleted
		}
	}

	var b strings.Builder
	b.WriteString(Header("This Week") + "\n")
	for _, d := range week {
		bar := strings.Repeat(filledBlock, d.TasksCompleted)
		if bar == "" {
			bar = Dim("·")
		} else {
			bar = StyleGreen.Render(bar)
		}
		label := d.Day
		count := ""
		if d.TasksCompleted > 0 {
			count = fmt.Sprintf(" %d done, %.1fh", d.TasksCompleted, d.TotalHours)
		}
		fmt.Fprintf(&b, "%s %s%s\n", Dim(label), bar, count)
	}
	return b.String()
}

// FormatInsights renders the insight lines as a bulleted list.
func FormatInsights(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(Header("Insights") + "\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%s %s\n", StyleBlue.Render("•"), line)
	}
	return b.String()
}

// FormatSuggestions renders workflow suggestions, most pressing first.
func FormatSuggestions(lines []string) string {
	if len(lines) == 0 {
		return StyleGreen.Render("Nothing stands out. Keep going.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Suggestions") + "\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%s %s\n", StyleOrange.Render(fmt.Sprintf("%d.", i+1)), line)
	}
	return b.String()
}
