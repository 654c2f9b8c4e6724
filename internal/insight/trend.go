package insight

import (
	"fmt"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// TrendAnalysis compares completion counts across two consecutive 30-day
// windows.
type TrendAnalysis struct {
	Direction domain.TrendDirection
	// ChangePercentage is signed: positive means more completions in the
	// recent window than in the one before it.
	ChangePercentage  float64
	RecentCompleted   int
	PreviousCompleted int
}

// AnalyzeTrend counts tasks completed in the last 30 days against those
// completed 30 to 60 days ago. Direction is improving above +5%, declining
// below -5%, stable otherwise. When the previous window is empty the change
// is reported as 0 and the direction as stable.
func AnalyzeTrend(tasks []*domain.Task, now time.Time) TrendAnalysis {
	recentStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var recent, previous int
	for _, t := range tasks {
		if t.CompletedDate == nil {
			continue
		}
		// Window bounds are inclusive at the start, so a completion at
		// exactly recentStart belongs to the recent window.
		done := *t.CompletedDate
		switch {
		case !done.Before(recentStart) && !done.After(now):
			recent++
		case !done.Before(previousStart) && done.Before(recentStart):
			previous++
		}
	}

	analysis := TrendAnalysis{
		Direction:         domain.TrendStable,
		RecentCompleted:   recent,
		PreviousCompleted: previous,
	}
	if previous == 0 {
		return analysis
	}

	analysis.ChangePercentage = float64(recent-previous) / float64(previous) * 100
	switch {
	case analysis.ChangePercentage > 5:
		analysis.Direction = domain.TrendImproving
	case analysis.ChangePercentage < -5:
		analysis.Direction = domain.TrendDeclining
	}
	return analysis
}

// ProductivityInsights renders the trend and supporting stats as short
// human-readable lines for the dashboard.
func ProductivityInsights(tasks []*domain.Task, now time.Time) []string {
	stats := ComputeProductivityStats(tasks, now)
	trend := AnalyzeTrend(tasks, now)

	var insights []string
	switch trend.Direction {
	case domain.TrendImproving:
		insights = append(insights, fmt.Sprintf("Completions up %.0f%% over the last 30 days", trend.ChangePercentage))
	case domain.TrendDeclining:
		insights = append(insights, fmt.Sprintf("Completions down %.0f%% over the last 30 days", -trend.ChangePercentage))
	default:
		insights = append(insights, "Completion pace is steady")
	}

	if stats.OverdueTasks > 0 {
		insights = append(insights, fmt.Sprintf("%d overdue task(s) need attention", stats.OverdueTasks))
	}
	if stats.CompletionRate >= 80 {
		insights = append(insights, fmt.Sprintf("Strong completion rate at %.0f%%", stats.CompletionRate))
	}
	if hour := MostFrequentHour(tasks); len(tasks) > 0 {
		insights = append(insights, fmt.Sprintf("Most tasks are created around %02d:00", hour))
	}
	if eff := TeamEfficiencyScore(tasks); stats.CompletedTasks > 0 {
		insights = append(insights, fmt.Sprintf("On-time delivery at %.0f%%", eff))
	}
	return insights
}
