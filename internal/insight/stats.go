package insight

import (
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// ProductivityStats aggregates completion metrics over a task snapshot.
type ProductivityStats struct {
	TotalTasks      int
	CompletedTasks  int
	OverdueTasks    int
	InProgressTasks int
	// CompletionRate is completed/total*100, 0 for an empty list.
	CompletionRate float64
	// AverageCompletionTimeHours is the mean created-to-completed span over
	// completed tasks that carry a completion date, 0 when there are none.
	AverageCompletionTimeHours float64
}

func ComputeProductivityStats(tasks []*domain.Task, now time.Time) ProductivityStats {
	stats := ProductivityStats{TotalTasks: len(tasks)}

	var completionSum time.Duration
	var completionCount int
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskCompleted:
			stats.CompletedTasks++
			if t.CompletedDate != nil {
				completionSum += t.CompletedDate.Sub(t.CreatedDate)
				completionCount++
			}
		case domain.TaskInProgress:
			stats.InProgressTasks++
		}
		if t.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	if completionCount > 0 {
		stats.AverageCompletionTimeHours = completionSum.Hours() / float64(completionCount)
	}

	return stats
}

// DayProgress is one bucket of the weekly completion chart.
type DayProgress struct {
	Day            string // short weekday label, e.g. "Mon"
	Date           time.Time
	TasksCompleted int
	TotalHours     float64
}

// WeeklyProgress buckets completions over the 7 calendar days ending today,
// oldest day first. A task counts toward the day its completion date falls
// on; hours are the ActualHours of those same tasks.
func WeeklyProgress(tasks []*domain.Task, now time.Time) []DayProgress {
	days := make([]DayProgress, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset)
		bucket := DayProgress{
			Day:  date.Weekday().String()[:3],
			Date: date,
		}
		for _, t := range tasks {
			if t.CompletedDate != nil && sameCalendarDay(*t.CompletedDate, date) {
				bucket.TasksCompleted++
				bucket.TotalHours += t.ActualHours
			}
		}
		days = append(days, bucket)
	}
	return days
}

// CompletionPoint is one day of the completion trend chart.
type CompletionPoint struct {
	Date      time.Time
	Completed int
	// Total is the cumulative count of tasks created on or before this day.
	Total int
}

// CompletionRate returns completed over cumulative total, 0 when nothing
// existed yet.
func (p CompletionPoint) CompletionRate() float64 {
	if p.Total == 0 {
		return 0.0
	}
	return float64(p.Completed) / float64(p.Total)
}

// CompletionTrend returns 7 daily points ending today, oldest first.
func CompletionTrend(tasks []*domain.Task, now time.Time) []CompletionPoint {
	points := make([]CompletionPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		date := now.AddDate(0, 0, -offset)
		point := CompletionPoint{Date: date}
		for _, t := range tasks {
			if t.CompletedDate != nil && sameCalendarDay(*t.CompletedDate, date) {
				point.Completed++
			}
			if !t.CreatedDate.After(endOfDay(date)) {
				point.Total++
			}
		}
		points = append(points, point)
	}
	return points
}

func endOfDay(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 23, 59, 59, int(time.Second-time.Nanosecond), d.Location())
}

// TeamEfficiencyScore is the percentage of completed tasks finished on or
// before their due date. Completed tasks missing either date count as
// on-time; this lenient default is long-standing behavior and is pinned by
// tests. Returns 0 when no tasks are completed.
func TeamEfficiencyScore(tasks []*domain.Task) float64 {
	var completed, onTime int
	for _, t := range tasks {
		if t.Status != domain.TaskCompleted {
			continue
		}
		completed++
		if t.DueDate == nil || t.CompletedDate == nil || !t.CompletedDate.After(*t.DueDate) {
			onTime++
		}
	}
	if completed == 0 {
		return 0.0
	}
	return float64(onTime) / float64(completed) * 100
}

// MostFrequentHour returns the modal hour-of-day at which tasks were
// created, breaking ties by the first hour to reach the maximum in list
// order. Defaults to 9 for an empty list.
func MostFrequentHour(tasks []*domain.Task) int {
	if len(tasks) == 0 {
		return 9
	}
	counts := make(map[int]int)
	best, bestCount := 9, 0
	for _, t := range tasks {
		h := t.CreatedDate.Hour()
		counts[h]++
		if counts[h] > bestCount {
			best, bestCount = h, counts[h]
		}
	}
	return best
}

// ProjectStats summarizes the tasks belonging to one project.
type ProjectStats struct {
	TotalTasks      int
	CompletedTasks  int
	Progress        float64 // completed/total*100
	TotalHours      float64
	EstimatedHours  float64
	BudgetUsed      float64
	BudgetAllocated float64
}

func ComputeProjectStats(project *domain.Project, tasks []*domain.Task) ProjectStats {
	stats := ProjectStats{
		BudgetUsed:      domain.FloatOr(0, project.ActualBudget),
		BudgetAllocated: domain.FloatOr(0, project.EstimatedBudget),
	}
	for _, t := range tasks {
		if t.ProjectID == nil || *t.ProjectID != project.ID {
			continue
		}
		stats.TotalTasks++
		if t.Status == domain.TaskCompleted {
			stats.CompletedTasks++
		}
		stats.TotalHours += t.ActualHours
		stats.EstimatedHours += t.EstimatedHours
	}
	if stats.TotalTasks > 0 {
		stats.Progress = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}
	return stats
}

// UpcomingTasks returns incomplete tasks due within the next `days` days.
func UpcomingTasks(tasks []*domain.Task, now time.Time, days int) []*domain.Task {
	end := now.AddDate(0, 0, days)
	var out []*domain.Task
	for _, t := range tasks {
		if t.DueDate == nil || t.Status == domain.TaskCompleted {
			continue
		}
		if !t.DueDate.Before(now) && !t.DueDate.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// QuickActions returns up to five tasks needing attention: high priority,
// overdue, or due today. Order is deterministic (first qualifying rule in
// list order) and each task appears once.
func QuickActions(tasks []*domain.Task, now time.Time) []*domain.Task {
	seen := make(map[string]bool)
	var out []*domain.Task
	add := func(t *domain.Task) {
		if !seen[t.ID] && len(out) < 5 {
			seen[t.ID] = true
			out = append(out, t)
		}
	}

	for _, t := range tasks {
		if t.Priority == domain.PriorityUrgent || t.Priority == domain.PriorityHigh {
			add(t)
		}
	}
	for _, t := range tasks {
		if t.IsOverdue(now) {
			add(t)
		}
	}
	for _, t := range tasks {
		if t.DueDate != nil && sameCalendarDay(*t.DueDate, now) && t.Status != domain.TaskCompleted {
			add(t)
		}
	}
	return out
}
