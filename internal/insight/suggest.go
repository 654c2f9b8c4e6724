package insight

import (
	"fmt"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// WorkflowSuggestions inspects the current workload and returns actionable
// advice lines, most pressing first. An empty slice means nothing stands
// out.
func WorkflowSuggestions(tasks []*domain.Task, now time.Time) []string {
	var suggestions []string

	var overdue, inProgress, unscheduled, stale int
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue++
		}
		switch t.Status {
		case domain.TaskInProgress:
			inProgress++
			if now.Sub(t.CreatedDate) > 14*24*time.Hour {
				stale++
			}
		case domain.TaskTodo:
			if t.DueDate == nil {
				unscheduled++
			}
		}
	}

	if overdue > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Reschedule or close %d overdue task(s) before taking on new work", overdue))
	}
	if inProgress > 3 {
		suggestions = append(suggestions, fmt.Sprintf("You have %d tasks in progress; finishing some before starting more reduces context switching", inProgress))
	}
	if stale > 0 {
		suggestions = append(suggestions, fmt.Sprintf("%d in-progress task(s) are over two weeks old; consider splitting or closing them", stale))
	}
	if unscheduled > 0 {
		suggestions = append(suggestions, fmt.Sprintf("%d task(s) have no due date; scheduling them improves priority scoring", unscheduled))
	}

	trend := AnalyzeTrend(tasks, now)
	if trend.Direction == domain.TrendDeclining {
		suggestions = append(suggestions, "Completion pace has dropped; try timeboxing your highest-scored tasks first")
	}

	if eff := TeamEfficiencyScore(tasks); eff > 0 && eff < 60 {
		suggestions = append(suggestions, fmt.Sprintf("Only %.0f%% of completed tasks finished on time; padding estimates may help", eff))
	}

	return suggestions
}
