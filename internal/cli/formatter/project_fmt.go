package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
)

// FormatProjectList renders projects as an aligned table.
func FormatProjectList(projects []*domain.Project, now time.Time) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		deadline := Dim("—")
		if p.Deadline != nil {
			deadline = p.Deadline.Format("2006-01-02")
			if p.IsOverdue(now) {
				deadline = StyleRed.Render(deadline)
			}
		}
		rows = append(rows, []string{
			shortID(p.ID),
			p.Name,
			string(p.Type),
			string(p.Status),
			deadline,
		})
	}
	return RenderTable([]string{"ID", "Name", "Type", "Status", "Deadline"}, rows)
}

// FormatProjectDetail renders one project with its task statistics.
func FormatProjectDetail(p *domain.Project, stats insight.ProjectStats, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header(p.Name) + "\n")
	writeField(&b, "ID", p.ID)
	if p.Description != "" {
		writeField(&b, "Description", p.Description)
	}
	writeField(&b, "Status", string(p.Status))
	writeField(&b, "Type", string(p.Type))
	writeField(&b, "Started", p.StartDate.Format("2006-01-02"))
	if p.Deadline != nil {
		deadline := p.Deadline.Format("2006-01-02")
		if p.IsOverdue(now) {
			deadline = StyleRed.Render(deadline + " (overdue)")
		}
		writeField(&b, "Deadline", deadline)
	}
	writeField(&b, "Tasks", fmt.Sprintf("%d total, %d completed", stats.TotalTasks, stats.CompletedTasks))
	writeField(&b, "Progress", RenderProgress(stats.Progress, 20))
	writeField(&b, "Hours", fmt.Sprintf("%.1f logged / %.1f estimated", stats.TotalHours, stats.EstimatedHours))
	if stats.BudgetAllocated > 0 {
		writeField(&b, "Budget", fmt.Sprintf("%.0f of %.0f used", stats.BudgetUsed, stats.BudgetAllocated))
	}
	return b.String()
}
