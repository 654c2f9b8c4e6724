package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
)

// FormatTaskList renders tasks as an aligned table.
func FormatTaskList(tasks []*domain.Task, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			shortID(t.ID),
			t.Title,
			StatusStyle(t.Status).Render(string(t.Status)),
			PriorityBadge(t.Priority),
			formatDue(t, now),
			fmt.Sprintf("%.0f", t.AIPriorityScore),
		})
	}
	return RenderTable([]string{"ID", "Title", "Status", "Priority", "Due", "Score"}, rows)
}

// FormatTaskDetail renders one task as a labelled block.
func FormatTaskDetail(t *domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header(t.Title) + "\n")
	writeField(&b, "ID", t.ID)
	if t.Description != "" {
		writeField(&b, "Description", t.Description)
	}
	writeField(&b, "Status", StatusStyle(t.Status).Render(string(t.Status)))
	writeField(&b, "Priority", PriorityBadge(t.Priority))
	writeField(&b, "Complexity", string(t.Complexity))
	writeField(&b, "Due", formatDue(t, now))
	writeField(&b, "Created", t.CreatedDate.Format("2006-01-02"))
	if t.CompletedDate != nil {
		writeField(&b, "Completed", t.CompletedDate.Format("2006-01-02"))
	}
	if t.ProjectID != nil {
		writeField(&b, "Project", shortID(*t.ProjectID))
	}
	if len(t.Tags) > 0 {
		writeField(&b, "Tags", strings.Join(t.Tags, ", "))
	}
	if len(t.Subtasks) > 0 {
		writeField(&b, "Subtasks", fmt.Sprintf("%d (%.0f%% est. progress)",
			len(t.Subtasks), t.ProgressPercentage()))
	}
	writeField(&b, "Hours", fmt.Sprintf("%.1f logged / %.1f estimated", t.ActualHours, t.EstimatedHours))
	writeField(&b, "Score", fmt.Sprintf("%.1f", t.AIPriorityScore))
	return b.String()
}

// FormatScoreBreakdown renders the per-factor contributions behind a score.
func FormatScoreBreakdown(bd insight.ScoreBreakdown) string {
	var b strings.Builder
	b.WriteString(Bold("Score factors") + "\n")
	writeField(&b, "Base", fmt.Sprintf("%.1f", bd.Base))
	writeField(&b, "Urgency", fmt.Sprintf("%.1f", bd.Urgency))
	writeField(&b, "Complexity", fmt.Sprintf("%.1f", bd.Complexity))
	writeField(&b, "Project", fmt.Sprintf("%.1f", bd.ProjectImportance))
	writeField(&b, "Recency", fmt.Sprintf("%.1f", bd.RecencyBoost))
	writeField(&b, "Total", Bold(fmt.Sprintf("%.1f", bd.Total)))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", Dim(fmt.Sprintf("%-12s", label+":")), value)
}

func formatDue(t *domain.Task, now time.Time) string {
	if t.DueDate == nil {
		return Dim("—")
	}
	s := t.DueDate.Format("2006-01-02")
	if t.IsOverdue(now) {
		return StyleRed.Render(s + " (overdue)")
	}
	if days := t.DaysUntilDue(now); days != nil && *days <= 1 {
		return StyleYellow.Render(s)
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
