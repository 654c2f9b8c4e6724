package domain

import (
	"fmt"
	"math"
	"time"
)

type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Status      TaskStatus
	Complexity  Complexity

	DueDate       *time.Time
	CreatedDate   time.Time
	CompletedDate *time.Time

	// Weak references by id. A dangling reference resolves to "absent".
	ProjectID      *string
	AssignedUserID *string

	Tags          []string
	Subtasks      []string
	Attachments   []string
	Collaborators []string

	EstimatedHours float64
	ActualHours    float64

	// AIPriorityScore is derived and cached; Score is the source of truth.
	AIPriorityScore float64
}

// Validate checks the fields a caller must supply before persisting.
func (t *Task) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.EstimatedHours < 0 || t.ActualHours < 0 {
		return fmt.Errorf("task hours must be non-negative")
	}
	return nil
}

// IsOverdue reports whether the task has a due date in the past and is not
// completed. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != TaskCompleted
}

// DaysUntilDue returns the floored whole days between now and the due date,
// negative when overdue, nil when no due date is set.
func (t *Task) DaysUntilDue(now time.Time) *int {
	if t.DueDate == nil {
		return nil
	}
	days := int(math.Floor(t.DueDate.Sub(now).Hours() / 24))
	return &days
}

// ProgressPercentage is a coarse subtask-count heuristic: completed tasks are
// 100%, otherwise each recorded subtask counts as 10%. Individual subtask
// completion is not tracked.
func (t *Task) ProgressPercentage() float64 {
	if t.Status == TaskCompleted {
		return 100.0
	}
	if len(t.Subtasks) == 0 {
		return 0.0
	}
	return float64(len(t.Subtasks)) * 10.0
}
