package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// Task options
type TaskOption func(*domain.Task)

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithComplexity(c domain.Complexity) TaskOption {
	return func(t *domain.Task) {
		t.Complexity = c
	}
}

// WithCompletedDate also marks the task completed so the status/date
// invariant holds in fixtures.
func WithCompletedDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Status = domain.TaskCompleted
		t.CompletedDate = &d
	}
}

func WithCreatedDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.CreatedDate = d
	}
}

func WithProjectID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = &id
	}
}

func WithAssignedUser(id string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedUserID = &id
	}
}

func WithTags(tags ...string) TaskOption {
	return func(t *domain.Task) {
		t.Tags = tags
	}
}

func WithSubtasks(subtasks ...string) TaskOption {
	return func(t *domain.Task) {
		t.Subtasks = subtasks
	}
}

func WithCollaborators(ids ...string) TaskOption {
	return func(t *domain.Task) {
		t.Collaborators = ids
	}
}

func WithActualHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.ActualHours = h
	}
}

func WithScore(s float64) TaskOption {
	return func(t *domain.Task) {
		t.AIPriorityScore = s
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:             uuid.New().String(),
		Title:          title,
		Priority:       domain.PriorityMedium,
		Status:         domain.TaskTodo,
		Complexity:     domain.ComplexityModerate,
		CreatedDate:    time.Now().UTC(),
		EstimatedHours: domain.ComplexityModerate.DefaultHours(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Project options
type ProjectOption func(*domain.Project)

func WithDeadline(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.Deadline = &d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithProjectType(t domain.ProjectType) ProjectOption {
	return func(p *domain.Project) {
		p.Type = t
	}
}

func WithEstimatedHours(h float64) ProjectOption {
	return func(p *domain.Project) {
		p.EstimatedHours = h
	}
}

func WithBudget(estimated, actual float64) ProjectOption {
	return func(p *domain.Project) {
		p.EstimatedBudget = &estimated
		p.ActualBudget = &actual
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:             uuid.New().String(),
		Name:           name,
		Status:         domain.ProjectActive,
		Type:           domain.ProjectDevelopment,
		StartDate:      now.AddDate(0, -1, 0),
		CreatedDate:    now,
		OwnerID:        uuid.New().String(),
		EstimatedHours: 40.0,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestUser returns a profile fixture with defaults applied.
func NewTestUser(first, last string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:          uuid.New().String(),
		FirstName:   first,
		LastName:    last,
		Email:       "test@example.com",
		Role:        domain.RoleMember,
		Status:      domain.UserActive,
		Timezone:    "UTC",
		JoinDate:    now,
		LastActive:  now,
		Preferences: domain.DefaultPreferences(),
	}
}
