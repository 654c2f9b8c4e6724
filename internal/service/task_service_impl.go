package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
	"github.com/igorvolkov/taskmaster/internal/notify"
	"github.com/igorvolkov/taskmaster/internal/repository"
)

type taskService struct {
	tasks     repository.TaskRepo
	reminders notify.Scheduler
	now       Clock
}

func NewTaskService(tasks repository.TaskRepo, reminders notify.Scheduler, now Clock) TaskService {
	return &taskService{tasks: tasks, reminders: reminders, now: clockOrNow(now)}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := s.now()
	t.CreatedDate = now
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Complexity == "" {
		t.Complexity = domain.ComplexityModerate
	}
	if t.EstimatedHours == 0 {
		t.EstimatedHours = t.Complexity.DefaultHours()
	}
	if err := t.Validate(); err != nil {
		return err
	}
	t.AIPriorityScore = insight.Score(t, now)

	if err := s.tasks.Create(ctx, t); err != nil {
		return err
	}
	return s.syncReminder(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	// Completed tasks always carry a completion stamp, anything else never
	// does, regardless of how the caller set the status.
	switch {
	case t.Status == domain.TaskCompleted && t.CompletedDate == nil:
		now := s.now()
		t.CompletedDate = &now
	case t.Status != domain.TaskCompleted:
		t.CompletedDate = nil
	}

	t.AIPriorityScore = insight.Score(t, s.now())
	if err := s.tasks.Update(ctx, t); err != nil {
		return err
	}
	return s.syncReminder(ctx, t)
}

// ToggleCompletion flips a task between completed and todo, keeping the
// completion stamp consistent with the status: completed tasks always carry
// one, reopened tasks never do.
func (s *taskService) ToggleCompletion(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}

	if t.Status == domain.TaskCompleted {
		t.Status = domain.TaskTodo
		t.CompletedDate = nil
	} else {
		now := s.now()
		t.Status = domain.TaskCompleted
		t.CompletedDate = &now
	}

	t.AIPriorityScore = insight.Score(t, s.now())
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	if err := s.syncReminder(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) LogTime(ctx context.Context, id string, hours float64) (*domain.Task, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("logged hours must be positive")
	}
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %s not found", id)
	}

	t.ActualHours += hours
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return s.reminders.Cancel(ctx, id)
}

// syncReminder keeps the stored reminder in step with the task: a pending
// task with a due date has one firing at that date, anything else has none.
func (s *taskService) syncReminder(ctx context.Context, t *domain.Task) error {
	if t.DueDate == nil || t.Status == domain.TaskCompleted || t.Status == domain.TaskCancelled {
		return s.reminders.Cancel(ctx, t.ID)
	}
	return s.reminders.Schedule(ctx, t.ID, domain.ReminderTask, *t.DueDate)
}
