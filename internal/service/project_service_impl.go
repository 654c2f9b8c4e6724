package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/igorvolkov/taskmaster/internal/db"
	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/notify"
	"github.com/igorvolkov/taskmaster/internal/repository"
)

type projectService struct {
	projects  repository.ProjectRepo
	uow       db.UnitOfWork
	reminders notify.Scheduler
	now       Clock
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, reminders notify.Scheduler, now Clock) ProjectService {
	return &projectService{projects: projects, uow: uow, reminders: reminders, now: clockOrNow(now)}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := s.now()
	p.CreatedDate = now
	if p.StartDate.IsZero() {
		p.StartDate = now
	}
	if p.Status == "" {
		p.Status = domain.ProjectActive
	}
	if p.Type == "" {
		p.Type = domain.ProjectOther
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return err
	}
	return s.syncDeadlineReminder(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.projects.Update(ctx, p); err != nil {
		return err
	}
	return s.syncDeadlineReminder(ctx, p)
}

// Delete removes the project and clears the project reference on its tasks
// in one transaction. The tasks themselves survive as standalone tasks.
func (s *projectService) Delete(ctx context.Context, id string) error {
	existing, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("project %s not found", id)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTaskRepo(tx).ClearProjectRef(ctx, id); err != nil {
			return err
		}
		return repository.NewSQLiteProjectRepo(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	return s.reminders.Cancel(ctx, id)
}

// syncDeadlineReminder keeps the stored reminder in step with the project:
// an open project with a deadline has one firing at that deadline, anything
// else has none.
func (s *projectService) syncDeadlineReminder(ctx context.Context, p *domain.Project) error {
	if p.Deadline == nil || p.Status == domain.ProjectCompleted || p.Status == domain.ProjectCancelled {
		return s.reminders.Cancel(ctx, p.ID)
	}
	return s.reminders.Schedule(ctx, p.ID, domain.ReminderProject, *p.Deadline)
}
