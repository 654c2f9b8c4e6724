package repository

import (
	"context"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	UpdateScore(ctx context.Context, id string, score float64) error
	ClearProjectRef(ctx context.Context, projectID string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UserRepo stores the single local profile. Get returns (nil, nil) when no
// profile has been saved yet.
type UserRepo interface {
	Get(ctx context.Context) (*domain.User, error)
	Upsert(ctx context.Context, u *domain.User) error
}

type ReminderRepo interface {
	Upsert(ctx context.Context, r *domain.Reminder) error
	Get(ctx context.Context, refID string) (*domain.Reminder, error)
	ListDue(ctx context.Context, before time.Time) ([]*domain.Reminder, error)
	List(ctx context.Context) ([]*domain.Reminder, error)
	Delete(ctx context.Context, refID string) error
}
