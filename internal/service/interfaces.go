package service

import (
	"context"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	ToggleCompletion(ctx context.Context, id string) (*domain.Task, error)
	LogTime(ctx context.Context, id string, hours float64) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Current(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	CompleteOnboarding(ctx context.Context, u *domain.User) error
}

// Dashboard bundles everything the TUI and stats commands render in one
// consistent snapshot.
type Dashboard struct {
	Tasks          []*domain.Task
	Stats          insight.ProductivityStats
	Week           []insight.DayProgress
	Trend          insight.TrendAnalysis
	TeamEfficiency float64
	QuickActions   []*domain.Task
	Insights       []string
}

type InsightService interface {
	// VisibleTasks runs the search/filter/sort pipeline over all stored tasks.
	VisibleTasks(ctx context.Context, filter insight.Filter, search string, sortOpt insight.SortOption) ([]*domain.Task, error)
	// RescoreAll recomputes and persists priority scores for every task.
	RescoreAll(ctx context.Context) (int, error)
	SuggestPriority(ctx context.Context, taskID string) (*domain.Priority, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	CompletionTrend(ctx context.Context) ([]insight.CompletionPoint, error)
	ProjectStats(ctx context.Context, projectID string) (*insight.ProjectStats, error)
	UpcomingTasks(ctx context.Context, days int) ([]*domain.Task, error)
	WorkflowSuggestions(ctx context.Context) ([]string, error)
}

// Clock supplies the current instant; tests substitute a fixed one.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c != nil {
		return c
	}
	return func() time.Time { return time.Now().UTC() }
}
