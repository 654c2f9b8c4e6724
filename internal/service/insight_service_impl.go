package service

import (
	"context"
	"fmt"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
	"github.com/igorvolkov/taskmaster/internal/repository"
)

type insightService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	observer OperationObserver
	now      Clock
}

func NewInsightService(
	tasks repository.TaskRepo,
	projects repository.ProjectRepo,
	now Clock,
	observers ...OperationObserver,
) InsightService {
	return &insightService{
		tasks:    tasks,
		projects: projects,
		observer: observerOrNoop(observers),
		now:      clockOrNow(now),
	}
}

func (s *insightService) VisibleTasks(ctx context.Context, filter insight.Filter, search string, sortOpt insight.SortOption) ([]*domain.Task, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return insight.VisibleTasks(all, filter, search, sortOpt, s.now()), nil
}

// RescoreAll recomputes every task's score against the current time and
// writes the changed values back. Each write is independent; a failure
// leaves earlier updates in place.
func (s *insightService) RescoreAll(ctx context.Context) (updated int, err error) {
	startedAt := s.now()
	defer func() {
		observe(ctx, s.observer, "rescore-all", startedAt, map[string]any{"updated": updated}, err)
	}()

	all, err := s.tasks.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	for _, t := range all {
		score := insight.Score(t, now)
		if score == t.AIPriorityScore {
			continue
		}
		if err = s.tasks.UpdateScore(ctx, t.ID, score); err != nil {
			return updated, fmt.Errorf("rescoring task %s: %w", t.ID, err)
		}
		updated++
	}
	return updated, nil
}

func (s *insightService) SuggestPriority(ctx context.Context, taskID string) (*domain.Priority, error) {
	t, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("task %s not found", taskID)
	}
	return insight.SuggestPriority(t, s.now()), nil
}

func (s *insightService) Dashboard(ctx context.Context) (*Dashboard, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &Dashboard{
		Tasks:          all,
		Stats:          insight.ComputeProductivityStats(all, now),
		Week:           insight.WeeklyProgress(all, now),
		Trend:          insight.AnalyzeTrend(all, now),
		TeamEfficiency: insight.TeamEfficiencyScore(all),
		QuickActions:   insight.QuickActions(all, now),
		Insights:       insight.ProductivityInsights(all, now),
	}, nil
}

func (s *insightService) CompletionTrend(ctx context.Context) ([]insight.CompletionPoint, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return insight.CompletionTrend(all, s.now()), nil
}

func (s *insightService) ProjectStats(ctx context.Context, projectID string) (*insight.ProjectStats, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("project %s not found", projectID)
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	stats := insight.ComputeProjectStats(p, tasks)
	return &stats, nil
}

func (s *insightService) UpcomingTasks(ctx context.Context, days int) ([]*domain.Task, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return insight.UpcomingTasks(all, s.now(), days), nil
}

func (s *insightService) WorkflowSuggestions(ctx context.Context) ([]string, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return insight.WorkflowSuggestions(all, s.now()), nil
}
