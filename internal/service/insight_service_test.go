package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/insight"
	"github.com/igorvolkov/taskmaster/internal/repository"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

type insightEnv struct {
	svc      InsightService
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	logs     *bytes.Buffer
}

func newInsightEnv(t *testing.T) insightEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	projects := repository.NewSQLiteProjectRepo(database)
	logs := &bytes.Buffer{}
	return insightEnv{
		svc:      NewInsightService(tasks, projects, fixedClock, NewLogObserver(logs)),
		tasks:    tasks,
		projects: projects,
		logs:     logs,
	}
}

func TestVisibleTasksAppliesPipeline(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("beta")))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("alpha")))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("done",
		testutil.WithCompletedDate(fixedNow))))

	got, err := env.svc.VisibleTasks(ctx, insight.FilterTodo, "", insight.SortByTitle)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alpha", got[0].Title)
	assert.Equal(t, "beta", got[1].Title)
}

func TestRescoreAllPersistsScores(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	stale := testutil.NewTestTask("stale",
		testutil.WithCreatedDate(fixedNow.AddDate(0, 0, -10)),
		testutil.WithDueDate(fixedNow.AddDate(0, 0, 2)),
		testutil.WithScore(1))
	require.NoError(t, env.tasks.Create(ctx, stale))

	updated, err := env.svc.RescoreAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	stored, err := env.tasks.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.InDelta(t, insight.Score(stale, fixedNow), stored.AIPriorityScore, 1e-9)

	// A second pass finds nothing to change.
	updated, err = env.svc.RescoreAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, updated)

	assert.True(t, strings.Contains(env.logs.String(), "rescore-all"))
}

func TestSuggestPriorityForStoredTask(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	// Low priority with an imminent due date scores into a higher band.
	task := testutil.NewTestTask("underrated",
		testutil.WithPriority(domain.PriorityLow),
		testutil.WithComplexity(domain.ComplexityExpert),
		testutil.WithDueDate(fixedNow.AddDate(0, 0, 1)),
		testutil.WithCreatedDate(fixedNow.AddDate(0, 0, -5)))
	require.NoError(t, env.tasks.Create(ctx, task))

	got, err := env.svc.SuggestPriority(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEqual(t, domain.PriorityLow, *got)

	_, err = env.svc.SuggestPriority(ctx, "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestDashboardSnapshot(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("done",
		testutil.WithCompletedDate(fixedNow.AddDate(0, 0, -1)))))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("urgent",
		testutil.WithPriority(domain.PriorityUrgent))))

	dash, err := env.svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, dash.Tasks, 2)
	assert.Equal(t, 2, dash.Stats.TotalTasks)
	assert.Equal(t, 1, dash.Stats.CompletedTasks)
	assert.Len(t, dash.Week, 7)
	require.Len(t, dash.QuickActions, 1)
	assert.Equal(t, "urgent", dash.QuickActions[0].Title)
	assert.NotEmpty(t, dash.Insights)
}

func TestProjectStatsForStoredProject(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	project := testutil.NewTestProject("Apollo")
	require.NoError(t, env.projects.Create(ctx, project))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("in scope",
		testutil.WithProjectID(project.ID),
		testutil.WithCompletedDate(fixedNow))))

	stats, err := env.svc.ProjectStats(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTasks)
	assert.InDelta(t, 100.0, stats.Progress, 1e-9)

	_, err = env.svc.ProjectStats(ctx, "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestUpcomingTasksFromStore(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("soon",
		testutil.WithDueDate(fixedNow.AddDate(0, 0, 2)))))
	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("far",
		testutil.WithDueDate(fixedNow.AddDate(0, 2, 0)))))

	got, err := env.svc.UpcomingTasks(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "soon", got[0].Title)
}

func TestWorkflowSuggestionsFromStore(t *testing.T) {
	env := newInsightEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("late",
		testutil.WithDueDate(fixedNow.AddDate(0, 0, -2)))))

	got, err := env.svc.WorkflowSuggestions(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "overdue")
}
