package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

var suggestNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func TestWorkflowSuggestionsEmptyWorkload(t *testing.T) {
	assert.Empty(t, WorkflowSuggestions(nil, suggestNow))
}

func TestWorkflowSuggestionsOverdueFirst(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("late", testutil.WithDueDate(suggestNow.AddDate(0, 0, -2))),
	}

	got := WorkflowSuggestions(tasks, suggestNow)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "1 overdue")
}

func TestWorkflowSuggestionsTooMuchInProgress(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 4; i++ {
		tasks = append(tasks, testutil.NewTestTask("wip",
			testutil.WithStatus(domain.TaskInProgress)))
	}

	got := WorkflowSuggestions(tasks, suggestNow)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "4 tasks in progress")
}

func TestWorkflowSuggestionsStaleInProgress(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("lingering",
			testutil.WithStatus(domain.TaskInProgress),
			testutil.WithCreatedDate(suggestNow.AddDate(0, 0, -20))),
	}

	got := WorkflowSuggestions(tasks, suggestNow)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "two weeks old")
}

func TestWorkflowSuggestionsUnscheduledTodos(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("someday"),
		testutil.NewTestTask("scheduled", testutil.WithDueDate(suggestNow.AddDate(0, 0, 3))),
	}

	got := WorkflowSuggestions(tasks, suggestNow)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "no due date")
}

func TestWorkflowSuggestionsDecliningTrend(t *testing.T) {
	tasks := append(completedBatch(2, 5), completedBatch(10, 45)...)

	got := WorkflowSuggestions(tasks, suggestNow)
	require.NotEmpty(t, got)
	assert.Contains(t, got[0], "pace has dropped")
}
