package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

var pipeNow = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC) // a Wednesday

func TestParseFilter(t *testing.T) {
	for _, f := range AllFilters {
		got, err := ParseFilter(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFilter("bogus")
	assert.Error(t, err)
}

func TestParseSortOption(t *testing.T) {
	for _, o := range AllSortOptions {
		got, err := ParseSortOption(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseSortOption("bogus")
	assert.Error(t, err)
}

func TestSearchMatchesTitleDescriptionAndTags(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("Deploy API"),
		testutil.NewTestTask("Write docs", testutil.WithDescription("covers the api surface")),
		testutil.NewTestTask("Plan retro", testutil.WithTags("meeting", "API-design")),
		testutil.NewTestTask("Buy coffee"),
	}

	got := SearchTasks(tasks, "api")
	require.Len(t, got, 3)
	assert.Equal(t, "Deploy API", got[0].Title)
	assert.Equal(t, "Write docs", got[1].Title)
	assert.Equal(t, "Plan retro", got[2].Title)
}

func TestSearchEmptyQueryReturnsInput(t *testing.T) {
	tasks := []*domain.Task{testutil.NewTestTask("a")}
	assert.Equal(t, tasks, SearchTasks(tasks, ""))
}

// Search always re-derives from the full collection; it never narrows a
// previously filtered subset. A completed task matching the query therefore
// reappears when the completed filter is also active, because the filter
// runs after the search over everything.
func TestSearchRederivesFromFullCollection(t *testing.T) {
	done := pipeNow.AddDate(0, 0, -1)
	tasks := []*domain.Task{
		testutil.NewTestTask("fix login bug", testutil.WithStatus(domain.TaskInProgress)),
		testutil.NewTestTask("fix logout bug", testutil.WithCompletedDate(done)),
		testutil.NewTestTask("plan sprint", testutil.WithCompletedDate(done)),
	}

	got := VisibleTasks(tasks, FilterCompleted, "fix", SortByTitle, pipeNow)
	require.Len(t, got, 1)
	assert.Equal(t, "fix logout bug", got[0].Title)

	// Without search text the same filter sees both completed tasks.
	got = VisibleTasks(tasks, FilterCompleted, "", SortByTitle, pipeNow)
	assert.Len(t, got, 2)
}

func TestFilterByStatus(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("todo one"),
		testutil.NewTestTask("busy", testutil.WithStatus(domain.TaskInProgress)),
		testutil.NewTestTask("done", testutil.WithCompletedDate(pipeNow.AddDate(0, 0, -1))),
	}

	assert.Len(t, VisibleTasks(tasks, FilterAll, "", SortByTitle, pipeNow), 3)
	assert.Len(t, VisibleTasks(tasks, FilterTodo, "", SortByTitle, pipeNow), 1)
	assert.Len(t, VisibleTasks(tasks, FilterInProgress, "", SortByTitle, pipeNow), 1)
	assert.Len(t, VisibleTasks(tasks, FilterCompleted, "", SortByTitle, pipeNow), 1)
}

func TestFilterOverdueExcludesCompleted(t *testing.T) {
	past := pipeNow.AddDate(0, 0, -3)
	tasks := []*domain.Task{
		testutil.NewTestTask("late", testutil.WithDueDate(past)),
		testutil.NewTestTask("late but done", testutil.WithDueDate(past),
			testutil.WithCompletedDate(pipeNow.AddDate(0, 0, -1))),
		testutil.NewTestTask("future", testutil.WithDueDate(pipeNow.AddDate(0, 0, 3))),
		testutil.NewTestTask("undated"),
	}

	got := VisibleTasks(tasks, FilterOverdue, "", SortByTitle, pipeNow)
	require.Len(t, got, 1)
	assert.Equal(t, "late", got[0].Title)
}

func TestFilterHighPriorityIncludesUrgent(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("meh", testutil.WithPriority(domain.PriorityMedium)),
		testutil.NewTestTask("hot", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("fire", testutil.WithPriority(domain.PriorityUrgent)),
	}

	got := VisibleTasks(tasks, FilterHighPriority, "", SortByTitle, pipeNow)
	assert.Len(t, got, 2)
}

func TestFilterTodayAndThisWeek(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("today late evening", testutil.WithDueDate(
			time.Date(2026, 3, 11, 23, 30, 0, 0, time.UTC))),
		testutil.NewTestTask("friday", testutil.WithDueDate(
			time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC))),
		testutil.NewTestTask("next monday", testutil.WithDueDate(
			time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC))),
		testutil.NewTestTask("undated"),
	}

	today := VisibleTasks(tasks, FilterToday, "", SortByTitle, pipeNow)
	require.Len(t, today, 1)
	assert.Equal(t, "today late evening", today[0].Title)

	// ISO week 11 of 2026 runs Mon Mar 9 through Sun Mar 15.
	week := VisibleTasks(tasks, FilterThisWeek, "", SortByTitle, pipeNow)
	assert.Len(t, week, 2)
}

func TestSortByDueDateNilLast(t *testing.T) {
	a := testutil.NewTestTask("A", testutil.WithDueDate(pipeNow.AddDate(0, 0, 1)))
	b := testutil.NewTestTask("B", testutil.WithDueDate(pipeNow.AddDate(0, 0, 5)))
	c := testutil.NewTestTask("C")

	got := VisibleTasks([]*domain.Task{c, a, b}, FilterAll, "", SortByDueDate, pipeNow)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, titles(got))
}

func TestSortByPriorityDescending(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("low", testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestTask("urgent", testutil.WithPriority(domain.PriorityUrgent)),
		testutil.NewTestTask("high", testutil.WithPriority(domain.PriorityHigh)),
	}

	got := VisibleTasks(tasks, FilterAll, "", SortByPriority, pipeNow)
	assert.Equal(t, []string{"urgent", "high", "low"}, titles(got))
}

func TestSortByScoreDescending(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("mid", testutil.WithScore(50)),
		testutil.NewTestTask("top", testutil.WithScore(90)),
		testutil.NewTestTask("bottom", testutil.WithScore(10)),
	}

	got := VisibleTasks(tasks, FilterAll, "", SortByAIScore, pipeNow)
	assert.Equal(t, []string{"top", "mid", "bottom"}, titles(got))
}

func TestSortByCreatedNewestFirst(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("old", testutil.WithCreatedDate(pipeNow.AddDate(0, 0, -5))),
		testutil.NewTestTask("new", testutil.WithCreatedDate(pipeNow)),
	}

	got := VisibleTasks(tasks, FilterAll, "", SortByCreatedDate, pipeNow)
	assert.Equal(t, []string{"new", "old"}, titles(got))
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("banana"),
		testutil.NewTestTask("Apple"),
		testutil.NewTestTask("cherry"),
	}

	got := VisibleTasks(tasks, FilterAll, "", SortByTitle, pipeNow)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(got))
}

func TestSortIsStableOnTies(t *testing.T) {
	first := testutil.NewTestTask("first", testutil.WithPriority(domain.PriorityMedium))
	second := testutil.NewTestTask("second", testutil.WithPriority(domain.PriorityMedium))

	got := VisibleTasks([]*domain.Task{first, second}, FilterAll, "", SortByPriority, pipeNow)
	assert.Equal(t, []string{"first", "second"}, titles(got))
}

func TestPipelineIsIdempotent(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("b", testutil.WithDueDate(pipeNow.AddDate(0, 0, 2))),
		testutil.NewTestTask("a", testutil.WithDueDate(pipeNow.AddDate(0, 0, 1))),
		testutil.NewTestTask("c"),
	}

	once := VisibleTasks(tasks, FilterAll, "", SortByDueDate, pipeNow)
	twice := VisibleTasks(once, FilterAll, "", SortByDueDate, pipeNow)
	assert.Equal(t, titles(once), titles(twice))
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("b"),
		testutil.NewTestTask("a"),
	}

	VisibleTasks(tasks, FilterAll, "", SortByTitle, pipeNow)
	assert.Equal(t, []string{"b", "a"}, titles(tasks))
}

func TestPipelineEmptyInput(t *testing.T) {
	assert.Empty(t, VisibleTasks(nil, FilterAll, "x", SortByDueDate, pipeNow))
}

func titles(tasks []*domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}
