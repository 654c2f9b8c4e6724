package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

var trendNow = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func completedAt(daysAgo int) *domain.Task {
	return testutil.NewTestTask("done",
		testutil.WithCompletedDate(trendNow.AddDate(0, 0, -daysAgo)))
}

func completedBatch(count, daysAgo int) []*domain.Task {
	out := make([]*domain.Task, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, completedAt(daysAgo))
	}
	return out
}

func TestAnalyzeTrendImproving(t *testing.T) {
	// 12 recent vs 10 previous is a +20% change.
	tasks := append(completedBatch(12, 5), completedBatch(10, 45)...)

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, domain.TrendImproving, got.Direction)
	assert.InDelta(t, 20.0, got.ChangePercentage, 1e-9)
	assert.Equal(t, 12, got.RecentCompleted)
	assert.Equal(t, 10, got.PreviousCompleted)
}

func TestAnalyzeTrendDeclining(t *testing.T) {
	tasks := append(completedBatch(4, 5), completedBatch(10, 45)...)

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, domain.TrendDeclining, got.Direction)
	assert.InDelta(t, -60.0, got.ChangePercentage, 1e-9)
}

func TestAnalyzeTrendStableWithinThreshold(t *testing.T) {
	// 21 vs 20 is +5%, inside the +-5 band.
	tasks := append(completedBatch(21, 5), completedBatch(20, 45)...)

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, domain.TrendStable, got.Direction)
	assert.InDelta(t, 5.0, got.ChangePercentage, 1e-9)
}

func TestAnalyzeTrendEmptyPreviousWindow(t *testing.T) {
	tasks := completedBatch(7, 5)

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, domain.TrendStable, got.Direction)
	assert.Zero(t, got.ChangePercentage)
	assert.Equal(t, 7, got.RecentCompleted)
	assert.Zero(t, got.PreviousCompleted)
}

func TestAnalyzeTrendWindowBoundaries(t *testing.T) {
	// Start bounds are inclusive: exactly 30 days ago is recent, exactly
	// 60 days ago is previous, a second older than that is out of range.
	tasks := []*domain.Task{
		completedAt(30),
		completedAt(60),
		testutil.NewTestTask("too old",
			testutil.WithCompletedDate(trendNow.AddDate(0, 0, -60).Add(-time.Second))),
	}

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, 1, got.RecentCompleted)
	assert.Equal(t, 1, got.PreviousCompleted)
}

func TestAnalyzeTrendIgnoresOldAndIncomplete(t *testing.T) {
	tasks := []*domain.Task{
		completedAt(90),
		testutil.NewTestTask("open"),
		completedAt(10),
	}

	got := AnalyzeTrend(tasks, trendNow)
	assert.Equal(t, 1, got.RecentCompleted)
	assert.Zero(t, got.PreviousCompleted)
}

func TestProductivityInsightsMentionsTrendAndOverdue(t *testing.T) {
	tasks := append(completedBatch(12, 5), completedBatch(10, 45)...)
	tasks = append(tasks, testutil.NewTestTask("late",
		testutil.WithDueDate(trendNow.AddDate(0, 0, -3))))

	insights := ProductivityInsights(tasks, trendNow)
	assert.Contains(t, insights[0], "up 20%")
	assert.Contains(t, insights[1], "1 overdue")
}

func TestProductivityInsightsEmptyList(t *testing.T) {
	insights := ProductivityInsights(nil, trendNow)
	assert.Equal(t, []string{"Completion pace is steady"}, insights)
}
