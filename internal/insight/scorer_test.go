package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igorvolkov/taskmaster/internal/domain"
	"github.com/igorvolkov/taskmaster/internal/testutil"
)

var scoreNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestScoreWorkedExample(t *testing.T) {
	// urgent weight 4 -> base 40; due in 2 days -> (30-2)*0.75 = 21;
	// expert -> 2.0*7.5 = 15; importance 5; created now -> recency 5.
	task := testutil.NewTestTask("ship release",
		testutil.WithPriority(domain.PriorityUrgent),
		testutil.WithComplexity(domain.ComplexityExpert),
		testutil.WithDueDate(scoreNow.Add(48*time.Hour)),
		testutil.WithCreatedDate(scoreNow),
	)

	b := Breakdown(task, scoreNow)
	assert.InDelta(t, 40.0, b.Base, 1e-9)
	assert.InDelta(t, 21.0, b.Urgency, 1e-9)
	assert.InDelta(t, 15.0, b.Complexity, 1e-9)
	assert.InDelta(t, 5.0, b.ProjectImportance, 1e-9)
	assert.InDelta(t, 5.0, b.RecencyBoost, 1e-9)
	assert.InDelta(t, 86.0, b.Total, 1e-9)
	assert.InDelta(t, 86.0, Score(task, scoreNow), 1e-9)
}

func TestScoreNoDueDateSkipsUrgency(t *testing.T) {
	task := testutil.NewTestTask("someday",
		testutil.WithPriority(domain.PriorityLow),
		testutil.WithComplexity(domain.ComplexitySimple),
		testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -10)),
	)

	b := Breakdown(task, scoreNow)
	assert.Zero(t, b.Urgency)
	assert.Zero(t, b.RecencyBoost)
	// 10 + 0 + 3.75 + 5 + 0
	assert.InDelta(t, 18.75, b.Total, 1e-9)
}

func TestScoreOverdueAmplifiesUrgency(t *testing.T) {
	// 10 days overdue: (30 - (-10)) * 0.75 = 30, well above the on-time cap
	// of 22.5; the urgency term itself is unclamped.
	task := testutil.NewTestTask("late",
		testutil.WithDueDate(scoreNow.AddDate(0, 0, -10)),
		testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -30)),
	)

	b := Breakdown(task, scoreNow)
	assert.InDelta(t, 30.0, b.Urgency, 1e-9)
}

func TestScoreClampedAt100(t *testing.T) {
	// Maximal everything pushes the raw sum past 100; only the total clamps.
	task := testutil.NewTestTask("fire",
		testutil.WithPriority(domain.PriorityUrgent),
		testutil.WithComplexity(domain.ComplexityExpert),
		testutil.WithDueDate(scoreNow.AddDate(0, 0, -60)),
		testutil.WithCreatedDate(scoreNow),
	)

	b := Breakdown(task, scoreNow)
	assert.Greater(t, b.Base+b.Urgency+b.Complexity+b.ProjectImportance+b.RecencyBoost, 100.0)
	assert.InDelta(t, 100.0, b.Total, 1e-9)
}

func TestScoreBoundsAcrossInputSpace(t *testing.T) {
	dueOffsets := []int{-90, -10, -1, 0, 1, 15, 30, 90}
	for _, p := range domain.AllPriorities {
		for _, c := range domain.AllComplexities {
			for _, off := range dueOffsets {
				task := testutil.NewTestTask("t",
					testutil.WithPriority(p),
					testutil.WithComplexity(c),
					testutil.WithDueDate(scoreNow.AddDate(0, 0, off)),
					testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)),
				)
				s := Score(task, scoreNow)
				assert.GreaterOrEqual(t, s, 0.0)
				assert.LessOrEqual(t, s, 100.0)
			}
			// no due date at all
			task := testutil.NewTestTask("t",
				testutil.WithPriority(p), testutil.WithComplexity(c),
				testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)))
			s := Score(task, scoreNow)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestScoreMonotonicInPriority(t *testing.T) {
	// All else equal, a higher priority never scores lower.
	prev := -1.0
	for _, p := range domain.AllPriorities {
		task := testutil.NewTestTask("t",
			testutil.WithPriority(p),
			testutil.WithDueDate(scoreNow.AddDate(0, 0, 10)),
			testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)),
		)
		s := Score(task, scoreNow)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}
}

func TestScoreCloserDueDateScoresHigher(t *testing.T) {
	near := testutil.NewTestTask("near",
		testutil.WithDueDate(scoreNow.AddDate(0, 0, 2)),
		testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)))
	far := testutil.NewTestTask("far",
		testutil.WithDueDate(scoreNow.AddDate(0, 0, 20)),
		testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)))

	assert.Greater(t, Score(near, scoreNow), Score(far, scoreNow))
}

func TestScoreDoesNotMutateTask(t *testing.T) {
	task := testutil.NewTestTask("t", testutil.WithScore(42))
	Score(task, scoreNow)
	assert.Equal(t, 42.0, task.AIPriorityScore)
}

func TestUpdateScoresOverwritesCache(t *testing.T) {
	tasks := []*domain.Task{
		testutil.NewTestTask("a", testutil.WithScore(1), testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5))),
		testutil.NewTestTask("b", testutil.WithScore(2), testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5))),
	}

	out := UpdateScores(tasks, scoreNow)
	require.Len(t, out, 2)
	for i, task := range out {
		assert.Same(t, tasks[i], task)
		assert.InDelta(t, Score(task, scoreNow), task.AIPriorityScore, 1e-9)
	}
}

func TestSuggestPriorityBands(t *testing.T) {
	cases := []struct {
		name    string
		task    *domain.Task
		want    *domain.Priority
	}{
		{
			// 86 falls in the urgent band but the task is already urgent.
			name: "matching band yields nil",
			task: testutil.NewTestTask("t",
				testutil.WithPriority(domain.PriorityUrgent),
				testutil.WithComplexity(domain.ComplexityExpert),
				testutil.WithDueDate(scoreNow.Add(48*time.Hour)),
				testutil.WithCreatedDate(scoreNow)),
			want: nil,
		},
		{
			// Same score, but the task thinks it is low priority.
			name: "low task scoring urgent gets suggestion",
			task: testutil.NewTestTask("t",
				testutil.WithPriority(domain.PriorityUrgent),
				testutil.WithComplexity(domain.ComplexityExpert),
				testutil.WithDueDate(scoreNow.Add(48*time.Hour)),
				testutil.WithCreatedDate(scoreNow),
				testutil.WithPriority(domain.PriorityLow)),
			// low weight 1 -> base 10, so total drops to 56: medium band.
			want: priorityPtr(domain.PriorityMedium),
		},
		{
			// 10 + 0 + 3.75 + 5 = 18.75, low band, already low.
			name: "stale low task stays put",
			task: testutil.NewTestTask("t",
				testutil.WithPriority(domain.PriorityLow),
				testutil.WithComplexity(domain.ComplexitySimple),
				testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -10))),
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SuggestPriority(tc.task, scoreNow)
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestSuggestPriorityNeverSuggestsCurrent(t *testing.T) {
	for _, p := range domain.AllPriorities {
		for _, c := range domain.AllComplexities {
			task := testutil.NewTestTask("t",
				testutil.WithPriority(p),
				testutil.WithComplexity(c),
				testutil.WithDueDate(scoreNow.AddDate(0, 0, 3)),
				testutil.WithCreatedDate(scoreNow.AddDate(0, 0, -5)),
			)
			if got := SuggestPriority(task, scoreNow); got != nil {
				assert.NotEqual(t, p, *got)
			}
		}
	}
}

func priorityPtr(p domain.Priority) *domain.Priority { return &p }
