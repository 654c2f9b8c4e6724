package insight

import (
	"math"
	"time"

	"github.com/igorvolkov/taskmaster/internal/domain"
)

// Scoring factor constants. The formula is a fixed weighted sum; there is no
// learned component.
const (
	basePointsPerWeight = 10.0
	urgencyHorizonDays  = 30.0
	urgencyFactor       = 0.75
	complexityFactor    = 7.5
	projectImportance   = 5.0 // flat placeholder, no project-priority signal yet
	recencyBoost        = 5.0
	recencyWindowDays   = 1
	maxScore            = 100.0
)

// ScoreBreakdown itemizes the contributions behind a task's priority score.
type ScoreBreakdown struct {
	Base              float64
	Urgency           float64
	Complexity        float64
	ProjectImportance float64
	RecencyBoost      float64
	Total             float64
}

// Score computes the 0-100 urgency score for a task at the given time.
// Pure: the task is not mutated.
func Score(t *domain.Task, now time.Time) float64 {
	return Breakdown(t, now).Total
}

// Breakdown computes the score with per-factor contributions.
//
// The urgency term grows without bound for overdue tasks (daysUntilDue goes
// negative, so 30-daysUntilDue keeps climbing); only the final total is
// clamped. Intentional amplification, not a bug.
func Breakdown(t *domain.Task, now time.Time) ScoreBreakdown {
	b := ScoreBreakdown{
		Base:              float64(t.Priority.Weight()) * basePointsPerWeight,
		Complexity:        t.Complexity.Multiplier() * complexityFactor,
		ProjectImportance: projectImportance,
	}

	if days := t.DaysUntilDue(now); days != nil {
		b.Urgency = math.Max(0, urgencyHorizonDays-float64(*days)) * urgencyFactor
	}

	daysSinceCreated := int(math.Floor(now.Sub(t.CreatedDate).Hours() / 24))
	if daysSinceCreated <= recencyWindowDays {
		b.RecencyBoost = recencyBoost
	}

	b.Total = math.Min(maxScore, b.Base+b.Urgency+b.Complexity+b.ProjectImportance+b.RecencyBoost)
	return b
}

// UpdateScores recomputes and overwrites AIPriorityScore for every task in
// the list and returns the same slice. Callers persist the result; the batch
// is not required to be atomic.
func UpdateScores(tasks []*domain.Task, now time.Time) []*domain.Task {
	for _, t := range tasks {
		t.AIPriorityScore = Score(t, now)
	}
	return tasks
}

// SuggestPriority maps the computed score to a priority band and returns the
// suggestion only when it differs from the task's current priority.
// Bands: [80,100] urgent, [60,80) high, [40,60) medium, [0,40) low.
func SuggestPriority(t *domain.Task, now time.Time) *domain.Priority {
	score := Score(t, now)

	var suggested domain.Priority
	switch {
	case score >= 80:
		suggested = domain.PriorityUrgent
	case score >= 60:
		suggested = domain.PriorityHigh
	case score >= 40:
		suggested = domain.PriorityMedium
	default:
		suggested = domain.PriorityLow
	}

	if suggested == t.Priority {
		return nil
	}
	return &suggested
}
