package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID          string
	Name        string
	Description string
	Status      ProjectStatus
	Type        ProjectType

	StartDate   time.Time
	EndDate     *time.Time
	Deadline    *time.Time
	CreatedDate time.Time

	OwnerID     string
	TeamMembers []string
	Tags        []string

	EstimatedBudget *float64
	ActualBudget    *float64
	EstimatedHours  float64
	ActualHours     float64
}

func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// IsOverdue reports whether the deadline has passed without completion.
func (p *Project) IsOverdue(now time.Time) bool {
	if p.Deadline == nil {
		return false
	}
	return p.Deadline.Before(now) && p.Status != ProjectCompleted
}

// ProgressPercentage returns logged hours against the estimate, capped at 100.
func (p *Project) ProgressPercentage() float64 {
	if p.EstimatedHours <= 0 {
		return 0.0
	}
	pct := p.ActualHours / p.EstimatedHours * 100.0
	if pct > 100.0 {
		return 100.0
	}
	return pct
}

// DaysUntilDeadline returns whole days until the deadline, negative when
// past, nil when no deadline is set.
func (p *Project) DaysUntilDeadline(now time.Time) *int {
	if p.Deadline == nil {
		return nil
	}
	days := int(p.Deadline.Sub(now).Hours() / 24)
	return &days
}

// Duration returns the span between start and end date, nil while the
// project has no end date.
func (p *Project) Duration() *time.Duration {
	if p.EndDate == nil {
		return nil
	}
	d := p.EndDate.Sub(p.StartDate)
	return &d
}

// BudgetUsagePercentage returns actual against estimated budget, capped at
// 100. Zero when either figure is missing.
func (p *Project) BudgetUsagePercentage() float64 {
	if p.EstimatedBudget == nil || *p.EstimatedBudget <= 0 || p.ActualBudget == nil {
		return 0.0
	}
	pct := *p.ActualBudget / *p.EstimatedBudget * 100.0
	if pct > 100.0 {
		return 100.0
	}
	return pct
}
