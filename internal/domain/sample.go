package domain

import (
	"time"

	"github.com/google/uuid"
)

// SampleTasks returns the starter dataset inserted on first launch when no
// persisted tasks exist.
func SampleTasks(now time.Time) []*Task {
	day := func(n int) *time.Time {
		d := now.AddDate(0, 0, n)
		return &d
	}
	return []*Task{
		{
			ID:             uuid.New().String(),
			Title:          "Design new onboarding flow",
			Description:    "Create a comprehensive onboarding experience for new users with interactive tutorials and feature highlights.",
			Priority:       PriorityHigh,
			Status:         TaskInProgress,
			Complexity:     ComplexityComplex,
			DueDate:        day(3),
			CreatedDate:    now,
			Tags:           []string{"Design", "UX", "Onboarding"},
			EstimatedHours: 12.0,
			Subtasks:       []string{"Research competitors", "Create wireframes", "Design mockups", "User testing"},
			Collaborators:  []string{uuid.New().String()},
		},
		{
			ID:             uuid.New().String(),
			Title:          "Implement push notifications",
			Description:    "Set up push notification system for task reminders and team updates.",
			Priority:       PriorityMedium,
			Status:         TaskTodo,
			Complexity:     ComplexityModerate,
			DueDate:        day(7),
			CreatedDate:    now,
			Tags:           []string{"Development", "Backend", "Notifications"},
			EstimatedHours: 6.0,
			Subtasks:       []string{"Configure APNs", "Create notification templates", "Test delivery"},
		},
		{
			ID:             uuid.New().String(),
			Title:          "Weekly team standup",
			Description:    "Regular team sync to discuss progress and blockers.",
			Priority:       PriorityLow,
			Status:         TaskCompleted,
			Complexity:     ComplexitySimple,
			DueDate:        day(-1),
			CreatedDate:    now,
			CompletedDate:  day(-1),
			Tags:           []string{"Meeting", "Team"},
			EstimatedHours: 1.0,
		},
		{
			ID:             uuid.New().String(),
			Title:          "Security audit",
			Description:    "Comprehensive security review of the application infrastructure.",
			Priority:       PriorityUrgent,
			Status:         TaskReview,
			Complexity:     ComplexityExpert,
			DueDate:        day(1),
			CreatedDate:    now,
			Tags:           []string{"Security", "Audit", "Critical"},
			EstimatedHours: 20.0,
			Collaborators:  []string{uuid.New().String(), uuid.New().String()},
		},
	}
}

// SampleProjects returns the starter projects matching SampleTasks.
func SampleProjects(now time.Time) []*Project {
	month := func(n int) *time.Time {
		d := now.AddDate(0, n, 0)
		return &d
	}
	budget := func(v float64) *float64 { return &v }
	return []*Project{
		{
			ID:              uuid.New().String(),
			Name:            "TaskMaster Mobile App",
			Description:     "Complete redesign and development of the TaskMaster mobile application with new features and improved UX.",
			Status:          ProjectActive,
			Type:            ProjectDevelopment,
			StartDate:       now.AddDate(0, -2, 0),
			Deadline:        month(1),
			CreatedDate:     now,
			OwnerID:         uuid.New().String(),
			TeamMembers:     []string{uuid.New().String(), uuid.New().String(), uuid.New().String()},
			Tags:            []string{"Mobile", "Critical"},
			EstimatedBudget: budget(50000.0),
			EstimatedHours:  320.0,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Brand Identity Refresh",
			Description:     "Update company branding including logo, color scheme, and marketing materials.",
			Status:          ProjectPlanning,
			Type:            ProjectDesign,
			StartDate:       now.AddDate(0, 0, 7),
			Deadline:        month(2),
			CreatedDate:     now,
			OwnerID:         uuid.New().String(),
			TeamMembers:     []string{uuid.New().String(), uuid.New().String()},
			Tags:            []string{"Branding", "Design", "Marketing"},
			EstimatedBudget: budget(25000.0),
			EstimatedHours:  160.0,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Customer Analytics Platform",
			Description:     "Build comprehensive analytics dashboard for customer behavior analysis.",
			Status:          ProjectActive,
			Type:            ProjectDevelopment,
			StartDate:       now.AddDate(0, -1, 0),
			Deadline:        month(3),
			CreatedDate:     now,
			OwnerID:         uuid.New().String(),
			TeamMembers:     []string{uuid.New().String(), uuid.New().String(), uuid.New().String(), uuid.New().String()},
			Tags:            []string{"Analytics", "Dashboard", "Data"},
			EstimatedBudget: budget(75000.0),
			EstimatedHours:  480.0,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Q4 Marketing Campaign",
			Description:     "Comprehensive marketing campaign for Q4 product launches and holiday season.",
			Status:          ProjectCompleted,
			Type:            ProjectMarketing,
			StartDate:       now.AddDate(0, -3, 0),
			EndDate:         month(-1),
			Deadline:        month(-1),
			CreatedDate:     now,
			OwnerID:         uuid.New().String(),
			TeamMembers:     []string{uuid.New().String(), uuid.New().String()},
			Tags:            []string{"Marketing", "Campaign", "Holiday"},
			EstimatedBudget: budget(30000.0),
			EstimatedHours:  200.0,
		},
	}
}
