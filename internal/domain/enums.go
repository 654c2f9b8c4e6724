package domain

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// AllPriorities lists priorities in ascending weight order.
var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Weight returns the integer weight used by the scoring formula (1..4).
func (p Priority) Weight() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	default:
		return 0
	}
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return Priority(s), nil
	}
	return "", fmt.Errorf("invalid priority %q (expected low, medium, high or urgent)", s)
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

var AllTaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskReview, TaskCompleted, TaskCancelled}

func ParseTaskStatus(s string) (TaskStatus, error) {
	switch TaskStatus(s) {
	case TaskTodo, TaskInProgress, TaskReview, TaskCompleted, TaskCancelled:
		return TaskStatus(s), nil
	}
	return "", fmt.Errorf("invalid task status %q", s)
}

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
	ComplexityExpert   Complexity = "expert"
)

var AllComplexities = []Complexity{ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExpert}

// Multiplier returns the complexity factor used by the scoring formula.
func (c Complexity) Multiplier() float64 {
	switch c {
	case ComplexitySimple:
		return 0.5
	case ComplexityModerate:
		return 1.0
	case ComplexityComplex:
		return 1.5
	case ComplexityExpert:
		return 2.0
	default:
		return 1.0
	}
}

// DefaultHours returns the canonical estimated hours for the complexity tier.
func (c Complexity) DefaultHours() float64 {
	switch c {
	case ComplexitySimple:
		return 1.0
	case ComplexityModerate:
		return 4.0
	case ComplexityComplex:
		return 8.0
	case ComplexityExpert:
		return 16.0
	default:
		return 4.0
	}
}

func ParseComplexity(s string) (Complexity, error) {
	switch Complexity(s) {
	case ComplexitySimple, ComplexityModerate, ComplexityComplex, ComplexityExpert:
		return Complexity(s), nil
	}
	return "", fmt.Errorf("invalid complexity %q (expected simple, moderate, complex or expert)", s)
}

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch ProjectStatus(s) {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("invalid project status %q", s)
}

type ProjectType string

const (
	ProjectDevelopment ProjectType = "development"
	ProjectDesign      ProjectType = "design"
	ProjectMarketing   ProjectType = "marketing"
	ProjectResearch    ProjectType = "research"
	ProjectOperations  ProjectType = "operations"
	ProjectOther       ProjectType = "other"
)

func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectDevelopment, ProjectDesign, ProjectMarketing, ProjectResearch, ProjectOperations, ProjectOther:
		return ProjectType(s), nil
	}
	return "", fmt.Errorf("invalid project type %q", s)
}

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleManager   UserRole = "manager"
	RoleTeamLead  UserRole = "team_lead"
	RoleDeveloper UserRole = "developer"
	RoleDesigner  UserRole = "designer"
	RoleAnalyst   UserRole = "analyst"
	RoleMember    UserRole = "member"
)

var AllUserRoles = []UserRole{RoleAdmin, RoleManager, RoleTeamLead, RoleDeveloper, RoleDesigner, RoleAnalyst, RoleMember}

// Permissions returns the fixed permission set for the role. Data only; the
// services do not enforce these.
func (r UserRole) Permissions() []string {
	switch r {
	case RoleAdmin:
		return []string{"create_project", "delete_project", "manage_users", "view_analytics", "manage_settings"}
	case RoleManager:
		return []string{"create_project", "manage_team", "view_analytics", "assign_tasks"}
	case RoleTeamLead:
		return []string{"create_tasks", "assign_tasks", "view_team_analytics"}
	case RoleDeveloper, RoleDesigner, RoleAnalyst:
		return []string{"create_tasks", "edit_own_tasks", "view_project"}
	case RoleMember:
		return []string{"create_tasks", "edit_own_tasks"}
	default:
		return nil
	}
}

func ParseUserRole(s string) (UserRole, error) {
	for _, r := range AllUserRoles {
		if UserRole(s) == r {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", s)
}

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserAway    UserStatus = "away"
	UserBusy    UserStatus = "busy"
	UserOffline UserStatus = "offline"
)

type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)
