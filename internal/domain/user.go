package domain

import "time"

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      UserRole
	Status    UserStatus

	Department *string
	Timezone   string
	JoinDate   time.Time
	LastActive time.Time

	Preferences UserPreferences
	Stats       UserStats

	Skills []string
	Bio    *string

	// OnboardingDone marks completion of the first-run wizard.
	OnboardingDone bool
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Initials returns the uppercased first letters of both names.
func (u *User) Initials() string {
	var out []byte
	if u.FirstName != "" {
		out = append(out, upperByte(u.FirstName[0]))
	}
	if u.LastName != "" {
		out = append(out, upperByte(u.LastName[0]))
	}
	return string(out)
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

type UserPreferences struct {
	NotificationsEnabled bool
	TaskReminders        bool
	WeeklyReports        bool
	PreferredView        string // dashboard, kanban, calendar
	WorkingHours         WorkingHours
}

// DefaultPreferences mirrors the defaults a fresh profile starts with.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		NotificationsEnabled: true,
		TaskReminders:        true,
		WeeklyReports:        true,
		PreferredView:        "dashboard",
		WorkingHours:         WorkingHours{StartTime: "09:00", EndTime: "17:00"},
	}
}

type WorkingHours struct {
	StartTime string
	EndTime   string
}

// UserStats holds bookkeeping counters updated by the mutation layer, not
// recomputed by the analytics core.
type UserStats struct {
	TasksCompleted    int
	TotalHoursWorked  float64
	ProductivityScore float64
	StreakDays        int
	LastUpdated       time.Time
}

// CompletionRate is a rough estimate from the completed counter alone.
func (s UserStats) CompletionRate() float64 {
	if s.TasksCompleted <= 0 {
		return 0.0
	}
	rate := float64(s.TasksCompleted) * 10.0
	if rate > 100.0 {
		return 100.0
	}
	return rate
}
