package domain

import "time"

type ReminderKind string

const (
	ReminderTask    ReminderKind = "task"
	ReminderProject ReminderKind = "project"
)

// Reminder is a pending local notification for a task or project, keyed by
// the referenced entity's id. Scheduling again replaces the previous one.
type Reminder struct {
	RefID     string
	Kind      ReminderKind
	FireAt    time.Time
	CreatedAt time.Time
}
