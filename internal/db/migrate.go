package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds all schema statements, executed in order. Statements are
// idempotent (CREATE IF NOT EXISTS) so the full list re-runs at every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		priority          TEXT NOT NULL
		                  CHECK(priority IN ('low','medium','high','urgent')),
		status            TEXT NOT NULL
		                  CHECK(status IN ('todo','in_progress','review','completed','cancelled')),
		complexity        TEXT NOT NULL
		                  CHECK(complexity IN ('simple','moderate','complex','expert')),
		due_date          TEXT,
		created_date      TEXT NOT NULL,
		completed_date    TEXT,
		project_id        TEXT,
		assigned_user_id  TEXT,
		tags              TEXT NOT NULL DEFAULT '[]',
		subtasks          TEXT NOT NULL DEFAULT '[]',
		attachments       TEXT NOT NULL DEFAULT '[]',
		collaborators     TEXT NOT NULL DEFAULT '[]',
		estimated_hours   REAL NOT NULL DEFAULT 0,
		actual_hours      REAL NOT NULL DEFAULT 0,
		ai_priority_score REAL NOT NULL DEFAULT 0
	)`,
	// project_id and assigned_user_id are weak references by design: no
	// foreign key, so deleting a project leaves tasks behind and the
	// service layer clears the back-reference.
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		status           TEXT NOT NULL
		                 CHECK(status IN ('planning','active','on_hold','completed','cancelled')),
		type             TEXT NOT NULL
		                 CHECK(type IN ('development','design','marketing','research','operations','other')),
		start_date       TEXT NOT NULL,
		end_date         TEXT,
		deadline         TEXT,
		created_date     TEXT NOT NULL,
		owner_id         TEXT NOT NULL DEFAULT '',
		team_members     TEXT NOT NULL DEFAULT '[]',
		tags             TEXT NOT NULL DEFAULT '[]',
		estimated_budget REAL,
		actual_budget    REAL,
		estimated_hours  REAL NOT NULL DEFAULT 0,
		actual_hours     REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id              TEXT PRIMARY KEY,
		first_name      TEXT NOT NULL DEFAULT '',
		last_name       TEXT NOT NULL DEFAULT '',
		email           TEXT NOT NULL DEFAULT '',
		role            TEXT NOT NULL DEFAULT 'member',
		status          TEXT NOT NULL DEFAULT 'active',
		department      TEXT,
		timezone        TEXT NOT NULL DEFAULT 'UTC',
		join_date       TEXT NOT NULL,
		last_active     TEXT NOT NULL,
		preferences     TEXT NOT NULL DEFAULT '{}',
		stats           TEXT NOT NULL DEFAULT '{}',
		skills          TEXT NOT NULL DEFAULT '[]',
		bio             TEXT,
		onboarding_done INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		ref_id     TEXT PRIMARY KEY,
		kind       TEXT NOT NULL CHECK(kind IN ('task','project')),
		fire_at    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_fire_at ON reminders(fire_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
