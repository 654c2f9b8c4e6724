package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/igorvolkov/taskmaster/internal/db"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

// SQLiteUserRepo stores the single local user profile. Preferences and stats
// are stored as JSON blobs; they are opaque to queries.
type SQLiteUserRepo struct {
	db db.DBTX
}

func NewSQLiteUserRepo(dbtx db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: dbtx}
}

const userColumns = `id, first_name, last_name, email, role, status,
		department, timezone, join_date, last_active,
		preferences, stats, skills, bio, onboarding_done`

func (r *SQLiteUserRepo) Get(ctx context.Context) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY join_date LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	var u domain.User
	var role, status, joinDate, lastActive string
	var department, bio sql.NullString
	var prefs, stats, skills string
	var onboardingDone int

	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &role, &status,
		&department, &u.Timezone, &joinDate, &lastActive,
		&prefs, &stats, &skills, &bio, &onboardingDone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.Role = domain.UserRole(role)
	u.Status = domain.UserStatus(status)
	u.Department = nullableStrFromSQL(department)
	u.Bio = nullableStrFromSQL(bio)
	u.Skills = unmarshalStrings(skills)
	u.OnboardingDone = intToBool(onboardingDone)

	join, err := time.Parse(time.RFC3339, joinDate)
	if err != nil {
		return nil, fmt.Errorf("parsing user join date: %w", err)
	}
	u.JoinDate = join
	active, err := time.Parse(time.RFC3339, lastActive)
	if err != nil {
		return nil, fmt.Errorf("parsing user last active: %w", err)
	}
	u.LastActive = active

	if err := json.Unmarshal([]byte(prefs), &u.Preferences); err != nil {
		u.Preferences = domain.DefaultPreferences()
	}
	if err := json.Unmarshal([]byte(stats), &u.Stats); err != nil {
		u.Stats = domain.UserStats{}
	}

	return &u, nil
}

func (r *SQLiteUserRepo) Upsert(ctx context.Context, u *domain.User) error {
	prefs, err := json.Marshal(u.Preferences)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	stats, err := json.Marshal(u.Stats)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}

	query := `INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			email = excluded.email,
			role = excluded.role,
			status = excluded.status,
			department = excluded.department,
			timezone = excluded.timezone,
			last_active = excluded.last_active,
			preferences = excluded.preferences,
			stats = excluded.stats,
			skills = excluded.skills,
			bio = excluded.bio,
			onboarding_done = excluded.onboarding_done`
	_, err = r.db.ExecContext(ctx, query,
		u.ID,
		u.FirstName,
		u.LastName,
		u.Email,
		string(u.Role),
		string(u.Status),
		nullableStrToValue(u.Department),
		u.Timezone,
		u.JoinDate.Format(time.RFC3339),
		u.LastActive.Format(time.RFC3339),
		string(prefs),
		string(stats),
		marshalStrings(u.Skills),
		nullableStrToValue(u.Bio),
		boolToInt(u.OnboardingDone),
	)
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}
	return nil
}
