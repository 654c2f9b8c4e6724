package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/igorvolkov/taskmaster/internal/db"
	"github.com/igorvolkov/taskmaster/internal/domain"
)

// SQLiteReminderRepo stores pending reminders keyed by the referenced
// task/project id.
type SQLiteReminderRepo struct {
	db db.DBTX
}

func NewSQLiteReminderRepo(dbtx db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: dbtx}
}

func (r *SQLiteReminderRepo) Upsert(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (ref_id, kind, fire_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ref_id) DO UPDATE SET
			kind = excluded.kind,
			fire_at = excluded.fire_at`
	_, err := r.db.ExecContext(ctx, query,
		rem.RefID,
		string(rem.Kind),
		rem.FireAt.Format(time.RFC3339),
		rem.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) Get(ctx context.Context, refID string) (*domain.Reminder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT ref_id, kind, fire_at, created_at FROM reminders WHERE ref_id = ?`, refID)
	rem, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rem, err
}

func (r *SQLiteReminderRepo) ListDue(ctx context.Context, before time.Time) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ref_id, kind, fire_at, created_at FROM reminders
		 WHERE fire_at <= ? ORDER BY fire_at`, before.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing due reminders: %w", err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *SQLiteReminderRepo) List(ctx context.Context) ([]*domain.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ref_id, kind, fire_at, created_at FROM reminders ORDER BY fire_at`)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *SQLiteReminderRepo) Delete(ctx context.Context, refID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE ref_id = ?`, refID)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

func scanReminder(row rowScanner) (*domain.Reminder, error) {
	var rem domain.Reminder
	var kind, fireAt, createdAt string
	if err := row.Scan(&rem.RefID, &kind, &fireAt, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	rem.Kind = domain.ReminderKind(kind)
	fire, err := time.Parse(time.RFC3339, fireAt)
	if err != nil {
		return nil, fmt.Errorf("parsing reminder fire time: %w", err)
	}
	rem.FireAt = fire
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing reminder created time: %w", err)
	}
	rem.CreatedAt = created
	return &rem, nil
}

func scanReminders(rows *sql.Rows) ([]*domain.Reminder, error) {
	var rems []*domain.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		rems = append(rems, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return rems, nil
}
