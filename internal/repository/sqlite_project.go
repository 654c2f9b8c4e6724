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

const projectColumns = `id, name, description, status, type,
		start_date, end_date, deadline, created_date, owner_id,
		team_members, tags, estimated_budget, actual_budget,
		estimated_hours, actual_hours`

// SQLiteProjectRepo implements ProjectRepo over a SQLite database or transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		string(p.Status),
		string(p.Type),
		p.StartDate.Format(time.RFC3339),
		nullableTimeToString(p.EndDate),
		nullableTimeToString(p.Deadline),
		p.CreatedDate.Format(time.RFC3339),
		p.OwnerID,
		marshalStrings(p.TeamMembers),
		marshalStrings(p.Tags),
		nullableFloatToValue(p.EstimatedBudget),
		nullableFloatToValue(p.ActualBudget),
		p.EstimatedHours,
		p.ActualHours,
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET
		name = ?, description = ?, status = ?, type = ?,
		start_date = ?, end_date = ?, deadline = ?, owner_id = ?,
		team_members = ?, tags = ?, estimated_budget = ?, actual_budget = ?,
		estimated_hours = ?, actual_hours = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		string(p.Status),
		string(p.Type),
		p.StartDate.Format(time.RFC3339),
		nullableTimeToString(p.EndDate),
		nullableTimeToString(p.Deadline),
		p.OwnerID,
		marshalStrings(p.TeamMembers),
		marshalStrings(p.Tags),
		nullableFloatToValue(p.EstimatedBudget),
		nullableFloatToValue(p.ActualBudget),
		p.EstimatedHours,
		p.ActualHours,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking project update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return n, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var status, pType, startDate, createdDate string
	var endDate, deadline sql.NullString
	var teamMembers, tags string
	var estBudget, actBudget sql.NullFloat64

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &status, &pType,
		&startDate, &endDate, &deadline, &createdDate, &p.OwnerID,
		&teamMembers, &tags, &estBudget, &actBudget,
		&p.EstimatedHours, &p.ActualHours,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.ProjectStatus(status)
	p.Type = domain.ProjectType(pType)
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing project start date: %w", err)
	}
	p.StartDate = start
	created, err := time.Parse(time.RFC3339, createdDate)
	if err != nil {
		return nil, fmt.Errorf("parsing project created date: %w", err)
	}
	p.CreatedDate = created
	p.EndDate = parseNullableTime(endDate)
	p.Deadline = parseNullableTime(deadline)
	p.TeamMembers = unmarshalStrings(teamMembers)
	p.Tags = unmarshalStrings(tags)
	p.EstimatedBudget = nullableFloatFromSQL(estBudget)
	p.ActualBudget = nullableFloatFromSQL(actBudget)

	return &p, nil
}
