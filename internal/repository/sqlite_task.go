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

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, description, priority, status, complexity,
		due_date, created_date, completed_date, project_id, assigned_user_id,
		tags, subtasks, attachments, collaborators,
		estimated_hours, actual_hours, ai_priority_score`

// SQLiteTaskRepo implements TaskRepo over a SQLite database or transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(dbtx db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: dbtx}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		string(t.Complexity),
		nullableTimeToString(t.DueDate),
		t.CreatedDate.Format(time.RFC3339),
		nullableTimeToString(t.CompletedDate),
		nullableStrToValue(t.ProjectID),
		nullableStrToValue(t.AssignedUserID),
		marshalStrings(t.Tags),
		marshalStrings(t.Subtasks),
		marshalStrings(t.Attachments),
		marshalStrings(t.Collaborators),
		t.EstimatedHours,
		t.ActualHours,
		t.AIPriorityScore,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		// Weak references must resolve to "absent", never an error.
		return nil, nil
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY created_date`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by project: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_user_id = ? ORDER BY created_date`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by user: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET
		title = ?, description = ?, priority = ?, status = ?, complexity = ?,
		due_date = ?, completed_date = ?, project_id = ?, assigned_user_id = ?,
		tags = ?, subtasks = ?, attachments = ?, collaborators = ?,
		estimated_hours = ?, actual_hours = ?, ai_priority_score = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		string(t.Complexity),
		nullableTimeToString(t.DueDate),
		nullableTimeToString(t.CompletedDate),
		nullableStrToValue(t.ProjectID),
		nullableStrToValue(t.AssignedUserID),
		marshalStrings(t.Tags),
		marshalStrings(t.Subtasks),
		marshalStrings(t.Attachments),
		marshalStrings(t.Collaborators),
		t.EstimatedHours,
		t.ActualHours,
		t.AIPriorityScore,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking task update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("task not found: %s", t.ID)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateScore(ctx context.Context, id string, score float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET ai_priority_score = ? WHERE id = ?`, score, id)
	if err != nil {
		return fmt.Errorf("updating task score: %w", err)
	}
	return nil
}

// ClearProjectRef nulls the project back-reference on all tasks of a deleted
// project. Tasks themselves are kept.
func (r *SQLiteTaskRepo) ClearProjectRef(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET project_id = NULL WHERE project_id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("clearing project references: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var priority, status, complexity string
	var createdDate string
	var dueDate, completedDate, projectID, userID sql.NullString
	var tags, subtasks, attachments, collaborators string

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &priority, &status, &complexity,
		&dueDate, &createdDate, &completedDate, &projectID, &userID,
		&tags, &subtasks, &attachments, &collaborators,
		&t.EstimatedHours, &t.ActualHours, &t.AIPriorityScore,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	t.Priority = domain.Priority(priority)
	t.Status = domain.TaskStatus(status)
	t.Complexity = domain.Complexity(complexity)
	created, err := time.Parse(time.RFC3339, createdDate)
	if err != nil {
		return nil, fmt.Errorf("parsing task created date: %w", err)
	}
	t.CreatedDate = created
	t.DueDate = parseNullableTime(dueDate)
	t.CompletedDate = parseNullableTime(completedDate)
	t.ProjectID = nullableStrFromSQL(projectID)
	t.AssignedUserID = nullableStrFromSQL(userID)
	t.Tags = unmarshalStrings(tags)
	t.Subtasks = unmarshalStrings(subtasks)
	t.Attachments = unmarshalStrings(attachments)
	t.Collaborators = unmarshalStrings(collaborators)

	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
