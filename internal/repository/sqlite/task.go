package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/msomdec/taskdeck/internal/domain"
)

const taskColumns = `id, user_id, category_id, title, description, priority, due_date, completed, created_at`

// TaskRepository implements domain.TaskRepository using SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite-backed TaskRepository.
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db.SqlDB}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, category_id, title, description, priority, due_date, completed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.UserID, task.CategoryID, task.Title, task.Description,
		task.Priority, task.DueDate.UTC(), false, now,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	task.ID = id
	task.Completed = false
	task.CreatedAt = now
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, taskID int64) (*domain.Task, error) {
	t := &domain.Task{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`,
		taskID, userID,
	).Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Description,
		&t.Priority, &t.DueDate, &t.Completed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query task by id: %w", err)
	}
	return t, nil
}

// ListByUser returns the owner's tasks matching every supplied filter,
// newest first, paginated. Absent filters impose no constraint; ties on
// created_at are implementation-defined. Non-positive page and limit
// values are treated as unset and fall back to the first page and the
// default page size, never to a raw SQLite LIMIT/OFFSET.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64, filter domain.TaskFilter) ([]domain.Task, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`)
	args := []any{userID}

	if filter.Completed != nil {
		sb.WriteString(" AND completed = ?")
		args = append(args, *filter.Completed)
	}
	if filter.Priority != "" {
		sb.WriteString(" AND priority = ?")
		args = append(args, filter.Priority)
	}
	if filter.CategoryID != 0 {
		sb.WriteString(" AND category_id = ?")
		args = append(args, filter.CategoryID)
	}
	if filter.CreatedDate != "" {
		// Calendar-date equality against the creation timestamp.
		sb.WriteString(" AND DATE(created_at) = ?")
		args = append(args, filter.CreatedDate)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	sb.WriteString(" ORDER BY created_at DESC LIMIT ? OFFSET ?")
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// AllByUser returns every task belonging to the owner, newest first,
// without pagination. Used by the segments computation.
func (r *TaskRepository) AllByUser(ctx context.Context, userID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = ? ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

// Update applies the non-nil fields of update to the task matching both
// taskID and userID. An empty update set or zero matched rows yields
// ErrNotFound; ownership is enforced by the WHERE clause, never as a
// separate check.
func (r *TaskRepository) Update(ctx context.Context, userID, taskID int64, update domain.TaskUpdate) (*domain.Task, error) {
	var sets []string
	var args []any

	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *update.Description)
	}
	if update.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *update.Priority)
	}
	if update.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, update.DueDate.UTC())
	}
	if update.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *update.CategoryID)
	}
	if update.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *update.Completed)
	}

	if len(sets) == 0 {
		return nil, domain.ErrNotFound
	}

	args = append(args, taskID, userID)
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, userID, taskID)
}

// Delete removes the task matching both taskID and userID. A zero row
// count means not found, whether the task is absent or owned by someone
// else.
func (r *TaskRepository) Delete(ctx context.Context, userID, taskID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`, taskID, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Description,
			&t.Priority, &t.DueDate, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
