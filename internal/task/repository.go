// AngelaMos | 2026
// repository.go

package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/connectvault/connectvault/internal/core"
)

type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, userID, id string) (*Task, error)
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	Update(
		ctx context.Context,
		userID, id string,
		patch UpdateTaskRequest,
	) (*Task, error)
	Delete(ctx context.Context, userID, id string) error
	CountDueBetween(
		ctx context.Context,
		userID string,
		from, to time.Time,
	) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const taskColumns = `id, user_id, contact_id, title, description, status,
		       due_date, created_at`

func (r *repository) Create(ctx context.Context, task *Task) error {
	query := `
		INSERT INTO tasks (id, user_id, contact_id, title, description, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &task.CreatedAt, query,
		task.ID,
		task.UserID,
		task.ContactID,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE id = $1 AND user_id = $2`, taskColumns)

	var task Task
	err := r.db.GetContext(ctx, &task, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get task: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	return &task, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Task, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC`, taskColumns)

	var tasks []Task
	if err := r.db.SelectContext(ctx, &tasks, query, userID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *repository) Update(
	ctx context.Context,
	userID, id string,
	patch UpdateTaskRequest,
) (*Task, error) {
	sets := []string{}
	args := []any{id, userID}
	argIdx := 3

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.ContactID != nil {
		addSet("contact_id", *patch.ContactID)
	}
	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.DueDate != nil {
		addSet("due_date", *patch.DueDate)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s`,
		strings.Join(sets, ", "), taskColumns)

	var task Task
	err := r.db.GetContext(ctx, &task, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update task: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &task, nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete task: %w", core.ErrNotFound)
	}

	return nil
}

// CountDueBetween counts open tasks due within [from, to).
func (r *repository) CountDueBetween(
	ctx context.Context,
	userID string,
	from, to time.Time,
) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tasks
		WHERE user_id = $1
			AND status != 'done'
			AND due_date >= $2
			AND due_date < $3`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, from, to)
	if err != nil {
		return 0, fmt.Errorf("count due tasks: %w", err)
	}

	return count, nil
}
