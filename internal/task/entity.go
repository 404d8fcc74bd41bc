// AngelaMos | 2026
// entity.go

package task

import (
	"time"
)

type Task struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	ContactID   *string    `db:"contact_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	DueDate     *time.Time `db:"due_date"`
	CreatedAt   time.Time  `db:"created_at"`
}

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)
