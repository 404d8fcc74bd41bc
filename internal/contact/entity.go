// AngelaMos | 2026
// entity.go

package contact

import (
	"time"
)

type Contact struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Platform  string    `db:"platform"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
