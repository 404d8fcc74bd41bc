// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

// ResetToken is a single-use password reset secret. Only the sha256 hash of
// the secret is persisted; the plaintext exists only in the notification
// handed to the user.
type ResetToken struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TokenHash string    `db:"token_hash"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

func (t *ResetToken) IsValid() bool {
	return !t.IsExpired() && !t.Used
}
