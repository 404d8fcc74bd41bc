// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/connectvault/connectvault/internal/core"
)

type Repository interface {
	CreateReset(ctx context.Context, token *ResetToken) error
	ConsumeReset(ctx context.Context, tokenHash, newPasswordHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateReset(ctx context.Context, token *ResetToken) error {
	query := `
		INSERT INTO password_resets (id, user_id, token_hash, expires_at, used)
		VALUES ($1, $2, $3, $4, false)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &token.CreatedAt, query,
		token.ID,
		token.UserID,
		token.TokenHash,
		token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("create reset token: %w", err)
	}

	return nil
}

// ConsumeReset marks a matching unused, unexpired token as used and rewrites
// the owner's password hash in the same transaction. The used=false +
// expires_at predicate makes the flip a compare-and-set: under concurrent
// calls with the same token exactly one UPDATE returns a row, the rest see
// core.ErrNotFound.
func (r *repository) ConsumeReset(
	ctx context.Context,
	tokenHash, newPasswordHash string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		consumeQuery := `
			UPDATE password_resets
			SET used = true
			WHERE token_hash = $1 AND used = false AND expires_at > NOW()
			RETURNING user_id`

		var userID string
		err := tx.GetContext(ctx, &userID, consumeQuery, tokenHash)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("consume reset token: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("consume reset token: %w", err)
		}

		passwordQuery := `
			UPDATE users
			SET password_hash = $2, updated_at = NOW()
			WHERE id = $1`

		result, err := tx.ExecContext(ctx, passwordQuery, userID, newPasswordHash)
		if err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("update password: %w", core.ErrNotFound)
		}

		return nil
	})
}

func (r *repository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM password_resets
		WHERE expires_at < $1`

	cutoff := time.Now().Add(-24 * time.Hour)

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete expired reset tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired reset tokens: %w", err)
	}

	return rows, nil
}
