// AngelaMos | 2026
// repository.go

package commission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/connectvault/connectvault/internal/core"
)

type Repository interface {
	Create(ctx context.Context, commission *Commission) error
	GetByID(ctx context.Context, userID, id string) (*Commission, error)
	ListByUser(ctx context.Context, userID string) ([]Commission, error)
	Update(
		ctx context.Context,
		userID, id string,
		patch UpdateCommissionRequest,
	) (*Commission, error)
	Delete(ctx context.Context, userID, id string) error
	Aggregate(ctx context.Context, userID string) (*Summary, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const commissionColumns = `id, user_id, program_name, amount, status,
		       expected_date, paid_date, promo_link_id, notes,
		       created_at, updated_at`

func (r *repository) Create(ctx context.Context, commission *Commission) error {
	query := `
		INSERT INTO commissions (
			id, user_id, program_name, amount, status,
			expected_date, paid_date, promo_link_id, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, commission, query,
		commission.ID,
		commission.UserID,
		commission.ProgramName,
		commission.Amount,
		commission.Status,
		commission.ExpectedDate,
		commission.PaidDate,
		commission.PromoLinkID,
		commission.Notes,
	)
	if err != nil {
		return fmt.Errorf("create commission: %w", err)
	}

	return nil
}

// GetByID matches on (id, user_id) so another user's record is
// indistinguishable from a missing one.
func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Commission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM commissions
		WHERE id = $1 AND user_id = $2`, commissionColumns)

	var commission Commission
	err := r.db.GetContext(ctx, &commission, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get commission: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get commission: %w", err)
	}

	return &commission, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Commission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM commissions
		WHERE user_id = $1
		ORDER BY created_at DESC`, commissionColumns)

	var commissions []Commission
	if err := r.db.SelectContext(ctx, &commissions, query, userID); err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}

	return commissions, nil
}

// Update writes only the fields present in the patch and always refreshes
// updated_at, in a single statement scoped by (id, user_id).
func (r *repository) Update(
	ctx context.Context,
	userID, id string,
	patch UpdateCommissionRequest,
) (*Commission, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{id, userID}
	argIdx := 3

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.ProgramName != nil {
		addSet("program_name", *patch.ProgramName)
	}
	if patch.Amount != nil {
		addSet("amount", *patch.Amount)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.ExpectedDate != nil {
		addSet("expected_date", *patch.ExpectedDate)
	}
	if patch.PaidDate != nil {
		addSet("paid_date", *patch.PaidDate)
	}
	if patch.PromoLinkID != nil {
		addSet("promo_link_id", *patch.PromoLinkID)
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}

	query := fmt.Sprintf(`
		UPDATE commissions
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING %s`,
		strings.Join(sets, ", "), commissionColumns)

	var commission Commission
	err := r.db.GetContext(ctx, &commission, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update commission: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update commission: %w", err)
	}

	return &commission, nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM commissions
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete commission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete commission: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete commission: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Aggregate(
	ctx context.Context,
	userID string,
) (*Summary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)    AS total_paid,
			COALESCE(SUM(amount) FILTER (WHERE status = 'unpaid'), 0)  AS total_unpaid,
			COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0) AS total_pending
		FROM commissions
		WHERE user_id = $1`

	var summary Summary
	if err := r.db.GetContext(ctx, &summary, query, userID); err != nil {
		return nil, fmt.Errorf("aggregate commissions: %w", err)
	}

	return &summary, nil
}
