// AngelaMos | 2026
// repository.go

package promolink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/connectvault/connectvault/internal/core"
)

type Repository interface {
	Create(ctx context.Context, link *PromoLink) error
	GetByID(ctx context.Context, userID, id string) (*PromoLink, error)
	ListByUser(ctx context.Context, userID string) ([]PromoLink, error)
	Update(
		ctx context.Context,
		userID, id string,
		patch UpdatePromoLinkRequest,
	) (*PromoLink, error)
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, link *PromoLink) error {
	query := `
		INSERT INTO promo_links (id, user_id, offer_name, promo_link, tracking_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &link.CreatedAt, query,
		link.ID,
		link.UserID,
		link.OfferName,
		link.PromoLink,
		link.TrackingLink,
	)
	if err != nil {
		return fmt.Errorf("create promo link: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*PromoLink, error) {
	query := `
		SELECT id, user_id, offer_name, promo_link, tracking_link, created_at
		FROM promo_links
		WHERE id = $1 AND user_id = $2`

	var link PromoLink
	err := r.db.GetContext(ctx, &link, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get promo link: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get promo link: %w", err)
	}

	return &link, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]PromoLink, error) {
	query := `
		SELECT id, user_id, offer_name, promo_link, tracking_link, created_at
		FROM promo_links
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var links []PromoLink
	if err := r.db.SelectContext(ctx, &links, query, userID); err != nil {
		return nil, fmt.Errorf("list promo links: %w", err)
	}

	return links, nil
}

func (r *repository) Update(
	ctx context.Context,
	userID, id string,
	patch UpdatePromoLinkRequest,
) (*PromoLink, error) {
	sets := []string{}
	args := []any{id, userID}
	argIdx := 3

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.OfferName != nil {
		addSet("offer_name", *patch.OfferName)
	}
	if patch.PromoLink != nil {
		addSet("promo_link", *patch.PromoLink)
	}
	if patch.TrackingLink != nil {
		addSet("tracking_link", *patch.TrackingLink)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query := fmt.Sprintf(`
		UPDATE promo_links
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, offer_name, promo_link, tracking_link, created_at`,
		strings.Join(sets, ", "))

	var link PromoLink
	err := r.db.GetContext(ctx, &link, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update promo link: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update promo link: %w", err)
	}

	return &link, nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM promo_links
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete promo link: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete promo link: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete promo link: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountByUser(
	ctx context.Context,
	userID string,
) (int, error) {
	query := `SELECT COUNT(*) FROM promo_links WHERE user_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count promo links: %w", err)
	}

	return count, nil
}
