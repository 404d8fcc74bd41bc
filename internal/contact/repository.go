// AngelaMos | 2026
// repository.go

package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/connectvault/connectvault/internal/core"
)

type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	GetByID(ctx context.Context, userID, id string) (*Contact, error)
	ListByUser(ctx context.Context, userID string) ([]Contact, error)
	Update(
		ctx context.Context,
		userID, id string,
		patch UpdateContactRequest,
	) (*Contact, error)
	Delete(ctx context.Context, userID, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, contact *Contact) error {
	query := `
		INSERT INTO contacts (id, user_id, name, email, platform, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &contact.CreatedAt, query,
		contact.ID,
		contact.UserID,
		contact.Name,
		contact.Email,
		contact.Platform,
		contact.Notes,
	)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	userID, id string,
) (*Contact, error) {
	query := `
		SELECT id, user_id, name, email, platform, notes, created_at
		FROM contacts
		WHERE id = $1 AND user_id = $2`

	var contact Contact
	err := r.db.GetContext(ctx, &contact, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contact: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return &contact, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Contact, error) {
	query := `
		SELECT id, user_id, name, email, platform, notes, created_at
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var contacts []Contact
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

func (r *repository) Update(
	ctx context.Context,
	userID, id string,
	patch UpdateContactRequest,
) (*Contact, error) {
	sets := []string{}
	args := []any{id, userID}
	argIdx := 3

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.Platform != nil {
		addSet("platform", *patch.Platform)
	}
	if patch.Notes != nil {
		addSet("notes", *patch.Notes)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query := fmt.Sprintf(`
		UPDATE contacts
		SET %s
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, email, platform, notes, created_at`,
		strings.Join(sets, ", "))

	var contact Contact
	err := r.db.GetContext(ctx, &contact, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update contact: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return &contact, nil
}

func (r *repository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM contacts
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete contact: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) CountByUser(
	ctx context.Context,
	userID string,
) (int, error) {
	query := `SELECT COUNT(*) FROM contacts WHERE user_id = $1`

	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}

	return count, nil
}
