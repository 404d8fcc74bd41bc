// AngelaMos | 2026
// service.go

package contact

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	userID string,
	req CreateContactRequest,
) (*Contact, error) {
	contact := &Contact{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Platform: req.Platform,
		Notes:    req.Notes,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Contact, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Contact, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateContactRequest,
) (*Contact, error) {
	return s.repo.Update(ctx, userID, id, req)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.CountByUser(ctx, userID)
}
