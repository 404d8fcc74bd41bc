// AngelaMos | 2026
// service.go

package promolink

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
	req CreatePromoLinkRequest,
) (*PromoLink, error) {
	link := &PromoLink{
		ID:           uuid.New().String(),
		UserID:       userID,
		OfferName:    req.OfferName,
		PromoLink:    req.PromoLink,
		TrackingLink: req.TrackingLink,
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *Service) Get(
	ctx context.Context,
	userID, id string,
) (*PromoLink, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(
	ctx context.Context,
	userID string,
) ([]PromoLink, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdatePromoLinkRequest,
) (*PromoLink, error) {
	return s.repo.Update(ctx, userID, id, req)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	return s.repo.CountByUser(ctx, userID)
}
