// AngelaMos | 2026
// service.go

package commission

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

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
	req CreateCommissionRequest,
) (*Commission, error) {
	status := req.Status
	if status == "" {
		status = StatusPending
	}

	commission := &Commission{
		ID:           uuid.New().String(),
		UserID:       userID,
		ProgramName:  req.ProgramName,
		Amount:       req.Amount,
		Status:       status,
		ExpectedDate: req.ExpectedDate,
		PaidDate:     req.PaidDate,
		PromoLinkID:  req.PromoLinkID,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, commission); err != nil {
		return nil, err
	}

	return commission, nil
}

func (s *Service) Get(
	ctx context.Context,
	userID, id string,
) (*Commission, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(
	ctx context.Context,
	userID string,
) ([]Commission, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateCommissionRequest,
) (*Commission, error) {
	return s.repo.Update(ctx, userID, id, req)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) Aggregate(
	ctx context.Context,
	userID string,
) (*Summary, error) {
	return s.repo.Aggregate(ctx, userID)
}

// ExportCSV renders the caller's commissions as a CSV document, newest
// first, matching the list ordering.
func (s *Service) ExportCSV(ctx context.Context, userID string) (string, error) {
	commissions, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"id", "program_name", "amount", "status",
		"expected_date", "paid_date", "notes", "created_at",
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range commissions {
		record := []string{
			c.ID,
			c.ProgramName,
			strconv.FormatFloat(c.Amount, 'f', 2, 64),
			c.Status,
			formatDate(c.ExpectedDate),
			formatDate(c.PaidDate),
			c.Notes,
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write csv record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}

	return sb.String(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
