// AngelaMos | 2026
// service.go

package task

import (
	"context"
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
	req CreateTaskRequest,
) (*Task, error) {
	status := req.Status
	if status == "" {
		status = StatusPending
	}

	task := &Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		ContactID:   req.ContactID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (*Task, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID string) ([]Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Update(
	ctx context.Context,
	userID, id string,
	req UpdateTaskRequest,
) (*Task, error) {
	return s.repo.Update(ctx, userID, id, req)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// CountDueToday counts open tasks due in the UTC day containing now.
func (s *Service) CountDueToday(
	ctx context.Context,
	userID string,
	now time.Time,
) (int, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	return s.repo.CountDueBetween(ctx, userID, today, tomorrow)
}
