// AngelaMos | 2026
// service.go

package dashboard

import (
	"context"
	"time"

	"github.com/connectvault/connectvault/internal/commission"
)

// ContactCounter reports how many contacts a user owns.
type ContactCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

// TaskCounter reports how many open tasks are due on the current UTC day.
type TaskCounter interface {
	CountDueToday(ctx context.Context, userID string, now time.Time) (int, error)
}

// PromoLinkCounter reports how many promo links a user owns.
type PromoLinkCounter interface {
	Count(ctx context.Context, userID string) (int, error)
}

// CommissionAggregator buckets commission totals by status.
type CommissionAggregator interface {
	Aggregate(ctx context.Context, userID string) (*commission.Summary, error)
}

type Service struct {
	contacts    ContactCounter
	tasks       TaskCounter
	promoLinks  PromoLinkCounter
	commissions CommissionAggregator
	now         func() time.Time
}

func NewService(
	contacts ContactCounter,
	tasks TaskCounter,
	promoLinks PromoLinkCounter,
	commissions CommissionAggregator,
) *Service {
	return &Service{
		contacts:    contacts,
		tasks:       tasks,
		promoLinks:  promoLinks,
		commissions: commissions,
		now:         time.Now,
	}
}

// Summary composes the per-user overview. Each collaborator is queried
// independently; any failure aborts the whole summary.
func (s *Service) Summary(
	ctx context.Context,
	userID string,
) (*SummaryResponse, error) {
	totalContacts, err := s.contacts.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasksDueToday, err := s.tasks.CountDueToday(ctx, userID, s.now())
	if err != nil {
		return nil, err
	}

	activePromoLinks, err := s.promoLinks.Count(ctx, userID)
	if err != nil {
		return nil, err
	}

	commissionSummary, err := s.commissions.Aggregate(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &SummaryResponse{
		TotalContacts:     totalContacts,
		TasksDueToday:     tasksDueToday,
		ActivePromoLinks:  activePromoLinks,
		CommissionSummary: *commissionSummary,
	}, nil
}
