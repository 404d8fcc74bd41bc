// AngelaMos | 2026
// dto.go

package dashboard

import (
	"github.com/connectvault/connectvault/internal/commission"
)

type SummaryResponse struct {
	TotalContacts     int                `json:"total_contacts"`
	TasksDueToday     int                `json:"tasks_due_today"`
	ActivePromoLinks  int                `json:"active_promo_links"`
	CommissionSummary commission.Summary `json:"commission_summary"`
}
