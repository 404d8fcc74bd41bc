// AngelaMos | 2026
// entity.go

package commission

import (
	"time"
)

type Commission struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	ProgramName  string     `db:"program_name"`
	Amount       float64    `db:"amount"`
	Status       string     `db:"status"`
	ExpectedDate *time.Time `db:"expected_date"`
	PaidDate     *time.Time `db:"paid_date"`
	PromoLinkID  *string    `db:"promo_link_id"`
	Notes        string     `db:"notes"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusUnpaid  = "unpaid"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusPaid, StatusUnpaid:
		return true
	default:
		return false
	}
}

// Summary buckets commission amounts by status. Absent statuses report 0.
type Summary struct {
	TotalPaid    float64 `db:"total_paid"    json:"total_paid"`
	TotalUnpaid  float64 `db:"total_unpaid"  json:"total_unpaid"`
	TotalPending float64 `db:"total_pending" json:"total_pending"`
}
