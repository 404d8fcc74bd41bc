// AngelaMos | 2026
// dto.go

package commission

import (
	"time"
)

type CreateCommissionRequest struct {
	ProgramName  string     `json:"program_name"  validate:"required,min=1,max=200"`
	Amount       float64    `json:"amount"        validate:"gte=0"`
	Status       string     `json:"status"        validate:"omitempty,oneof=pending paid unpaid"`
	ExpectedDate *time.Time `json:"expected_date"`
	PaidDate     *time.Time `json:"paid_date"`
	PromoLinkID  *string    `json:"promo_link_id"`
	Notes        string     `json:"notes"         validate:"max=2000"`
}

// UpdateCommissionRequest patches individual fields. A nil pointer, whether
// the field was absent or an explicit JSON null, leaves the stored value
// untouched; there is no way to clear a field through this request.
type UpdateCommissionRequest struct {
	ProgramName  *string    `json:"program_name"  validate:"omitempty,min=1,max=200"`
	Amount       *float64   `json:"amount"        validate:"omitempty,gte=0"`
	Status       *string    `json:"status"        validate:"omitempty,oneof=pending paid unpaid"`
	ExpectedDate *time.Time `json:"expected_date"`
	PaidDate     *time.Time `json:"paid_date"`
	PromoLinkID  *string    `json:"promo_link_id"`
	Notes        *string    `json:"notes"         validate:"omitempty,max=2000"`
}

func (r *UpdateCommissionRequest) IsEmpty() bool {
	return r.ProgramName == nil &&
		r.Amount == nil &&
		r.Status == nil &&
		r.ExpectedDate == nil &&
		r.PaidDate == nil &&
		r.PromoLinkID == nil &&
		r.Notes == nil
}

type CommissionResponse struct {
	ID           string     `json:"id"`
	ProgramName  string     `json:"program_name"`
	Amount       float64    `json:"amount"`
	Status       string     `json:"status"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	PaidDate     *time.Time `json:"paid_date,omitempty"`
	PromoLinkID  *string    `json:"promo_link_id,omitempty"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type CommissionListResponse struct {
	Commissions []CommissionResponse `json:"commissions"`
}

type CSVExportResponse struct {
	CSVData string `json:"csv_data"`
}

func ToCommissionResponse(c *Commission) CommissionResponse {
	return CommissionResponse{
		ID:           c.ID,
		ProgramName:  c.ProgramName,
		Amount:       c.Amount,
		Status:       c.Status,
		ExpectedDate: c.ExpectedDate,
		PaidDate:     c.PaidDate,
		PromoLinkID:  c.PromoLinkID,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToCommissionResponseList(commissions []Commission) []CommissionResponse {
	responses := make([]CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		responses = append(responses, ToCommissionResponse(&c))
	}
	return responses
}
