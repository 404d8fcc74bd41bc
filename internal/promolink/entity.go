// AngelaMos | 2026
// entity.go

package promolink

import (
	"time"
)

type PromoLink struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	OfferName    string    `db:"offer_name"`
	PromoLink    string    `db:"promo_link"`
	TrackingLink string    `db:"tracking_link"`
	CreatedAt    time.Time `db:"created_at"`
}
