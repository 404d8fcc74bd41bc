// AngelaMos | 2026
// dto.go

package promolink

import (
	"time"
)

type CreatePromoLinkRequest struct {
	OfferName    string `json:"offer_name"    validate:"required,min=1,max=200"`
	PromoLink    string `json:"promo_link"    validate:"required,url,max=2000"`
	TrackingLink string `json:"tracking_link" validate:"omitempty,url,max=2000"`
}

type UpdatePromoLinkRequest struct {
	OfferName    *string `json:"offer_name"    validate:"omitempty,min=1,max=200"`
	PromoLink    *string `json:"promo_link"    validate:"omitempty,url,max=2000"`
	TrackingLink *string `json:"tracking_link" validate:"omitempty,url,max=2000"`
}

type PromoLinkResponse struct {
	ID           string    `json:"id"`
	OfferName    string    `json:"offer_name"`
	PromoLink    string    `json:"promo_link"`
	TrackingLink string    `json:"tracking_link"`
	CreatedAt    time.Time `json:"created_at"`
}

type PromoLinkListResponse struct {
	PromoLinks []PromoLinkResponse `json:"promo_links"`
}

func ToPromoLinkResponse(p *PromoLink) PromoLinkResponse {
	return PromoLinkResponse{
		ID:           p.ID,
		OfferName:    p.OfferName,
		PromoLink:    p.PromoLink,
		TrackingLink: p.TrackingLink,
		CreatedAt:    p.CreatedAt,
	}
}

func ToPromoLinkResponseList(links []PromoLink) []PromoLinkResponse {
	responses := make([]PromoLinkResponse, 0, len(links))
	for _, p := range links {
		responses = append(responses, ToPromoLinkResponse(&p))
	}
	return responses
}
