// AngelaMos | 2026
// dto.go

package contact

import (
	"time"
)

type CreateContactRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=200"`
	Email    string `json:"email"    validate:"omitempty,email,max=255"`
	Platform string `json:"platform" validate:"max=100"`
	Notes    string `json:"notes"    validate:"max=2000"`
}

type UpdateContactRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email"    validate:"omitempty,email,max=255"`
	Platform *string `json:"platform" validate:"omitempty,max=100"`
	Notes    *string `json:"notes"    validate:"omitempty,max=2000"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Platform  string    `json:"platform"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

func ToContactResponse(c *Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Platform:  c.Platform,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func ToContactResponseList(contacts []Contact) []ContactResponse {
	responses := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		responses = append(responses, ToContactResponse(&c))
	}
	return responses
}
