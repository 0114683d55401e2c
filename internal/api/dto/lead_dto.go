package dto

import (
	"time"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// LeadRequest is the create/update payload.
type LeadRequest struct {
	Name         string     `json:"name"`
	Company      string     `json:"company"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Website      string     `json:"website"`
	Status       string     `json:"status"`
	Source       string     `json:"source"`
	Tags         []string   `json:"tags"`
	Score        int        `json:"score"`
	Notes        string     `json:"notes"`
	Verified     bool       `json:"verified"`
	LastContact  *time.Time `json:"lastContact"`
	NextFollowUp *time.Time `json:"nextFollowUp"`
}

// LeadResponse is the lead shape returned by the API.
type LeadResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Company      string            `json:"company,omitempty"`
	Email        string            `json:"email,omitempty"`
	Phone        string            `json:"phone,omitempty"`
	Address      string            `json:"address,omitempty"`
	Website      string            `json:"website,omitempty"`
	Status       domain.LeadStatus `json:"status"`
	Source       string            `json:"source,omitempty"`
	Tags         []string          `json:"tags"`
	Score        int               `json:"score"`
	Notes        string            `json:"notes,omitempty"`
	Verified     bool              `json:"verified"`
	LastContact  *time.Time        `json:"lastContact,omitempty"`
	NextFollowUp *time.Time        `json:"nextFollowUp,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
