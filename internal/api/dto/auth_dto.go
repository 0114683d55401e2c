package dto

import (
	"time"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// RegisterRequest payload for new users. Field names match the frontend.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the profile shape returned by auth endpoints.
type UserResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Company         string          `json:"company,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Role            domain.UserRole `json:"role"`
	IsActive        bool            `json:"isActive"`
	IsEmailVerified bool            `json:"isEmailVerified"`
	CreatedAt       time.Time       `json:"createdAt"`
}
