package domain

import "time"

// UserRole enumerates access levels for profiles.
type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleAdmin      UserRole = "ADMIN"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
)

// User is the application-level profile keyed by identity id. Credentials
// live with the identity provider, never here.
type User struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Company         string
	Phone           string
	Role            UserRole
	IsActive        bool
	IsEmailVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
