// Package identity is the service of record for email/password credentials.
// It owns password hashes; the profile store never sees them. The Provider
// interface keeps the registration two-step (create identity, then profile)
// and its compensating delete testable against a stub.
package identity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("identity account not found")
	// ErrInvalidCredentials is returned for any authentication failure.
	// Callers must not distinguish it from an unknown email.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when creating an account for an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// Account is the identity record. Password hashes never leave the package.
type Account struct {
	ID            string
	Email         string
	EmailVerified bool
	CreatedAt     time.Time
}

// Provider creates, authenticates and deletes identity accounts.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string, emailVerified bool) (*Account, error)
	Authenticate(ctx context.Context, email, password string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	DeleteAccount(ctx context.Context, id string) error
}
