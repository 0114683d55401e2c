package domain

import "time"

// IntentStatus tracks progress of the two-step registration saga.
type IntentStatus string

const (
	IntentPending   IntentStatus = "PENDING"
	IntentCompleted IntentStatus = "COMPLETED"
	IntentFailed    IntentStatus = "FAILED"
)

// SignupIntent is persisted before the identity record is created so a
// crash between identity creation and profile insert leaves a trail the
// reconciler can sweep instead of a permanently orphaned identity.
type SignupIntent struct {
	ID         string
	Email      string
	IdentityID *string
	Status     IntentStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
