package domain

import "time"

// SMTPConfigStatus enumerates sender config states.
type SMTPConfigStatus string

const (
	SMTPConfigActive   SMTPConfigStatus = "active"
	SMTPConfigInactive SMTPConfigStatus = "inactive"
)

// SMTPConfig holds an outbound mail account used by email campaigns.
type SMTPConfig struct {
	ID         string
	Name       string
	Provider   string
	Host       string
	Port       int
	Username   string
	Password   string
	DailyLimit int
	SentToday  int
	Status     SMTPConfigStatus
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
