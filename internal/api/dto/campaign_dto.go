package dto

import (
	"time"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// EmailCampaignRequest is the create/update payload.
type EmailCampaignRequest struct {
	Name       string `json:"name"`
	Subject    string `json:"subject"`
	Template   string `json:"template"`
	Status     string `json:"status"`
	Recipients int    `json:"recipients"`
	Sent       int    `json:"sent"`
	Delivered  int    `json:"delivered"`
	Opened     int    `json:"opened"`
	Replied    int    `json:"replied"`
	Bounced    int    `json:"bounced"`
}

// EmailCampaignResponse is the email campaign API shape.
type EmailCampaignResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Subject    string                `json:"subject"`
	Template   string                `json:"template,omitempty"`
	Status     domain.CampaignStatus `json:"status"`
	Recipients int                   `json:"recipients"`
	Sent       int                   `json:"sent"`
	Delivered  int                   `json:"delivered"`
	Opened     int                   `json:"opened"`
	Replied    int                   `json:"replied"`
	Bounced    int                   `json:"bounced"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// WhatsAppCampaignRequest is the create payload.
type WhatsAppCampaignRequest struct {
	Name       string `json:"name"`
	Message    string `json:"message"`
	Recipients int    `json:"recipients"`
}

// WhatsAppCampaignResponse is the WhatsApp campaign API shape.
type WhatsAppCampaignResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Message    string                `json:"message"`
	Status     domain.CampaignStatus `json:"status"`
	Recipients int                   `json:"recipients"`
	Sent       int                   `json:"sent"`
	Delivered  int                   `json:"delivered"`
	Read       int                   `json:"read"`
	Replied    int                   `json:"replied"`
	Failed     int                   `json:"failed"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// SMTPConfigRequest is the create payload.
type SMTPConfigRequest struct {
	Name       string `json:"name"`
	Provider   string `json:"provider"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	DailyLimit int    `json:"dailyLimit"`
}

// SMTPConfigResponse is the config API shape. The password never leaves
// the server.
type SMTPConfigResponse struct {
	ID         string                  `json:"id"`
	Name       string                  `json:"name"`
	Provider   string                  `json:"provider,omitempty"`
	Host       string                  `json:"host"`
	Port       int                     `json:"port"`
	Username   string                  `json:"username,omitempty"`
	DailyLimit int                     `json:"dailyLimit"`
	SentToday  int                     `json:"sentToday"`
	Status     domain.SMTPConfigStatus `json:"status"`
	LastUsedAt *time.Time              `json:"lastUsedAt,omitempty"`
	CreatedAt  time.Time               `json:"createdAt"`
}

// ActivityResponse is one activity feed entry.
type ActivityResponse struct {
	ID        string                `json:"id"`
	Type      domain.ActivityType   `json:"type"`
	Message   string                `json:"message"`
	Status    domain.ActivityStatus `json:"status"`
	Timestamp time.Time             `json:"timestamp"`
}
