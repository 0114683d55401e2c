package events

import (
	"time"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadCreated             EventType = "lead_created"
	EventLeadUpdated             EventType = "lead_updated"
	EventLeadDeleted             EventType = "lead_deleted"
	EventEmailCampaignCreated    EventType = "email_campaign_created"
	EventWhatsAppCampaignCreated EventType = "whatsapp_campaign_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadPayload carries lead identity for lead events.
type LeadPayload struct {
	LeadID  string            `json:"lead_id"`
	Name    string            `json:"name"`
	Company string            `json:"company"`
	Status  domain.LeadStatus `json:"status"`
	Source  string            `json:"source"`
}

// CampaignPayload carries campaign identity for campaign events.
type CampaignPayload struct {
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Channel    string `json:"channel"`
}
