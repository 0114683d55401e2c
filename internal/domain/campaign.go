package domain

import "time"

// CampaignStatus enumerates lifecycle states shared by both channels.
// Status is set by handlers; no state machine is enforced.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusScheduled CampaignStatus = "scheduled"
	CampaignStatusSending   CampaignStatus = "sending"
	CampaignStatusSent      CampaignStatus = "sent"
	CampaignStatusPaused    CampaignStatus = "paused"
)

// ValidCampaignStatus reports whether s is a known lifecycle state.
func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSending,
		CampaignStatusSent, CampaignStatusPaused:
		return true
	}
	return false
}

// EmailCampaign tracks an email outreach batch and its delivery counters.
type EmailCampaign struct {
	ID         string
	Name       string
	Subject    string
	Template   string
	Status     CampaignStatus
	Recipients int
	Sent       int
	Delivered  int
	Opened     int
	Replied    int
	Bounced    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WhatsAppCampaign tracks a messaging outreach batch.
type WhatsAppCampaign struct {
	ID         string
	Name       string
	Message    string
	Status     CampaignStatus
	Recipients int
	Sent       int
	Delivered  int
	Read       int
	Replied    int
	Failed     int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
