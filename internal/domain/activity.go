package domain

import "time"

// ActivityType tags entries on the dashboard activity feed.
type ActivityType string

const (
	ActivityLeadAdded       ActivityType = "lead_added"
	ActivityLeadUpdated     ActivityType = "lead_updated"
	ActivityLeadDeleted     ActivityType = "lead_deleted"
	ActivityCampaignCreated ActivityType = "campaign_created"
)

// ActivityStatus drives the feed's visual state.
type ActivityStatus string

const (
	ActivityStatusSuccess ActivityStatus = "success"
	ActivityStatusWarning ActivityStatus = "warning"
	ActivityStatusError   ActivityStatus = "error"
)

// Activity is one row on the recent-activity feed.
type Activity struct {
	ID        string
	Type      ActivityType
	Message   string
	Status    ActivityStatus
	CreatedAt time.Time
}
