package domain

import "time"

// LeadStatus enumerates pipeline states for leads.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// ValidLeadStatus reports whether s is a known pipeline state.
func ValidLeadStatus(s LeadStatus) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// Lead is the aggregate for prospect records. Source is free text set by
// whichever acquisition tool created the lead ("LinkedIn", "CSV Import").
type Lead struct {
	ID           string
	Name         string
	Company      string
	Email        string
	Phone        string
	Address      string
	Website      string
	Status       LeadStatus
	Source       string
	Tags         []string
	Score        int
	Notes        string
	Verified     bool
	LastContact  *time.Time
	NextFollowUp *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
