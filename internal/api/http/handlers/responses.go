package handlers

import (
	"github.com/leadsfynder/leadsfynder-api/internal/api/dto"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
)

func userResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		Company:         user.Company,
		Phone:           user.Phone,
		Role:            user.Role,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
	}
}

func leadResponse(lead *domain.Lead) dto.LeadResponse {
	tags := lead.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.LeadResponse{
		ID:           lead.ID,
		Name:         lead.Name,
		Company:      lead.Company,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Address:      lead.Address,
		Website:      lead.Website,
		Status:       lead.Status,
		Source:       lead.Source,
		Tags:         tags,
		Score:        lead.Score,
		Notes:        lead.Notes,
		Verified:     lead.Verified,
		LastContact:  lead.LastContact,
		NextFollowUp: lead.NextFollowUp,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	}
}

func emailCampaignResponse(c *domain.EmailCampaign) dto.EmailCampaignResponse {
	return dto.EmailCampaignResponse{
		ID:         c.ID,
		Name:       c.Name,
		Subject:    c.Subject,
		Template:   c.Template,
		Status:     c.Status,
		Recipients: c.Recipients,
		Sent:       c.Sent,
		Delivered:  c.Delivered,
		Opened:     c.Opened,
		Replied:    c.Replied,
		Bounced:    c.Bounced,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func whatsappCampaignResponse(c *domain.WhatsAppCampaign) dto.WhatsAppCampaignResponse {
	return dto.WhatsAppCampaignResponse{
		ID:         c.ID,
		Name:       c.Name,
		Message:    c.Message,
		Status:     c.Status,
		Recipients: c.Recipients,
		Sent:       c.Sent,
		Delivered:  c.Delivered,
		Read:       c.Read,
		Replied:    c.Replied,
		Failed:     c.Failed,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func smtpConfigResponse(cfg *domain.SMTPConfig) dto.SMTPConfigResponse {
	return dto.SMTPConfigResponse{
		ID:         cfg.ID,
		Name:       cfg.Name,
		Provider:   cfg.Provider,
		Host:       cfg.Host,
		Port:       cfg.Port,
		Username:   cfg.Username,
		DailyLimit: cfg.DailyLimit,
		SentToday:  cfg.SentToday,
		Status:     cfg.Status,
		LastUsedAt: cfg.LastUsedAt,
		CreatedAt:  cfg.CreatedAt,
	}
}

func activityResponse(a *domain.Activity) dto.ActivityResponse {
	return dto.ActivityResponse{
		ID:        a.ID,
		Type:      a.Type,
		Message:   a.Message,
		Status:    a.Status,
		Timestamp: a.CreatedAt,
	}
}
