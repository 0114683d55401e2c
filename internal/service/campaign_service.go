package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/events"
	"github.com/leadsfynder/leadsfynder-api/internal/mail"
	"github.com/leadsfynder/leadsfynder-api/internal/observability"
	"github.com/leadsfynder/leadsfynder-api/internal/repository"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// CampaignService manages email/WhatsApp campaigns and SMTP sender configs.
type CampaignService struct {
	email      repository.EmailCampaignRepository
	whatsapp   repository.WhatsAppCampaignRepository
	smtp       repository.SMTPConfigRepository
	verifier   mail.Verifier
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// CampaignDependencies bundles repositories for the campaign service.
type CampaignDependencies struct {
	EmailRepo    repository.EmailCampaignRepository
	WhatsAppRepo repository.WhatsAppCampaignRepository
	SMTPRepo     repository.SMTPConfigRepository
	Verifier     mail.Verifier
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewCampaignService constructs the service.
func NewCampaignService(deps CampaignDependencies) *CampaignService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{
		email:      deps.EmailRepo,
		whatsapp:   deps.WhatsAppRepo,
		smtp:       deps.SMTPRepo,
		verifier:   deps.Verifier,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// ListEmailCampaigns returns email campaigns, newest first.
func (s *CampaignService) ListEmailCampaigns(ctx context.Context, limit, offset int) ([]domain.EmailCampaign, error) {
	return s.email.List(ctx, limit, offset)
}

// CreateEmailCampaign persists a new campaign. Status is always draft and
// every delivery counter starts at zero regardless of the payload.
func (s *CampaignService) CreateEmailCampaign(ctx context.Context, campaign *domain.EmailCampaign) error {
	if campaign.Name == "" || campaign.Subject == "" {
		return apperrors.NewValidationError("Campaign name and subject are required", nil)
	}
	campaign.Status = domain.CampaignStatusDraft
	campaign.Sent = 0
	campaign.Delivered = 0
	campaign.Opened = 0
	campaign.Replied = 0
	campaign.Bounced = 0

	if err := s.email.Create(ctx, campaign); err != nil {
		return err
	}
	observability.RecordCampaignCreated("email")
	s.publishCampaign(ctx, events.EventEmailCampaignCreated, campaign.ID, campaign.Name, "email")
	return nil
}

// UpdateEmailCampaign applies changes to an existing campaign.
func (s *CampaignService) UpdateEmailCampaign(ctx context.Context, campaign *domain.EmailCampaign) error {
	if !domain.ValidCampaignStatus(campaign.Status) {
		return apperrors.NewValidationError("Invalid campaign status", nil)
	}
	if err := s.email.Update(ctx, campaign); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Campaign")
		}
		return err
	}
	return nil
}

// GetEmailCampaign fetches one campaign.
func (s *CampaignService) GetEmailCampaign(ctx context.Context, id string) (*domain.EmailCampaign, error) {
	campaign, err := s.email.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Campaign")
		}
		return nil, err
	}
	return campaign, nil
}

// ListWhatsAppCampaigns returns WhatsApp campaigns, newest first.
func (s *CampaignService) ListWhatsAppCampaigns(ctx context.Context, limit, offset int) ([]domain.WhatsAppCampaign, error) {
	return s.whatsapp.List(ctx, limit, offset)
}

// CreateWhatsAppCampaign persists a new campaign with draft status and
// zeroed counters.
func (s *CampaignService) CreateWhatsAppCampaign(ctx context.Context, campaign *domain.WhatsAppCampaign) error {
	if campaign.Name == "" || campaign.Message == "" {
		return apperrors.NewValidationError("Campaign name and message are required", nil)
	}
	campaign.Status = domain.CampaignStatusDraft
	campaign.Sent = 0
	campaign.Delivered = 0
	campaign.Read = 0
	campaign.Replied = 0
	campaign.Failed = 0

	if err := s.whatsapp.Create(ctx, campaign); err != nil {
		return err
	}
	observability.RecordCampaignCreated("whatsapp")
	s.publishCampaign(ctx, events.EventWhatsAppCampaignCreated, campaign.ID, campaign.Name, "whatsapp")
	return nil
}

// ListSMTPConfigs returns all sender configs.
func (s *CampaignService) ListSMTPConfigs(ctx context.Context) ([]domain.SMTPConfig, error) {
	return s.smtp.List(ctx)
}

// CreateSMTPConfig persists a sender config.
func (s *CampaignService) CreateSMTPConfig(ctx context.Context, cfg *domain.SMTPConfig) error {
	if cfg.Name == "" || cfg.Host == "" {
		return apperrors.NewValidationError("Config name and host are required", nil)
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Status == "" {
		cfg.Status = domain.SMTPConfigInactive
	}
	return s.smtp.Create(ctx, cfg)
}

// VerifySMTPConfig dials the configured SMTP server. Success activates the
// config and stamps last_used_at; failure deactivates it.
func (s *CampaignService) VerifySMTPConfig(ctx context.Context, id string) (*domain.SMTPConfig, error) {
	cfg, err := s.smtp.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("SMTP config")
		}
		return nil, err
	}

	if err := s.verifier.Verify(cfg.Host, cfg.Port, cfg.Username, cfg.Password); err != nil {
		cfg.Status = domain.SMTPConfigInactive
		if updateErr := s.smtp.Update(ctx, cfg); updateErr != nil {
			s.logger.Warn("failed to deactivate smtp config after verify failure",
				zap.String("config_id", cfg.ID), zap.Error(updateErr))
		}
		return nil, apperrors.NewBadUpstream("SMTP connection failed", err)
	}

	now := time.Now()
	cfg.Status = domain.SMTPConfigActive
	cfg.LastUsedAt = &now
	if err := s.smtp.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *CampaignService) publishCampaign(ctx context.Context, eventType events.EventType, id, name, channel string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.CampaignPayload{
			CampaignID: id,
			Name:       name,
			Channel:    channel,
		},
	})
}
