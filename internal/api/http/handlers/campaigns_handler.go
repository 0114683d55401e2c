package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/api/dto"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// CampaignsHandler manages campaign and SMTP config endpoints.
type CampaignsHandler struct {
	service *service.CampaignService
}

// NewCampaignsHandler constructs the handler.
func NewCampaignsHandler(campaignService *service.CampaignService) *CampaignsHandler {
	return &CampaignsHandler{service: campaignService}
}

// ListEmail handles GET /api/campaigns/email.
func (h *CampaignsHandler) ListEmail(c *fiber.Ctx) error {
	limit := queryInt(c, "limit", 50)
	offset := (queryInt(c, "page", 1) - 1) * limit
	if offset < 0 {
		offset = 0
	}

	campaigns, err := h.service.ListEmailCampaigns(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.EmailCampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, emailCampaignResponse(&campaigns[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// CreateEmail handles POST /api/campaigns/email.
func (h *CampaignsHandler) CreateEmail(c *fiber.Ctx) error {
	var req dto.EmailCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	campaign := &domain.EmailCampaign{
		Name:       req.Name,
		Subject:    req.Subject,
		Template:   req.Template,
		Recipients: req.Recipients,
	}
	if err := h.service.CreateEmailCampaign(c.Context(), campaign); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    emailCampaignResponse(campaign),
	})
}

// UpdateEmail handles PUT /api/campaigns/email/:id.
func (h *CampaignsHandler) UpdateEmail(c *fiber.Ctx) error {
	var req dto.EmailCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	existing, err := h.service.GetEmailCampaign(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	campaign := *existing
	if req.Name != "" {
		campaign.Name = req.Name
	}
	if req.Subject != "" {
		campaign.Subject = req.Subject
	}
	if req.Template != "" {
		campaign.Template = req.Template
	}
	if req.Status != "" {
		campaign.Status = domain.CampaignStatus(req.Status)
	}
	if req.Recipients != 0 {
		campaign.Recipients = req.Recipients
	}

	if err := h.service.UpdateEmailCampaign(c.Context(), &campaign); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": emailCampaignResponse(&campaign)})
}

// ListWhatsApp handles GET /api/campaigns/whatsapp.
func (h *CampaignsHandler) ListWhatsApp(c *fiber.Ctx) error {
	limit := queryInt(c, "limit", 50)
	offset := (queryInt(c, "page", 1) - 1) * limit
	if offset < 0 {
		offset = 0
	}

	campaigns, err := h.service.ListWhatsAppCampaigns(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	items := make([]dto.WhatsAppCampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, whatsappCampaignResponse(&campaigns[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// CreateWhatsApp handles POST /api/campaigns/whatsapp.
func (h *CampaignsHandler) CreateWhatsApp(c *fiber.Ctx) error {
	var req dto.WhatsAppCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	campaign := &domain.WhatsAppCampaign{
		Name:       req.Name,
		Message:    req.Message,
		Recipients: req.Recipients,
	}
	if err := h.service.CreateWhatsAppCampaign(c.Context(), campaign); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    whatsappCampaignResponse(campaign),
	})
}

// ListSMTP handles GET /api/campaigns/smtp.
func (h *CampaignsHandler) ListSMTP(c *fiber.Ctx) error {
	configs, err := h.service.ListSMTPConfigs(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.SMTPConfigResponse, 0, len(configs))
	for i := range configs {
		items = append(items, smtpConfigResponse(&configs[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// CreateSMTP handles POST /api/campaigns/smtp.
func (h *CampaignsHandler) CreateSMTP(c *fiber.Ctx) error {
	var req dto.SMTPConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	cfg := &domain.SMTPConfig{
		Name:       req.Name,
		Provider:   req.Provider,
		Host:       req.Host,
		Port:       req.Port,
		Username:   req.Username,
		Password:   req.Password,
		DailyLimit: req.DailyLimit,
	}
	if err := h.service.CreateSMTPConfig(c.Context(), cfg); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    smtpConfigResponse(cfg),
	})
}

// VerifySMTP handles POST /api/campaigns/smtp/:id/verify.
func (h *CampaignsHandler) VerifySMTP(c *fiber.Ctx) error {
	cfg, err := h.service.VerifySMTPConfig(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "SMTP connection verified",
		"data":    smtpConfigResponse(cfg),
	})
}
