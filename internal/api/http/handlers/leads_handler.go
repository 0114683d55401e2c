package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/api/dto"
	"github.com/leadsfynder/leadsfynder-api/internal/domain"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// LeadsHandler manages lead CRUD endpoints.
type LeadsHandler struct {
	service *service.LeadService
}

// NewLeadsHandler constructs the handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{service: leadService}
}

// List handles GET /api/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	query := service.LeadListQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Source: c.Query("source"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 50),
	}

	leads, pagination, err := h.service.List(c.Context(), query)
	if err != nil {
		return err
	}

	items := make([]dto.LeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, leadResponse(&leads[i]))
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       items,
		"pagination": pagination,
	})
}

// Get handles GET /api/leads/:id.
func (h *LeadsHandler) Get(c *fiber.Ctx) error {
	lead, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": leadResponse(lead)})
}

// Create handles POST /api/leads.
func (h *LeadsHandler) Create(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	lead := leadFromRequest(&req)
	if err := h.service.Create(c.Context(), lead); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    leadResponse(lead),
	})
}

// Update handles PUT /api/leads/:id.
func (h *LeadsHandler) Update(c *fiber.Ctx) error {
	var req dto.LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Invalid payload", nil)
	}

	existing, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	lead := leadFromRequest(&req)
	lead.ID = existing.ID
	if lead.Status == "" {
		lead.Status = existing.Status
	}
	if err := h.service.Update(c.Context(), lead); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": leadResponse(lead)})
}

// Delete handles DELETE /api/leads/:id.
func (h *LeadsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Lead deleted successfully",
	})
}

func leadFromRequest(req *dto.LeadRequest) *domain.Lead {
	return &domain.Lead{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Website:      req.Website,
		Status:       domain.LeadStatus(req.Status),
		Source:       req.Source,
		Tags:         req.Tags,
		Score:        req.Score,
		Notes:        req.Notes,
		Verified:     req.Verified,
		LastContact:  req.LastContact,
		NextFollowUp: req.NextFollowUp,
	}
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
