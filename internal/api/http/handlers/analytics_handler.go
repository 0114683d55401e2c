package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/leadsfynder/leadsfynder-api/internal/api/dto"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
)

// AnalyticsHandler serves dashboard metrics and the activity feed.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: analyticsService}
}

// Dashboard handles GET /api/analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Activity handles GET /api/analytics/activity.
func (h *AnalyticsHandler) Activity(c *fiber.Ctx) error {
	activities, err := h.service.RecentActivity(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.ActivityResponse, 0, len(activities))
	for i := range activities {
		items = append(items, activityResponse(&activities[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}
