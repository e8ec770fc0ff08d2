package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/eventloop-labs/event-booking-service/internal/api/dto"
	"github.com/eventloop-labs/event-booking-service/internal/service"
)

// AnalyticsHandler serves the admin dashboard timeline.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs handler.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analyticsService}
}

// Timeline handles GET /admin/analytics?timeframe=week|month|year.
func (h *AnalyticsHandler) Timeline(c *fiber.Ctx) error {
	timeframe := service.Timeframe(c.Query("timeframe", string(service.TimeframeMonth)))
	buckets, err := h.analytics.Timeline(c.Context(), timeframe, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTimelineResponse(buckets)})
}
