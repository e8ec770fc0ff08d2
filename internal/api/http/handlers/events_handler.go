package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventloop-labs/event-booking-service/internal/api/dto"
	"github.com/eventloop-labs/event-booking-service/internal/auth"
	"github.com/eventloop-labs/event-booking-service/internal/service"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

// EventsHandler serves the public event catalog and admin management.
type EventsHandler struct {
	events   *service.EventService
	bookings *service.BookingService
}

// NewEventsHandler constructs handler.
func NewEventsHandler(eventService *service.EventService, bookingService *service.BookingService) *EventsHandler {
	return &EventsHandler{events: eventService, bookings: bookingService}
}

// List handles GET /events.
func (h *EventsHandler) List(c *fiber.Ctx) error {
	events, err := h.events.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		items = append(items, dto.NewEventResponse(&events[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /events/:id.
func (h *EventsHandler) Get(c *fiber.Ctx) error {
	event, err := h.events.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// Create handles POST /events (admin).
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.CategoryID == "" || req.Date.IsZero() {
		return apperrors.NewValidationError("title, category_id, date required", nil)
	}

	event, err := h.events.Create(c.Context(), principal.User.ID, service.EventCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// Update handles PUT /events/:id (admin).
func (h *EventsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	event, err := h.events.Update(c.Context(), c.Params("id"), service.EventUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		Capacity:    req.Capacity,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewEventResponse(event)})
}

// Delete handles DELETE /events/:id (admin).
func (h *EventsHandler) Delete(c *fiber.Ctx) error {
	if err := h.events.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// ListBookings handles GET /events/:id/bookings (admin). Users are
// rendered through the public projection only.
func (h *EventsHandler) ListBookings(c *fiber.Ctx) error {
	joined, err := h.bookings.ListForEvent(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(joined))
	for i := range joined {
		items = append(items, dto.NewBookingResponse(&joined[i].Booking).WithUser(joined[i].User))
	}
	return c.JSON(fiber.Map{"data": items})
}
