package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eventloop-labs/event-booking-service/internal/api/dto"
	"github.com/eventloop-labs/event-booking-service/internal/auth"
	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/service"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

// BookingsHandler manages the caller's bookings.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookingService *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookingService}
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EventID == "" {
		return apperrors.NewValidationError("event_id required", nil)
	}

	booking, err := h.bookings.Create(c.Context(), principal.User.ID, req.EventID, req.NumberOfTickets)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// Cancel handles POST /bookings/:id/cancel. Customers may only cancel
// their own bookings; admins may cancel any.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	booking, err := h.bookings.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	if booking.UserID != principal.User.ID && principal.Role != domain.UserRoleAdmin {
		return apperrors.NewForbidden("cannot cancel another user's booking")
	}

	cancelled, err := h.bookings.Cancel(c.Context(), booking.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(cancelled)})
}

// List handles GET /bookings: the caller's bookings joined with events.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	joined, err := h.bookings.ListForUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	items := make([]dto.BookingResponse, 0, len(joined))
	for i := range joined {
		items = append(items, dto.NewBookingResponse(&joined[i].Booking).WithEvent(joined[i].Event))
	}
	return c.JSON(fiber.Map{"data": items})
}
