package dto

import (
	"time"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// CreateBookingRequest payload for booking tickets.
type CreateBookingRequest struct {
	EventID         string `json:"event_id"`
	NumberOfTickets int    `json:"number_of_tickets"`
}

// BookingResponse is the public booking shape.
type BookingResponse struct {
	ID              string               `json:"id"`
	EventID         string               `json:"event_id"`
	UserID          string               `json:"user_id"`
	NumberOfTickets int                  `json:"number_of_tickets"`
	TotalAmount     float64              `json:"total_amount"`
	Status          domain.BookingStatus `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`

	// Event is set when joining a user's bookings; nil when the event
	// has been deleted. User is set when listing an event's bookings.
	Event *EventResponse `json:"event,omitempty"`
	User  *UserResponse  `json:"user,omitempty"`
}

// NewBookingResponse projects a domain booking.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              booking.ID,
		EventID:         booking.EventID,
		UserID:          booking.UserID,
		NumberOfTickets: booking.NumberOfTickets,
		TotalAmount:     booking.TotalAmount,
		Status:          booking.Status,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// WithEvent attaches the joined event.
func (r BookingResponse) WithEvent(event *domain.Event) BookingResponse {
	if event != nil {
		resp := NewEventResponse(event)
		r.Event = &resp
	}
	return r
}

// WithUser attaches the joined user through the public projection.
func (r BookingResponse) WithUser(user *domain.User) BookingResponse {
	if user != nil {
		resp := NewUserResponse(user)
		r.User = &resp
	}
	return r
}
