package events

import (
	"time"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingCreated   EventType = "booking_created"
	EventBookingCancelled EventType = "booking_cancelled"
	EventEventUpdated     EventType = "event_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID       string  `json:"booking_id"`
	EventID         string  `json:"event_id"`
	EventTitle      string  `json:"event_title"`
	OwnerID         string  `json:"owner_id"`
	NumberOfTickets int     `json:"number_of_tickets"`
	TotalAmount     float64 `json:"total_amount"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	BookingID  string `json:"booking_id"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	OwnerID    string `json:"owner_id"`
}

// EventUpdatedPayload payload. RecipientIDs are users holding active
// bookings on the updated event.
type EventUpdatedPayload struct {
	EventID      string   `json:"event_id"`
	EventTitle   string   `json:"event_title"`
	RecipientIDs []string `json:"recipient_ids"`
}
