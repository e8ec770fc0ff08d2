package domain

import "time"

// BookingStatus enumerates booking lifecycle states.
type BookingStatus string

const (
	// BookingStatusPending is reserved for a future reservation-hold flow;
	// no current operation produces it.
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking records a ticket purchase against an event. Bookings are never
// hard-deleted; cancellation is terminal.
type Booking struct {
	ID              string
	EventID         string
	UserID          string
	NumberOfTickets int
	TotalAmount     float64
	Status          BookingStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Active reports whether the booking counts against event capacity.
func (b *Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}
