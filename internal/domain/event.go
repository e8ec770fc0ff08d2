package domain

import "time"

// Event is the aggregate for bookable events. Capacity is a hard ceiling
// on the sum of tickets across non-cancelled bookings.
type Event struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
	Capacity    int
	Price       float64
	CategoryID  string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
