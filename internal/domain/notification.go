package domain

import "time"

// NotificationType enumerates what a notification is about.
type NotificationType string

const (
	NotificationTypeBooking      NotificationType = "BOOKING"
	NotificationTypeCancellation NotificationType = "CANCELLATION"
	NotificationTypeUpdate       NotificationType = "UPDATE"
)

// Notification is addressed to a single user, typically the owner of an
// event that received a booking. RelatedID points at the booking or event
// that triggered it, when there is one.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Type      NotificationType
	IsRead    bool
	RelatedID *string
	CreatedAt time.Time
}
