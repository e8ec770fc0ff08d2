package dto

import (
	"time"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
)

// NotificationResponse is the public notification shape.
type NotificationResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Message   string                  `json:"message"`
	Type      domain.NotificationType `json:"type"`
	IsRead    bool                    `json:"is_read"`
	RelatedID *string                 `json:"related_id,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
}

// NewNotificationResponse projects a domain notification.
func NewNotificationResponse(notification *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Message:   notification.Message,
		Type:      notification.Type,
		IsRead:    notification.IsRead,
		RelatedID: notification.RelatedID,
		CreatedAt: notification.CreatedAt,
	}
}
