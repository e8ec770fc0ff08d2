package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/events"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

// NotificationService persists notifications for domain events and
// serves per-user notification reads.
type NotificationService struct {
	notifications repository.NotificationRepository
	dispatcher    events.Dispatcher
	logger        *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingCancelled, n.handleBookingCancelled)
	n.dispatcher.Subscribe(events.EventEventUpdated, n.handleEventUpdated)
}

// ListForUser returns the user's notifications, newest first.
func (n *NotificationService) ListForUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return n.notifications.ListByUser(ctx, userID)
}

// Get returns one notification.
func (n *NotificationService) Get(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := n.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("notification", map[string]any{"notification_id": id})
		}
		return nil, err
	}
	return notification, nil
}

// MarkRead flips a single notification to read.
func (n *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	notification, err := n.notifications.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("notification", map[string]any{"notification_id": id})
		}
		return nil, err
	}
	return notification, nil
}

// MarkAllRead flips every notification for the user; an empty match set
// is a successful no-op.
func (n *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return n.notifications.MarkAllRead(ctx, userID)
}

func (n *NotificationService) handleBookingCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BookingCreatedPayload)
	if !ok {
		return nil
	}
	relatedID := payload.BookingID
	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    payload.OwnerID,
		Message:   fmt.Sprintf("New booking for event %q", payload.EventTitle),
		Type:      domain.NotificationTypeBooking,
		RelatedID: &relatedID,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("persist booking notification", zap.Error(err), zap.String("booking_id", payload.BookingID))
		return err
	}
	n.logger.Info("BookingCreated", zap.String("booking_id", payload.BookingID), zap.String("event_id", payload.EventID))
	return nil
}

func (n *NotificationService) handleBookingCancelled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BookingCancelledPayload)
	if !ok {
		return nil
	}
	relatedID := payload.BookingID
	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    payload.OwnerID,
		Message:   fmt.Sprintf("Booking cancelled for event %q", payload.EventTitle),
		Type:      domain.NotificationTypeCancellation,
		RelatedID: &relatedID,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("persist cancellation notification", zap.Error(err), zap.String("booking_id", payload.BookingID))
		return err
	}
	n.logger.Info("BookingCancelled", zap.String("booking_id", payload.BookingID), zap.String("event_id", payload.EventID))
	return nil
}

func (n *NotificationService) handleEventUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EventUpdatedPayload)
	if !ok {
		return nil
	}
	relatedID := payload.EventID
	for _, recipientID := range payload.RecipientIDs {
		notification := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    recipientID,
			Message:   fmt.Sprintf("Event %q has been updated", payload.EventTitle),
			Type:      domain.NotificationTypeUpdate,
			RelatedID: &relatedID,
		}
		if err := n.notifications.Create(ctx, notification); err != nil {
			n.logger.Error("persist update notification", zap.Error(err), zap.String("event_id", payload.EventID))
			return err
		}
	}
	n.logger.Info("EventUpdated", zap.String("event_id", payload.EventID), zap.Int("recipients", len(payload.RecipientIDs)))
	return nil
}
