package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
)

type notificationRepository struct {
	store *Store
}

// NewNotificationRepository returns a store-backed notification repository.
func NewNotificationRepository(store *Store) repository.NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) Create(_ context.Context, notification *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	r.store.notifications = append(r.store.notifications, *notification)
	return nil
}

func (r *notificationRepository) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			notification := r.store.notifications[i]
			return &notification, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *notificationRepository) ListByUser(_ context.Context, userID string) ([]domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// Newest first; insertion order breaks createdAt ties.
	result := make([]domain.Notification, 0)
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		if r.store.notifications[i].UserID == userID {
			result = append(result, r.store.notifications[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *notificationRepository) MarkRead(_ context.Context, id string) (*domain.Notification, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].ID == id {
			r.store.notifications[i].IsRead = true
			notification := r.store.notifications[i]
			return &notification, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *notificationRepository) MarkAllRead(_ context.Context, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.notifications {
		if r.store.notifications[i].UserID == userID {
			r.store.notifications[i].IsRead = true
		}
	}
	return nil
}
