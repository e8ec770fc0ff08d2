package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository returns a store-backed event repository.
func NewEventRepository(store *Store) repository.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(_ context.Context, event *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.store.events = append(r.store.events, *event)
	return nil
}

func (r *eventRepository) Update(_ context.Context, event *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.events {
		if r.store.events[i].ID == event.ID {
			event.CreatedAt = r.store.events[i].CreatedAt
			event.UpdatedAt = time.Now()
			r.store.events[i] = *event
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *eventRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.events {
		if r.store.events[i].ID == id {
			r.store.events = append(r.store.events[:i], r.store.events[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *eventRepository) GetByID(_ context.Context, id string) (*domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.events {
		if r.store.events[i].ID == id {
			event := r.store.events[i]
			return &event, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *eventRepository) List(_ context.Context) ([]domain.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Event, len(r.store.events))
	copy(result, r.store.events)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}
