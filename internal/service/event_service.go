package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/events"
	"github.com/eventloop-labs/event-booking-service/internal/persistence"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

const (
	eventListCacheKey   = "events:list"
	eventCacheKeyPrefix = "events:id:"
)

// EventService serves the event catalog and admin event management.
// List and single-event reads go through the Redis cache; every mutation
// invalidates it.
type EventService struct {
	eventsRepo repository.EventRepository
	bookings   repository.BookingRepository
	cache      *persistence.Cache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// EventDependencies bundles requirements for the event service.
type EventDependencies struct {
	EventRepo   repository.EventRepository
	BookingRepo repository.BookingRepository
	Cache       *persistence.Cache
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// EventCreateInput describes event creation payload.
type EventCreateInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	ImageURL    string
	Capacity    int
	Price       float64
	CategoryID  string
}

// EventUpdateInput patches an event; nil fields stay untouched.
type EventUpdateInput struct {
	Title       *string
	Description *string
	Date        *time.Time
	Location    *string
	ImageURL    *string
	Capacity    *int
	Price       *float64
	CategoryID  *string
}

// NewEventService constructs the service.
func NewEventService(deps EventDependencies) *EventService {
	return &EventService{
		eventsRepo: deps.EventRepo,
		bookings:   deps.BookingRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// List returns all events ordered by date.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	var cached []domain.Event
	if err := s.cache.Get(ctx, eventListCacheKey, &cached); err == nil {
		return cached, nil
	}

	result, err := s.eventsRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, eventListCacheKey, result); err != nil {
		s.logger.Warn("cache event list", zap.Error(err))
	}
	return result, nil
}

// Get returns one event.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	var cached domain.Event
	if err := s.cache.Get(ctx, eventCacheKeyPrefix+id, &cached); err == nil {
		return &cached, nil
	}

	event, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", map[string]any{"event_id": id})
		}
		return nil, err
	}
	if err := s.cache.Set(ctx, eventCacheKeyPrefix+id, event); err != nil {
		s.logger.Warn("cache event", zap.Error(err), zap.String("event_id", id))
	}
	return event, nil
}

// Create adds a new event owned by the given admin.
func (s *EventService) Create(ctx context.Context, createdBy string, input EventCreateInput) (*domain.Event, error) {
	if input.Capacity < 1 {
		return nil, apperrors.NewValidationError("capacity must be a positive integer", nil)
	}
	if input.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		Capacity:    input.Capacity,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		CreatedBy:   createdBy,
	}
	if err := s.eventsRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)
	return event, nil
}

// Update patches an event and notifies users holding active bookings.
func (s *EventService) Update(ctx context.Context, id string, input EventUpdateInput) (*domain.Event, error) {
	event, err := s.eventsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", map[string]any{"event_id": id})
		}
		return nil, err
	}

	applyEventPatch(event, input)
	if event.Capacity < 1 {
		return nil, apperrors.NewValidationError("capacity must be a positive integer", nil)
	}
	if event.Price < 0 {
		return nil, apperrors.NewValidationError("price must not be negative", nil)
	}

	if err := s.eventsRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	s.invalidate(ctx, event.ID)

	recipients, err := s.activeBookingUsers(ctx, event.ID)
	if err != nil {
		s.logger.Warn("resolve update recipients", zap.Error(err), zap.String("event_id", event.ID))
	} else if len(recipients) > 0 && s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEventUpdated,
			Timestamp: time.Now(),
			Payload: events.EventUpdatedPayload{
				EventID:      event.ID,
				EventTitle:   event.Title,
				RecipientIDs: recipients,
			},
		})
	}
	return event, nil
}

// Delete removes an event. Its bookings are kept; reads joining them
// tolerate the missing event.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.eventsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("event", map[string]any{"event_id": id})
		}
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *EventService) invalidate(ctx context.Context, eventID string) {
	if err := s.cache.Delete(ctx, eventListCacheKey, eventCacheKeyPrefix+eventID); err != nil {
		s.logger.Warn("invalidate event cache", zap.Error(err), zap.String("event_id", eventID))
	}
}

func (s *EventService) activeBookingUsers(ctx context.Context, eventID string) ([]string, error) {
	bookings, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(bookings))
	var recipients []string
	for i := range bookings {
		booking := &bookings[i]
		if !booking.Active() {
			continue
		}
		if _, ok := seen[booking.UserID]; ok {
			continue
		}
		seen[booking.UserID] = struct{}{}
		recipients = append(recipients, booking.UserID)
	}
	return recipients, nil
}

func applyEventPatch(event *domain.Event, input EventUpdateInput) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.ImageURL != nil {
		event.ImageURL = *input.ImageURL
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.CategoryID != nil {
		event.CategoryID = *input.CategoryID
	}
}
