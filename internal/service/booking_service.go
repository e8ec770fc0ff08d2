package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/events"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

// BookingService coordinates booking creation and cancellation against
// event capacity.
type BookingService struct {
	bookings   repository.BookingRepository
	eventsRepo repository.EventRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher

	// locks serializes the capacity check and insert per event, so two
	// concurrent requests cannot jointly overbook (check-then-act).
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	EventRepo   repository.EventRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// BookingWithEvent joins a booking with its event. Event is nil when the
// event has since been deleted.
type BookingWithEvent struct {
	Booking domain.Booking
	Event   *domain.Event
}

// BookingWithUser joins a booking with the user who made it.
type BookingWithUser struct {
	Booking domain.Booking
	User    *domain.User
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		eventsRepo: deps.EventRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		locks:      make(map[string]*sync.Mutex),
	}
}

// Create books tickets for a user on an event. It fails with NOT_FOUND
// when the event does not exist and with CAPACITY_EXCEEDED when the
// requested tickets would push the committed total past event capacity;
// a rejected call leaves no state behind.
func (s *BookingService) Create(ctx context.Context, userID, eventID string, numberOfTickets int) (*domain.Booking, error) {
	if numberOfTickets < 1 {
		return nil, apperrors.NewValidationError("number_of_tickets must be a positive integer", nil)
	}

	lock := s.eventLock(eventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("event", map[string]any{"event_id": eventID})
		}
		return nil, err
	}

	committed, err := s.bookings.SumActiveTickets(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if committed+numberOfTickets > event.Capacity {
		return nil, apperrors.NewCapacityExceeded(map[string]any{
			"event_id":  eventID,
			"capacity":  event.Capacity,
			"committed": committed,
			"requested": numberOfTickets,
		})
	}

	booking := &domain.Booking{
		ID:              uuid.NewString(),
		EventID:         eventID,
		UserID:          userID,
		NumberOfTickets: numberOfTickets,
		TotalAmount:     event.Price * float64(numberOfTickets),
		Status:          domain.BookingStatusConfirmed,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventBookingCreated,
		ActorID: userID,
		Payload: events.BookingCreatedPayload{
			BookingID:       booking.ID,
			EventID:         event.ID,
			EventTitle:      event.Title,
			OwnerID:         event.CreatedBy,
			NumberOfTickets: booking.NumberOfTickets,
			TotalAmount:     booking.TotalAmount,
		},
	})
	return booking, nil
}

// Cancel marks a booking cancelled. Cancelling an already-cancelled
// booking is a no-op success; the terminal state is unchanged.
func (s *BookingService) Cancel(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	// The event may have been deleted since the booking was made; the
	// cancellation still succeeds, there is just nobody left to notify.
	if event, err := s.eventsRepo.GetByID(ctx, booking.EventID); err == nil {
		s.publish(ctx, events.Event{
			Type:    events.EventBookingCancelled,
			ActorID: booking.UserID,
			Payload: events.BookingCancelledPayload{
				BookingID:  booking.ID,
				EventID:    event.ID,
				EventTitle: event.Title,
				OwnerID:    event.CreatedBy,
			},
		})
	}
	return booking, nil
}

// ListForUser returns the user's bookings, each joined with its event.
// A booking whose event was deleted is returned with a nil Event.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]BookingWithEvent, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]BookingWithEvent, 0, len(bookings))
	for _, booking := range bookings {
		joined := BookingWithEvent{Booking: booking}
		if event, err := s.eventsRepo.GetByID(ctx, booking.EventID); err == nil {
			joined.Event = event
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, nil
}

// ListForEvent returns an event's bookings, each joined with the booking
// user. Callers must render users through dto.UserResponse so password
// material never crosses the boundary.
func (s *BookingService) ListForEvent(ctx context.Context, eventID string) ([]BookingWithUser, error) {
	bookings, err := s.bookings.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := make([]BookingWithUser, 0, len(bookings))
	for _, booking := range bookings {
		joined := BookingWithUser{Booking: booking}
		if user, err := s.users.GetByID(ctx, booking.UserID); err == nil {
			joined.User = user
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, nil
}

// Get fetches one booking.
func (s *BookingService) Get(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) eventLock(eventID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[eventID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[eventID] = lock
	}
	return lock
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
