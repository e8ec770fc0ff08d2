package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
)

type bookingRepository struct {
	store *Store
}

// NewBookingRepository returns a store-backed booking repository.
func NewBookingRepository(store *Store) repository.BookingRepository {
	return &bookingRepository{store: store}
}

func (r *bookingRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.store.bookings = append(r.store.bookings, *booking)
	return nil
}

func (r *bookingRepository) Update(_ context.Context, booking *domain.Booking) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.bookings {
		if r.store.bookings[i].ID == booking.ID {
			booking.CreatedAt = r.store.bookings[i].CreatedAt
			booking.UpdatedAt = time.Now()
			r.store.bookings[i] = *booking
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *bookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := range r.store.bookings {
		if r.store.bookings[i].ID == id {
			booking := r.store.bookings[i]
			return &booking, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *bookingRepository) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.UserID == userID }), nil
}

func (r *bookingRepository) ListByEvent(_ context.Context, eventID string) ([]domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.EventID == eventID }), nil
}

func (r *bookingRepository) ListAll(_ context.Context) ([]domain.Booking, error) {
	return r.filter(func(*domain.Booking) bool { return true }), nil
}

func (r *bookingRepository) SumActiveTickets(_ context.Context, eventID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sum := 0
	for i := range r.store.bookings {
		booking := &r.store.bookings[i]
		if booking.EventID == eventID && booking.Active() {
			sum += booking.NumberOfTickets
		}
	}
	return sum, nil
}

// filter returns matches newest first, ties broken by insertion order.
func (r *bookingRepository) filter(match func(*domain.Booking) bool) []domain.Booking {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Booking, 0)
	for i := len(r.store.bookings) - 1; i >= 0; i-- {
		if match(&r.store.bookings[i]) {
			result = append(result, r.store.bookings[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
