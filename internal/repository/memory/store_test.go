package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	"github.com/eventloop-labs/event-booking-service/internal/repository/memory"
)

func TestSeedLoadsDemoData(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))

	users := memory.NewUserRepository(store)
	admin, err := users.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, admin.Role)

	categories := memory.NewCategoryRepository(store)
	all, err := categories.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 6)

	events := memory.NewEventRepository(store)
	list, err := events.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 7)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Date.Before(list[i-1].Date))
	}
}

func TestUserRepositoryNotFound(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	_, err := users.GetByID(context.Background(), "u-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookingRepositoryCreateAssignsIDAndTimestamps(t *testing.T) {
	store := memory.NewStore()
	bookings := memory.NewBookingRepository(store)

	booking := &domain.Booking{EventID: "e-1", UserID: "u-1", NumberOfTickets: 2, Status: domain.BookingStatusConfirmed}
	require.NoError(t, bookings.Create(context.Background(), booking))
	assert.NotEmpty(t, booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())

	loaded, err := bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.NumberOfTickets)
}

func TestSumActiveTicketsExcludesCancelled(t *testing.T) {
	store := memory.NewStore()
	bookings := memory.NewBookingRepository(store)

	confirmed := &domain.Booking{EventID: "e-1", UserID: "u-1", NumberOfTickets: 3, Status: domain.BookingStatusConfirmed}
	pending := &domain.Booking{EventID: "e-1", UserID: "u-2", NumberOfTickets: 1, Status: domain.BookingStatusPending}
	cancelled := &domain.Booking{EventID: "e-1", UserID: "u-3", NumberOfTickets: 5, Status: domain.BookingStatusCancelled}
	other := &domain.Booking{EventID: "e-2", UserID: "u-1", NumberOfTickets: 4, Status: domain.BookingStatusConfirmed}
	for _, b := range []*domain.Booking{confirmed, pending, cancelled, other} {
		require.NoError(t, bookings.Create(context.Background(), b))
	}

	sum, err := bookings.SumActiveTickets(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, 4, sum)
}

func TestEventRepositoryUpdateAndDelete(t *testing.T) {
	store := memory.NewStore()
	events := memory.NewEventRepository(store)

	event := &domain.Event{ID: "e-1", Title: "Before", Capacity: 10, CategoryID: "c-1", CreatedBy: "u-1"}
	require.NoError(t, events.Create(context.Background(), event))

	event.Title = "After"
	require.NoError(t, events.Update(context.Background(), event))

	loaded, err := events.GetByID(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, "After", loaded.Title)

	require.NoError(t, events.Delete(context.Background(), "e-1"))
	assert.ErrorIs(t, events.Delete(context.Background(), "e-1"), repository.ErrNotFound)
}
