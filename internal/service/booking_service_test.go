package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

func TestCreateBookingConfirmsAndNotifiesOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 100, 25.50)

	booking, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 3, booking.NumberOfTickets)
	assert.InDelta(t, 76.50, booking.TotalAmount, 0.001)

	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, domain.NotificationTypeBooking, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
	require.NotNil(t, notifications[0].RelatedID)
	assert.Equal(t, booking.ID, *notifications[0].RelatedID)
}

func TestCreateBookingRejectsNonPositiveTickets(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	event := env.seedEvent(t, "e-conf", owner.ID, 10, 10)

	for _, tickets := range []int{0, -2} {
		_, err := env.bookingService.Create(context.Background(), "u-anyone", event.ID, tickets)
		require.Error(t, err)
		assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
	}
}

func TestCreateBookingUnknownEvent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.bookingService.Create(context.Background(), "u-anyone", "e-missing", 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestCreateBookingCapacityExceededLeavesNoTrace(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	alice := env.seedUser(t, "u-alice", "Alice", domain.UserRoleCustomer)
	bob := env.seedUser(t, "u-bob", "Bob", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-small", owner.ID, 2, 10)

	_, err := env.bookingService.Create(context.Background(), alice.ID, event.ID, 2)
	require.NoError(t, err)

	_, err = env.bookingService.Create(context.Background(), bob.ID, event.ID, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CAPACITY_EXCEEDED"))

	// The rejected request must not change any state.
	sum, err := env.bookings.SumActiveTickets(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum)

	eventBookings, err := env.bookings.ListByEvent(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Len(t, eventBookings, 1)

	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestCancellationFreesCapacity(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	alice := env.seedUser(t, "u-alice", "Alice", domain.UserRoleCustomer)
	bob := env.seedUser(t, "u-bob", "Bob", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-small", owner.ID, 2, 10)

	first, err := env.bookingService.Create(context.Background(), alice.ID, event.ID, 2)
	require.NoError(t, err)

	_, err = env.bookingService.Create(context.Background(), bob.ID, event.ID, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CAPACITY_EXCEEDED"))

	cancelled, err := env.bookingService.Cancel(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)

	second, err := env.bookingService.Create(context.Background(), bob.ID, event.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, second.Status)

	sum, err := env.bookings.SumActiveTickets(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, sum)
}

func TestCancelIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 10, 10)

	booking, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		result, err := env.bookingService.Cancel(context.Background(), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, result.Status)
	}

	// One booking notification plus exactly one cancellation notification;
	// the repeated cancel does not emit another.
	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	cancellations := 0
	for _, n := range notifications {
		if n.Type == domain.NotificationTypeCancellation {
			cancellations++
		}
	}
	assert.Equal(t, 1, cancellations)
}

func TestCancelUnknownBooking(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.bookingService.Cancel(context.Background(), "b-missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestListForUserToleratesDeletedEvent(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	kept := env.seedEvent(t, "e-kept", owner.ID, 10, 10)
	doomed := env.seedEvent(t, "e-doomed", owner.ID, 10, 10)

	_, err := env.bookingService.Create(context.Background(), customer.ID, kept.ID, 1)
	require.NoError(t, err)
	orphaned, err := env.bookingService.Create(context.Background(), customer.ID, doomed.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.events.Delete(context.Background(), doomed.ID))

	joined, err := env.bookingService.ListForUser(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Len(t, joined, 2)

	for _, item := range joined {
		if item.Booking.ID == orphaned.ID {
			assert.Nil(t, item.Event)
		} else {
			require.NotNil(t, item.Event)
			assert.Equal(t, kept.ID, item.Event.ID)
		}
	}
}

func TestListForEventJoinsUsers(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 10, 10)

	booking, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 2)
	require.NoError(t, err)

	joined, err := env.bookingService.ListForEvent(context.Background(), event.ID)
	require.NoError(t, err)
	require.Len(t, joined, 1)
	assert.Equal(t, booking.ID, joined[0].Booking.ID)
	require.NotNil(t, joined[0].User)
	assert.Equal(t, customer.ID, joined[0].User.ID)
}

func TestConcurrentBookingsNeverOverbook(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	event := env.seedEvent(t, "e-hot", owner.ID, 5, 10)

	const attempts = 20
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			_, err := env.bookingService.Create(context.Background(), "u-owner", event.ID, 1)
			errs <- err
		}()
	}

	succeeded := 0
	for i := 0; i < attempts; i++ {
		if err := <-errs; err == nil {
			succeeded++
		} else {
			assert.True(t, apperrors.IsCode(err, "CAPACITY_EXCEEDED"))
		}
	}
	assert.Equal(t, 5, succeeded)

	sum, err := env.bookings.SumActiveTickets(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, sum)
}
