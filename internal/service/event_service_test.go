package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/service"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

func TestEventCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.eventService.Create(context.Background(), "u-admin", service.EventCreateInput{
		Title: "No seats", Date: time.Now(), Capacity: 0, Price: 10, CategoryID: "c-conference",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	_, err = env.eventService.Create(context.Background(), "u-admin", service.EventCreateInput{
		Title: "Negative price", Date: time.Now(), Capacity: 10, Price: -1, CategoryID: "c-conference",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))
}

func TestEventGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.eventService.Get(context.Background(), "e-missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestEventUpdatePatchesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	event := env.seedEvent(t, "e-conf", owner.ID, 50, 20)

	newTitle := "Renamed"
	updated, err := env.eventService.Update(context.Background(), event.ID, service.EventUpdateInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, event.Location, updated.Location)
	assert.Equal(t, event.Capacity, updated.Capacity)
	assert.Equal(t, event.Price, updated.Price)
}

func TestEventUpdateNotifiesActiveBookersOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	alice := env.seedUser(t, "u-alice", "Alice", domain.UserRoleCustomer)
	bob := env.seedUser(t, "u-bob", "Bob", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 50, 20)

	_, err := env.bookingService.Create(context.Background(), alice.ID, event.ID, 1)
	require.NoError(t, err)
	bobBooking, err := env.bookingService.Create(context.Background(), bob.ID, event.ID, 1)
	require.NoError(t, err)
	_, err = env.bookingService.Cancel(context.Background(), bobBooking.ID)
	require.NoError(t, err)

	newTitle := "Moved indoors"
	_, err = env.eventService.Update(context.Background(), event.ID, service.EventUpdateInput{Title: &newTitle})
	require.NoError(t, err)

	aliceNotifications, err := env.notificationService.ListForUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceNotifications, 1)
	assert.Equal(t, domain.NotificationTypeUpdate, aliceNotifications[0].Type)
	require.NotNil(t, aliceNotifications[0].RelatedID)
	assert.Equal(t, event.ID, *aliceNotifications[0].RelatedID)

	// Bob cancelled, so the update does not reach him.
	bobNotifications, err := env.notificationService.ListForUser(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobNotifications)
}

func TestEventDeleteKeepsBookings(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-doomed", owner.ID, 50, 20)

	booking, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.eventService.Delete(context.Background(), event.ID))

	_, err = env.eventService.Get(context.Background(), event.ID)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))

	kept, err := env.bookings.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, kept.Status)
}

func TestEventDeleteUnknown(t *testing.T) {
	env := newTestEnv(t)

	err := env.eventService.Delete(context.Background(), "e-missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestEventListOrderedByDate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)

	later := env.seedEvent(t, "e-later", owner.ID, 10, 10)
	later.Date = time.Now().AddDate(0, 2, 0)
	require.NoError(t, env.events.Update(context.Background(), later))
	env.seedEvent(t, "e-sooner", owner.ID, 10, 10)

	events, err := env.eventService.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e-sooner", events[0].ID)
	assert.Equal(t, "e-later", events[1].ID)
}
