package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventloop-labs/event-booking-service/internal/domain"
	apperrors "github.com/eventloop-labs/event-booking-service/pkg/errorutil"
)

func TestNotificationsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 100, 10)

	var bookingIDs []string
	for i := 0; i < 3; i++ {
		booking, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 1)
		require.NoError(t, err)
		bookingIDs = append(bookingIDs, booking.ID)
	}

	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)

	for i, notification := range notifications {
		require.NotNil(t, notification.RelatedID)
		assert.Equal(t, bookingIDs[len(bookingIDs)-1-i], *notification.RelatedID)
		if i > 0 {
			assert.False(t, notification.CreatedAt.After(notifications[i-1].CreatedAt))
		}
	}
}

func TestMarkReadFlipsSingleNotification(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 100, 10)

	for i := 0; i < 2; i++ {
		_, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 1)
		require.NoError(t, err)
	}

	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	updated, err := env.notificationService.MarkRead(context.Background(), notifications[0].ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	notifications, err = env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.True(t, notifications[0].IsRead)
	assert.False(t, notifications[1].IsRead)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.notificationService.MarkRead(context.Background(), "n-missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedUser(t, "u-owner", "Owner", domain.UserRoleAdmin)
	customer := env.seedUser(t, "u-customer", "Customer", domain.UserRoleCustomer)
	event := env.seedEvent(t, "e-conf", owner.ID, 100, 10)

	for i := 0; i < 3; i++ {
		_, err := env.bookingService.Create(context.Background(), customer.ID, event.ID, 1)
		require.NoError(t, err)
	}

	require.NoError(t, env.notificationService.MarkAllRead(context.Background(), owner.ID))

	notifications, err := env.notificationService.ListForUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	for _, notification := range notifications {
		assert.True(t, notification.IsRead)
	}
}

func TestMarkAllReadWithoutNotifications(t *testing.T) {
	env := newTestEnv(t)

	// No matching notifications is a successful no-op.
	assert.NoError(t, env.notificationService.MarkAllRead(context.Background(), "u-nobody"))
}
