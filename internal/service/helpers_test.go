package service_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/eventloop-labs/event-booking-service/internal/config"
	"github.com/eventloop-labs/event-booking-service/internal/domain"
	"github.com/eventloop-labs/event-booking-service/internal/events"
	"github.com/eventloop-labs/event-booking-service/internal/persistence"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	"github.com/eventloop-labs/event-booking-service/internal/repository/memory"
	"github.com/eventloop-labs/event-booking-service/internal/service"
)

// testEnv wires services against a fresh in-memory store with the
// notification handlers subscribed, mirroring production wiring.
type testEnv struct {
	store         *memory.Store
	users         repository.UserRepository
	events        repository.EventRepository
	categories    repository.CategoryRepository
	bookings      repository.BookingRepository
	notifications repository.NotificationRepository

	bookingService      *service.BookingService
	eventService        *service.EventService
	notificationService *service.NotificationService
	analyticsService    *service.AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.NewStore()
	env := &testEnv{
		store:         store,
		users:         memory.NewUserRepository(store),
		events:        memory.NewEventRepository(store),
		categories:    memory.NewCategoryRepository(store),
		bookings:      memory.NewBookingRepository(store),
		notifications: memory.NewNotificationRepository(store),
	}

	dispatcher := events.NewInMemoryDispatcher()
	logger := zap.NewNop()

	env.notificationService = service.NewNotificationService(env.notifications, dispatcher, logger)
	env.notificationService.RegisterHandlers()

	env.bookingService = service.NewBookingService(service.BookingDependencies{
		BookingRepo: env.bookings,
		EventRepo:   env.events,
		UserRepo:    env.users,
		Dispatcher:  dispatcher,
	})
	env.eventService = service.NewEventService(service.EventDependencies{
		EventRepo:   env.events,
		BookingRepo: env.bookings,
		Cache:       persistence.NewCache(nil, 0),
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	env.analyticsService = service.NewAnalyticsService(env.events, env.bookings)

	return env
}

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            4,
		},
	}
}

func (env *testEnv) seedUser(t *testing.T, id, name string, role domain.UserRole) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           id,
		Name:         name,
		Email:        id + "@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	if err := env.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (env *testEnv) seedEvent(t *testing.T, id, ownerID string, capacity int, price float64) *domain.Event {
	t.Helper()
	event := &domain.Event{
		ID:         id,
		Title:      "Event " + id,
		Date:       time.Now().AddDate(0, 1, 0),
		Location:   "Somewhere",
		Capacity:   capacity,
		Price:      price,
		CategoryID: "c-conference",
		CreatedBy:  ownerID,
	}
	if err := env.events.Create(context.Background(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}
