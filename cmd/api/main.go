package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/eventloop-labs/event-booking-service/internal/api/http"
	"github.com/eventloop-labs/event-booking-service/internal/api/http/handlers"
	"github.com/eventloop-labs/event-booking-service/internal/auth"
	"github.com/eventloop-labs/event-booking-service/internal/config"
	"github.com/eventloop-labs/event-booking-service/internal/events"
	"github.com/eventloop-labs/event-booking-service/internal/observability"
	"github.com/eventloop-labs/event-booking-service/internal/persistence"
	"github.com/eventloop-labs/event-booking-service/internal/repository"
	"github.com/eventloop-labs/event-booking-service/internal/repository/memory"
	"github.com/eventloop-labs/event-booking-service/internal/service"
	"github.com/eventloop-labs/event-booking-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	cache := persistence.NewCache(redis, cfg.Cache.EventTTL())

	var (
		userRepo         repository.UserRepository
		eventRepo        repository.EventRepository
		categoryRepo     repository.CategoryRepository
		bookingRepo      repository.BookingRepository
		notificationRepo repository.NotificationRepository
	)
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		eventRepo = repository.NewEventRepository(pool)
		categoryRepo = repository.NewCategoryRepository(pool)
		bookingRepo = repository.NewBookingRepository(pool)
		notificationRepo = repository.NewNotificationRepository(pool)
	} else {
		store := memory.NewStore()
		if cfg.App.SeedDemoData {
			if err := memory.Seed(store); err != nil {
				logger.Fatal("failed to seed demo data", zap.Error(err))
			}
			logger.Info("seeded in-memory demo data")
		}
		userRepo = memory.NewUserRepository(store)
		eventRepo = memory.NewEventRepository(store)
		categoryRepo = memory.NewCategoryRepository(store)
		bookingRepo = memory.NewBookingRepository(store)
		notificationRepo = memory.NewNotificationRepository(store)
	}

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:   eventRepo,
		BookingRepo: bookingRepo,
		Cache:       cache,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	categoryService := service.NewCategoryService(categoryRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		EventRepo:   eventRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)
	analyticsService := service.NewAnalyticsService(eventRepo, bookingRepo)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Events:         handlers.NewEventsHandler(eventService, bookingService),
		Categories:     handlers.NewCategoriesHandler(categoryService),
		Bookings:       handlers.NewBookingsHandler(bookingService),
		Notifications:  handlers.NewNotificationsHandler(notificationService),
		Analytics:      handlers.NewAnalyticsHandler(analyticsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
