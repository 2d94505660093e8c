package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hall-complaints/internal/api/http"
	"github.com/spec-kit/hall-complaints/internal/api/http/handlers"
	"github.com/spec-kit/hall-complaints/internal/auth"
	"github.com/spec-kit/hall-complaints/internal/config"
	"github.com/spec-kit/hall-complaints/internal/events"
	"github.com/spec-kit/hall-complaints/internal/observability"
	"github.com/spec-kit/hall-complaints/internal/service"
	"github.com/spec-kit/hall-complaints/internal/store"
	"github.com/spec-kit/hall-complaints/internal/worker"
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

	metrics := observability.NewMetrics()

	complaintStore := store.NewMemoryStore(cfg.Store)
	dispatcher := events.NewInMemoryDispatcher()

	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		Store:      complaintStore,
		Dispatcher: dispatcher,
	})
	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	sessionMiddleware := auth.NewSessionMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:            handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, complaintStore),
		Complaints:        handlers.NewComplaintsHandler(complaintService),
		Admin:             handlers.NewAdminHandler(complaintService),
		Auth:              handlers.NewAuthHandler(authService),
		SessionMiddleware: sessionMiddleware,
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
