package cmd

import (
	"context"
	"fmt"
	"time"

	"ringside/api"
	"ringside/config"
	"ringside/database"
	"ringside/events"
	"ringside/notify"
	"ringside/payments"
	"ringside/repository"
	"ringside/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	cfg := config.Get()

	log.WithField("environment", cfg.Environment).Info("Starting ringside service")

	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	notifier := notify.NewNotifier(uowFactory)
	notifier.Register(eventBus)

	paymentClient := payments.NewStripeClient(cfg.StripeAPIKey)

	recordService := service.NewRecordService(uowFactory)
	payoutService := service.NewPayoutService(uowFactory, paymentClient, cfg.PlatformAdminIDs)

	rateLimiter := repository.NewRateLimitRepository(db)

	server := api.NewServer(recordService, payoutService, rateLimiter, cfg.RateLimitPerMinute)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Listen(cfg.ListenAddr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")

	if err := server.Shutdown(); err != nil {
		log.WithError(err).Error("Error shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
