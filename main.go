// main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro-boss/config"
	"bistro-boss/controllers"
	"bistro-boss/routes"
	"bistro-boss/store"
	"bistro-boss/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting bistro-boss server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	client, err := utils.ConnectDB(ctx, cfg.Mongo.ConnectionString(), cfg.Mongo.Timeout, logger)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	db := store.New(client.Database(cfg.Mongo.Database), cfg.Mongo.Timeout, logger)
	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	tokens := utils.NewTokenIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	gateway := utils.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.Currency)
	if gateway == nil {
		logger.Warn().Msg("PAYMENT_SECRET_KEY not set, payment intents are disabled")
	}

	mailer := utils.NewMailer(cfg.Mail.Provider, cfg.Mail.PostmarkToken, cfg.Mail.SendgridKey, cfg.Mail.Sender)

	if !cfg.Auth.ProtectAdminPromotion {
		logger.Warn().Msg("PATCH /users/admin/{id} is not gated by the admin check")
	}

	payments := controllers.NewPaymentController(db, gateway, mailer, logger)

	// Initialize controllers
	handler := routes.New(routes.Controllers{
		Auth:    controllers.NewAuthController(tokens, logger),
		User:    controllers.NewUserController(db, cfg.Auth.ProtectAdminPromotion, logger),
		Menu:    controllers.NewMenuController(db, logger),
		Cart:    controllers.NewCartController(db, logger),
		Payment: payments,
		Stats:   controllers.NewStatsController(db, logger),
		Health:  controllers.NewHealthController(db, logger),
	}, routes.Options{
		Verifier:              tokens,
		Users:                 db,
		ProtectAdminPromotion: cfg.Auth.ProtectAdminPromotion,
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("server is running")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			_ = server.Close()
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := payments.WaitForReceipts(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("receipts still pending at shutdown")
		}
		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
