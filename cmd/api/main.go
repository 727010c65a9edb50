package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/sms-connector/internal/config"
	"github.com/oggyb/sms-connector/internal/connector"
	"github.com/oggyb/sms-connector/internal/handler"
	"github.com/oggyb/sms-connector/internal/logger"
	"github.com/oggyb/sms-connector/internal/provider"
	routes "github.com/oggyb/sms-connector/internal/router"
	"github.com/oggyb/sms-connector/internal/server"
)

func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()

	log := logger.New(cfg.App.Name, cfg.App.Env, cfg.Log.Level)

	// Init SMS provider client.
	smsClient := provider.NewTwilio(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken)

	// Build the SendSMS command. Missing credentials fail here, before
	// any network activity.
	cmd, err := connector.NewSendSMSCommand(
		connector.Credentials{
			AccountSID: cfg.Twilio.AccountSID,
			AuthToken:  cfg.Twilio.AuthToken,
			FromNumber: cfg.Twilio.FromNumber,
		},
		smsClient,
		connector.WithObserver(connector.LogObserver{Log: &log}),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure SendSMS command")
	}

	// Optionally check the credentials against the provider before
	// serving traffic; otherwise the first Execute does it implicitly.
	if cfg.Twilio.VerifyOnStartup {
		if err := cmd.Verify(rootCtx); err != nil {
			log.Fatal().Err(err).Msg("provider rejected credentials")
		}
		log.Info().Msg("provider credentials verified")
	}

	registry := connector.NewRegistry(cmd)

	// HTTP dependencies & server wiring.

	// Handlers
	homeHandler := handler.NewHomeHandler()
	commandHandler := handler.NewCommandHandler(registry)

	// Init route dependencies
	deps := routes.AppDeps{
		Home:    homeHandler,
		Command: commandHandler,
	}

	// Init Server
	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps, &log)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutdown signal received, starting graceful shutdown")

	// Give in-flight requests some time to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server graceful shutdown failed")
	} else {
		log.Info().Msg("HTTP server stopped")
	}

	log.Info().Msg("shutdown complete")
}
