// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/pcmclub/courtbook/internal/api/bookings"
	"github.com/pcmclub/courtbook/internal/api/courts"
	"github.com/pcmclub/courtbook/internal/api/groups"
	"github.com/pcmclub/courtbook/internal/api/wallet"
	"github.com/pcmclub/courtbook/internal/booking"
	"github.com/pcmclub/courtbook/internal/config"
	"github.com/pcmclub/courtbook/internal/db"
	"github.com/pcmclub/courtbook/internal/email"
	"github.com/pcmclub/courtbook/internal/groupbooking"
	"github.com/pcmclub/courtbook/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func configPath() string {
	if path, ok := os.LookupEnv("CONFIG_PATH"); ok {
		return path
	}
	return "config/config.yaml"
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	var emailClient email.EmailSender
	if cfg.EmailEnabled() {
		sesClient, err := email.NewSESClient(
			cfg.Email.AccessKeyID,
			cfg.Email.SecretAccessKey,
			cfg.Email.Region,
			cfg.Email.Sender,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize SES client")
		}
		emailClient = sesClient
	} else {
		log.Warn().Msg("Email delivery not configured; notifications disabled")
	}

	bookingService := booking.NewService(database, booking.SystemClock{})
	groupCoordinator := groupbooking.NewCoordinator(database, bookingService)

	bookings.InitHandlers(database, bookingService, emailClient)
	groups.InitHandlers(database, groupCoordinator, emailClient)
	wallet.InitHandlers(database)
	courts.InitHandlers(database)

	if cfg.Reminders.Enabled {
		if err := scheduler.Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize scheduler")
		}
		if err := scheduler.RegisterReminderJobs(database, emailClient, cfg.Reminders); err != nil {
			log.Fatal().Err(err).Msg("Failed to register reminder jobs")
		}
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start scheduler")
		}
	}

	server := newServer(cfg)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if cfg.Reminders.Enabled {
			if err := scheduler.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		}
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
