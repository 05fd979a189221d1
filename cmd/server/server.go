// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pcmclub/courtbook/internal/api"
	"github.com/pcmclub/courtbook/internal/api/bookings"
	"github.com/pcmclub/courtbook/internal/api/courts"
	"github.com/pcmclub/courtbook/internal/api/groups"
	"github.com/pcmclub/courtbook/internal/api/wallet"
	"github.com/pcmclub/courtbook/internal/config"
)

func newServer(cfg *config.Config) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithMetrics,
		api.WithRequestID,
	)

	registerRoutes(router, cfg)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config) {
	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if cfg.Features.EnableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// All member-facing routes require an authenticated member.
	authenticated := func(h http.HandlerFunc) http.Handler {
		return api.ChainMiddleware(h, api.WithAuth(cfg.App.SecretKey))
	}

	// Booking routes
	mux.Handle("POST /api/v1/bookings", authenticated(bookings.HandleBookingCreate))
	mux.Handle("GET /api/v1/bookings/my", authenticated(bookings.HandleMyBookings))
	mux.Handle("DELETE /api/v1/bookings/{id}", authenticated(bookings.HandleBookingCancel))

	// Group booking routes
	mux.Handle("POST /api/v1/bookings/group", authenticated(groups.HandleGroupCreate))
	mux.Handle("POST /api/v1/bookings/group/{id}/pay", authenticated(groups.HandleGroupPay))
	mux.Handle("GET /api/v1/bookings/group/my", authenticated(groups.HandleMyGroups))

	// Wallet routes
	mux.Handle("POST /api/v1/wallet/topup", authenticated(wallet.HandleTopUp))
	mux.Handle("GET /api/v1/wallet/history", authenticated(wallet.HandleHistory))

	// Court routes
	mux.Handle("GET /api/v1/courts", authenticated(courts.HandleCourtsList))
}
