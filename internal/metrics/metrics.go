package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtbook_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_bookings_created_total",
			Help: "Total number of confirmed court bookings",
		},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	GroupBookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_group_bookings_created_total",
			Help: "Total number of group bookings proposed",
		},
	)

	GroupBookingsFinalizedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtbook_group_bookings_finalized_total",
			Help: "Total number of group bookings fully paid and confirmed",
		},
	)

	WalletTransactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_wallet_transactions_total",
			Help: "Total number of wallet transactions",
		},
		[]string{"type"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtbook_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)
)
