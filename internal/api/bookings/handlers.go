// internal/api/bookings/handlers.go
package bookings

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pcmclub/courtbook/internal/api/apiutil"
	"github.com/pcmclub/courtbook/internal/api/auth"
	"github.com/pcmclub/courtbook/internal/booking"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/email"
	"github.com/pcmclub/courtbook/internal/ledger"
	"github.com/pcmclub/courtbook/internal/metrics"
	"github.com/pcmclub/courtbook/internal/request"
)

var (
	queries     *dbgen.Queries
	service     *booking.Service
	emailClient email.EmailSender
	handlerOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, svc *booking.Service, mail email.EmailSender) {
	if database == nil || svc == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = database.Queries
		service = svc
		emailClient = mail
	})
}

type createBookingRequest struct {
	CourtID   int64  `json:"court_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type createBookingResponse struct {
	Booking dbgen.Booking `json:"booking"`
	Price   int64         `json:"price"`
	Balance int64         `json:"balance"`
}

// POST /api/v1/bookings
func HandleBookingCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil || service == nil {
		logger.Error().Msg("Booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CourtID <= 0 {
		http.Error(w, "court_id is required", http.StatusBadRequest)
		return
	}

	start, end, err := parseBookingTimes(req.StartTime, req.EndTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := service.Create(r.Context(), memberID, req.CourtID, start, end)
	if err != nil {
		apiutil.WriteDomainError(w, logger, err, "Failed to create booking")
		return
	}

	metrics.BookingsCreatedTotal.Inc()
	metrics.WalletTransactionsTotal.WithLabelValues(string(ledger.KindPayment)).Inc()

	court, courtErr := queries.GetCourtByID(r.Context(), req.CourtID)
	if courtErr == nil {
		email.Notify(r.Context(), queries, emailClient, memberID,
			email.BookingConfirmation(court.Name, result.Booking), logger)
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, createBookingResponse{
		Booking: result.Booking,
		Price:   result.Price,
		Balance: result.Balance,
	}); err != nil {
		logger.Error().Err(err).Int64("booking_id", result.Booking.ID).Msg("Failed to write booking response")
	}
}

// GET /api/v1/bookings/my
func HandleMyBookings(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if service == nil {
		logger.Error().Msg("Booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	items, err := service.ListForMember(r.Context(), memberID)
	if err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to list bookings")
		http.Error(w, "Failed to list bookings", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []dbgen.ListBookingsByMemberRow{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, items); err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to write booking list response")
	}
}

type cancelBookingResponse struct {
	Refund  int64 `json:"refund"`
	Balance int64 `json:"balance"`
}

// DELETE /api/v1/bookings/{id}
func HandleBookingCancel(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil || service == nil {
		logger.Error().Msg("Booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	bookingID, ok := request.PathID(r, "id")
	if !ok {
		http.Error(w, "Booking ID is required", http.StatusBadRequest)
		return
	}

	// Court name for the notice; the booking row is gone after cancel.
	courtName := ""
	if b, err := queries.GetBookingForMember(r.Context(), dbgen.GetBookingForMemberParams{
		ID:       bookingID,
		MemberID: memberID,
	}); err == nil {
		if court, err := queries.GetCourtByID(r.Context(), b.CourtID); err == nil {
			courtName = court.Name
		}
	}

	result, err := service.Cancel(r.Context(), memberID, bookingID)
	if err != nil {
		apiutil.WriteDomainError(w, logger, err, "Failed to cancel booking")
		return
	}

	metrics.BookingCancellationsTotal.Inc()
	metrics.WalletTransactionsTotal.WithLabelValues(string(ledger.KindRefund)).Inc()

	if courtName != "" {
		email.Notify(r.Context(), queries, emailClient, memberID,
			email.CancellationNotice(courtName, result.Refund), logger)
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, cancelBookingResponse{
		Refund:  result.Refund,
		Balance: result.Balance,
	}); err != nil {
		logger.Error().Err(err).Int64("booking_id", bookingID).Msg("Failed to write cancel response")
	}
}

func parseBookingTimes(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, strings.TrimSpace(startValue))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_time: expected RFC 3339")
	}
	end, err := time.Parse(time.RFC3339, strings.TrimSpace(endValue))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_time: expected RFC 3339")
	}
	return start, end, nil
}
