// internal/api/groups/handlers.go
package groups

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pcmclub/courtbook/internal/api/apiutil"
	"github.com/pcmclub/courtbook/internal/api/auth"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/email"
	"github.com/pcmclub/courtbook/internal/groupbooking"
	"github.com/pcmclub/courtbook/internal/ledger"
	"github.com/pcmclub/courtbook/internal/metrics"
	"github.com/pcmclub/courtbook/internal/request"
)

var (
	queries     *dbgen.Queries
	coordinator *groupbooking.Coordinator
	emailClient email.EmailSender
	handlerOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB, coord *groupbooking.Coordinator, mail email.EmailSender) {
	if database == nil || coord == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = database.Queries
		coordinator = coord
		emailClient = mail
	})
}

type createGroupRequest struct {
	CourtID          int64    `json:"court_id"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	InvitedUserNames []string `json:"invited_user_names"`
}

type createGroupResponse struct {
	GroupID     int64 `json:"group_id"`
	TotalPrice  int64 `json:"total_price"`
	ShareAmount int64 `json:"share_amount"`
}

// POST /api/v1/bookings/group
func HandleGroupCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if coordinator == nil {
		logger.Error().Msg("Group booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	var req createGroupRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.CourtID <= 0 {
		http.Error(w, "court_id is required", http.StatusBadRequest)
		return
	}

	start, end, err := parseGroupTimes(req.StartTime, req.EndTime)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	invited := normalizeUserNames(req.InvitedUserNames)

	result, err := coordinator.Create(r.Context(), memberID, req.CourtID, start, end, invited)
	if err != nil {
		apiutil.WriteDomainError(w, logger, err, "Failed to create group booking")
		return
	}

	metrics.GroupBookingsCreatedTotal.Inc()

	if err := apiutil.WriteJSON(w, http.StatusCreated, createGroupResponse{
		GroupID:     result.Group.ID,
		TotalPrice:  result.TotalPrice,
		ShareAmount: result.ShareAmount,
	}); err != nil {
		logger.Error().Err(err).Int64("group_id", result.Group.ID).Msg("Failed to write group response")
	}
}

type payShareResponse struct {
	Balance   int64 `json:"balance"`
	Finalized bool  `json:"finalized"`
}

// POST /api/v1/bookings/group/{id}/pay
func HandleGroupPay(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil || coordinator == nil {
		logger.Error().Msg("Group booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	groupID, ok := request.PathID(r, "id")
	if !ok {
		http.Error(w, "Group booking ID is required", http.StatusBadRequest)
		return
	}

	result, err := coordinator.PayShare(r.Context(), memberID, groupID)
	if err != nil {
		apiutil.WriteDomainError(w, logger, err, "Failed to pay group share")
		return
	}

	metrics.WalletTransactionsTotal.WithLabelValues(string(ledger.KindPayment)).Inc()

	if result.Finalized {
		metrics.GroupBookingsFinalizedTotal.Inc()
		metrics.BookingsCreatedTotal.Inc()

		if group, err := queries.GetGroupBookingByID(r.Context(), groupID); err == nil {
			if court, err := queries.GetCourtByID(r.Context(), group.CourtID); err == nil {
				email.Notify(r.Context(), queries, emailClient, group.CreatorID,
					email.GroupConfirmedNotice(court.Name, group), logger)
			}
		}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, payShareResponse{
		Balance:   result.Balance,
		Finalized: result.Finalized,
	}); err != nil {
		logger.Error().Err(err).Int64("group_id", groupID).Msg("Failed to write pay response")
	}
}

// GET /api/v1/bookings/group/my
func HandleMyGroups(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if coordinator == nil {
		logger.Error().Msg("Group booking handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	items, err := coordinator.ListForMember(r.Context(), memberID)
	if err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to list group bookings")
		http.Error(w, "Failed to list group bookings", http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []dbgen.ListGroupBookingsByMemberRow{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, items); err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to write group list response")
	}
}

func parseGroupTimes(startValue, endValue string) (time.Time, time.Time, error) {
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

func normalizeUserNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}
	return normalized
}
