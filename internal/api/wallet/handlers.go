// internal/api/wallet/handlers.go
package wallet

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pcmclub/courtbook/internal/api/apiutil"
	"github.com/pcmclub/courtbook/internal/api/auth"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/domain"
	"github.com/pcmclub/courtbook/internal/ledger"
	"github.com/pcmclub/courtbook/internal/metrics"
)

var (
	queries     *dbgen.Queries
	store       *appdb.DB
	handlerOnce sync.Once
)

const historyLimit = 50

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = database.Queries
		store = database
	})
}

type topUpRequest struct {
	Amount int64 `json:"amount"`
}

type topUpResponse struct {
	Balance int64 `json:"balance"`
}

// POST /api/v1/wallet/topup
func HandleTopUp(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if store == nil {
		logger.Error().Msg("Wallet handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	var req topUpRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, domain.ErrInvalidAmount.Error(), http.StatusBadRequest)
		return
	}

	var entry ledger.Entry
	err := store.RunInTx(r.Context(), func(tx *appdb.DB) error {
		var err error
		entry, err = ledger.Credit(r.Context(), tx.Queries, memberID, req.Amount,
			ledger.KindTopUp, "Wallet top-up")
		return err
	})
	if err != nil {
		apiutil.WriteDomainError(w, logger, err, "Failed to top up wallet")
		return
	}

	metrics.WalletTransactionsTotal.WithLabelValues(string(ledger.KindTopUp)).Inc()

	if err := apiutil.WriteJSON(w, http.StatusOK, topUpResponse{Balance: entry.Balance}); err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to write top-up response")
	}
}

// GET /api/v1/wallet/history
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil {
		logger.Error().Msg("Wallet handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	memberID, ok := auth.RequireMember(w, r)
	if !ok {
		return
	}

	transactions, err := queries.ListWalletTransactionsByMember(r.Context(), dbgen.ListWalletTransactionsByMemberParams{
		MemberID: memberID,
		Limit:    historyLimit,
	})
	if err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to list wallet transactions")
		http.Error(w, "Failed to list wallet transactions", http.StatusInternalServerError)
		return
	}
	if transactions == nil {
		transactions = []dbgen.WalletTransaction{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, transactions); err != nil {
		logger.Error().Err(err).Int64("member_id", memberID).Msg("Failed to write history response")
	}
}
