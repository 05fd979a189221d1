// internal/api/courts/handlers.go
package courts

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/pcmclub/courtbook/internal/api/apiutil"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
)

var (
	queries     *dbgen.Queries
	handlerOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(database *appdb.DB) {
	if database == nil {
		return
	}
	handlerOnce.Do(func() {
		queries = database.Queries
	})
}

// GET /api/v1/courts
func HandleCourtsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if queries == nil {
		logger.Error().Msg("Court handlers not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	courts, err := queries.ListActiveCourts(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list courts")
		http.Error(w, "Failed to list courts", http.StatusInternalServerError)
		return
	}
	if courts == nil {
		courts = []dbgen.Court{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, courts); err != nil {
		logger.Error().Err(err).Msg("Failed to write court list response")
	}
}
