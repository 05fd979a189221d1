package apiutil

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pcmclub/courtbook/internal/domain"
)

// StatusForError maps core errors to HTTP status codes. Unrecognized errors
// are infrastructure failures and map to 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidInvitee):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrCancelTooLate):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrCourtNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrNotGroupMember):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrShareAlreadyPaid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError reports a failed core operation. Domain errors surface
// their message; anything else is logged and reported generically, and is
// safe for the caller to retry since no partial state was committed.
func WriteDomainError(w http.ResponseWriter, logger *zerolog.Logger, err error, message string) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.Error().Err(err).Msg(message)
		}
		http.Error(w, message, status)
		return
	}
	http.Error(w, err.Error(), status)
}
