// Package availability answers whether a court slot is free.
package availability

import (
	"context"
	"fmt"
	"time"

	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
)

// IsAvailable reports whether the half-open interval [start, end) is free on
// the court. Two intervals conflict iff start < other.end AND end >
// other.start; touching endpoints do not conflict. Only Confirmed bookings
// count. excludeBookingID removes one booking from consideration (pass 0 for
// none).
//
// The check is a pure read. Callers that insert a booking based on the answer
// must run the check on the same transaction as the insert, otherwise two
// concurrent callers can both observe a free slot.
func IsAvailable(ctx context.Context, q *dbgen.Queries, courtID int64, start, end time.Time, excludeBookingID int64) (bool, error) {
	count, err := q.CountConflictingBookings(ctx, dbgen.CountConflictingBookingsParams{
		CourtID:   courtID,
		ExcludeID: excludeBookingID,
		EndTime:   end,
		StartTime: start,
	})
	if err != nil {
		return false, fmt.Errorf("availability check failed: %w", err)
	}
	return count == 0, nil
}
