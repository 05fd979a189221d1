// Package booking creates and cancels single-party court reservations.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pcmclub/courtbook/internal/availability"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/domain"
	"github.com/pcmclub/courtbook/internal/ledger"
)

// Service orchestrates booking creation and cancellation. All read-then-write
// steps of one operation run inside a single database transaction.
type Service struct {
	store *appdb.DB
	clock Clock
}

func NewService(store *appdb.DB, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{store: store, clock: clock}
}

type CreateResult struct {
	Booking dbgen.Booking
	Price   int64
	Balance int64
}

type CancelResult struct {
	Refund  int64
	Balance int64
}

// WholeHours returns the number of whole hours in [start, end), truncating
// any fractional remainder. A 90-minute interval counts as one hour.
func WholeHours(start, end time.Time) int64 {
	return int64(end.Sub(start) / time.Hour)
}

// PriceFor prices an interval on a court: whole hours times the hourly rate.
func PriceFor(court dbgen.Court, start, end time.Time) (int64, error) {
	hours := WholeHours(start, end)
	if hours <= 0 {
		return 0, domain.ErrInvalidInterval
	}
	return hours * court.PricePerHour, nil
}

// Create books the court for the member over [start, end). The availability
// check, the wallet debit and the booking insert commit atomically; on any
// failure nothing is charged and nothing is booked.
func (s *Service) Create(ctx context.Context, memberID, courtID int64, start, end time.Time) (CreateResult, error) {
	var result CreateResult

	err := s.store.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		court, err := q.GetCourtByID(ctx, courtID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrCourtNotFound
			}
			return fmt.Errorf("load court %d: %w", courtID, err)
		}

		price, err := PriceFor(court, start, end)
		if err != nil {
			return err
		}

		free, err := availability.IsAvailable(ctx, q, courtID, start, end, 0)
		if err != nil {
			return err
		}
		if !free {
			return domain.ErrSlotTaken
		}

		entry, err := ledger.Debit(ctx, q, memberID, price, ledger.KindPayment,
			fmt.Sprintf("Court booking payment: %s", court.Name))
		if err != nil {
			return err
		}

		created, err := q.CreateBooking(ctx, dbgen.CreateBookingParams{
			MemberID:   memberID,
			CourtID:    courtID,
			StartTime:  start,
			EndTime:    end,
			TotalPrice: price,
		})
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		result = CreateResult{Booking: created, Price: price, Balance: entry.Balance}
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}
	return result, nil
}

// CreatePaid inserts a Confirmed booking without touching the wallet. It is
// the finalization step for group bookings, whose shares were already
// collected, and must run on the caller's transaction-scoped queries.
func (s *Service) CreatePaid(ctx context.Context, q *dbgen.Queries, memberID, courtID int64, start, end time.Time, price int64) (dbgen.Booking, error) {
	created, err := q.CreateBooking(ctx, dbgen.CreateBookingParams{
		MemberID:   memberID,
		CourtID:    courtID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: price,
	})
	if err != nil {
		return dbgen.Booking{}, fmt.Errorf("create booking: %w", err)
	}
	return created, nil
}

// Cancel refunds the full price and removes the booking. Only the owning
// member may cancel, and only before the booking starts.
func (s *Service) Cancel(ctx context.Context, memberID, bookingID int64) (CancelResult, error) {
	var result CancelResult

	err := s.store.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		b, err := q.GetBookingForMember(ctx, dbgen.GetBookingForMemberParams{
			ID:       bookingID,
			MemberID: memberID,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("load booking %d: %w", bookingID, err)
		}

		if !b.StartTime.After(s.clock.Now()) {
			return domain.ErrCancelTooLate
		}

		entry, err := ledger.Credit(ctx, q, memberID, b.TotalPrice, ledger.KindRefund,
			fmt.Sprintf("Refund for cancelled booking %d", b.ID))
		if err != nil {
			return err
		}

		if err := q.DeleteBooking(ctx, b.ID); err != nil {
			return fmt.Errorf("delete booking %d: %w", b.ID, err)
		}

		result = CancelResult{Refund: b.TotalPrice, Balance: entry.Balance}
		return nil
	})
	if err != nil {
		return CancelResult{}, err
	}
	return result, nil
}

// ListForMember returns the member's bookings, newest first.
func (s *Service) ListForMember(ctx context.Context, memberID int64) ([]dbgen.ListBookingsByMemberRow, error) {
	return s.store.Queries.ListBookingsByMember(ctx, memberID)
}
