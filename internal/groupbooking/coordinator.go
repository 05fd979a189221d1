// Package groupbooking coordinates multi-party bookings: a pending group
// with one owed share per participant, paid independently; the last
// successful payment materializes the court booking.
package groupbooking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pcmclub/courtbook/internal/booking"
	appdb "github.com/pcmclub/courtbook/internal/db"
	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/domain"
	"github.com/pcmclub/courtbook/internal/ledger"
)

type Coordinator struct {
	store    *appdb.DB
	bookings *booking.Service
}

func NewCoordinator(store *appdb.DB, bookings *booking.Service) *Coordinator {
	return &Coordinator{store: store, bookings: bookings}
}

type CreateResult struct {
	Group       dbgen.GroupBooking
	TotalPrice  int64
	ShareAmount int64
}

type PayResult struct {
	Balance   int64
	Finalized bool
	Booking   dbgen.Booking
}

// Create proposes a group booking. Every invited username must resolve to an
// existing member or the whole creation is aborted. The slot is not charged
// and not held; it is claimed only when the last share is paid. The share is
// totalPrice divided by participant count (creator included) with integer
// truncation; a division remainder stays unallocated.
func (c *Coordinator) Create(ctx context.Context, creatorID, courtID int64, start, end time.Time, invitedUserNames []string) (CreateResult, error) {
	var result CreateResult

	err := c.store.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		court, err := q.GetCourtByID(ctx, courtID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrCourtNotFound
			}
			return fmt.Errorf("load court %d: %w", courtID, err)
		}

		totalPrice, err := booking.PriceFor(court, start, end)
		if err != nil {
			return err
		}

		invited := make([]dbgen.Member, 0, len(invitedUserNames))
		seen := map[int64]bool{creatorID: true}
		for _, userName := range invitedUserNames {
			m, err := q.GetMemberByUserName(ctx, userName)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("%w: %s", domain.ErrMemberNotFound, userName)
				}
				return fmt.Errorf("load member %q: %w", userName, err)
			}
			if seen[m.ID] {
				// Covers both a repeated invitee and the creator inviting
				// themself; each participant holds exactly one share.
				return fmt.Errorf("%w: %s", domain.ErrInvalidInvitee, userName)
			}
			seen[m.ID] = true
			invited = append(invited, m)
		}

		shareAmount := totalPrice / int64(len(invited)+1)

		group, err := q.CreateGroupBooking(ctx, dbgen.CreateGroupBookingParams{
			CreatorID:  creatorID,
			CourtID:    courtID,
			StartTime:  start,
			EndTime:    end,
			TotalPrice: totalPrice,
		})
		if err != nil {
			return fmt.Errorf("create group booking: %w", err)
		}

		if _, err := q.CreateGroupMember(ctx, dbgen.CreateGroupMemberParams{
			GroupBookingID: group.ID,
			MemberID:       creatorID,
			ShareAmount:    shareAmount,
		}); err != nil {
			return fmt.Errorf("add creator share: %w", err)
		}
		for _, m := range invited {
			if _, err := q.CreateGroupMember(ctx, dbgen.CreateGroupMemberParams{
				GroupBookingID: group.ID,
				MemberID:       m.ID,
				ShareAmount:    shareAmount,
			}); err != nil {
				return fmt.Errorf("add share for member %d: %w", m.ID, err)
			}
		}

		result = CreateResult{Group: group, TotalPrice: totalPrice, ShareAmount: shareAmount}
		return nil
	})
	if err != nil {
		return CreateResult{}, err
	}
	return result, nil
}

// PayShare collects one member's share. Paying twice never double-charges.
// When the payment settles the last unpaid share, the group flips to
// Confirmed and exactly one booking is created for the creator; the
// conditional Pending->Confirmed update guarantees at-most-once creation
// even if the last two payers race.
func (c *Coordinator) PayShare(ctx context.Context, memberID, groupID int64) (PayResult, error) {
	var result PayResult

	err := c.store.RunInTx(ctx, func(tx *appdb.DB) error {
		q := tx.Queries

		share, err := q.GetGroupMemberShare(ctx, dbgen.GetGroupMemberShareParams{
			GroupBookingID: groupID,
			MemberID:       memberID,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotGroupMember
			}
			return fmt.Errorf("load share for group %d: %w", groupID, err)
		}
		if share.IsPaid {
			return domain.ErrShareAlreadyPaid
		}

		entry, err := ledger.Debit(ctx, q, memberID, share.ShareAmount, ledger.KindPayment,
			fmt.Sprintf("Group booking %d share payment", groupID))
		if err != nil {
			return err
		}

		rows, err := q.MarkGroupSharePaid(ctx, share.ID)
		if err != nil {
			return fmt.Errorf("mark share %d paid: %w", share.ID, err)
		}
		if rows == 0 {
			// Lost a race with another payment for the same share.
			return domain.ErrShareAlreadyPaid
		}

		result = PayResult{Balance: entry.Balance}

		unpaid, err := q.CountUnpaidGroupShares(ctx, groupID)
		if err != nil {
			return fmt.Errorf("count unpaid shares for group %d: %w", groupID, err)
		}
		if unpaid > 0 {
			return nil
		}

		confirmed, err := q.ConfirmGroupBooking(ctx, groupID)
		if err != nil {
			return fmt.Errorf("confirm group %d: %w", groupID, err)
		}
		if confirmed == 0 {
			// Another payer already finalized the group.
			return nil
		}

		group, err := q.GetGroupBookingByID(ctx, groupID)
		if err != nil {
			return fmt.Errorf("load group %d: %w", groupID, err)
		}

		created, err := c.bookings.CreatePaid(ctx, q, group.CreatorID, group.CourtID,
			group.StartTime, group.EndTime, group.TotalPrice)
		if err != nil {
			return err
		}

		result.Finalized = true
		result.Booking = created
		return nil
	})
	if err != nil {
		return PayResult{}, err
	}
	return result, nil
}

// ListForMember returns every group booking the member holds a share in,
// newest first.
func (c *Coordinator) ListForMember(ctx context.Context, memberID int64) ([]dbgen.ListGroupBookingsByMemberRow, error) {
	return c.store.Queries.ListGroupBookingsByMember(ctx, memberID)
}
