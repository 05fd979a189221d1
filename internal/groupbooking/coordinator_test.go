package groupbooking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pcmclub/courtbook/internal/booking"
	appdb "github.com/pcmclub/courtbook/internal/db"
	"github.com/pcmclub/courtbook/internal/domain"
	"github.com/pcmclub/courtbook/internal/groupbooking"
	"github.com/pcmclub/courtbook/internal/testutil"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

func newTestCoordinator(t *testing.T) (*groupbooking.Coordinator, *appdb.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	svc := booking.NewService(database, fixedClock{now: testNow})
	return groupbooking.NewCoordinator(database, svc), database
}

func TestCreateGroupBooking(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	testutil.CreateMember(t, database, "bob", 500000)
	testutil.CreateMember(t, database, "carol", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	result, err := coord.Create(ctx, creatorID, courtID, start, start.Add(3*time.Hour),
		[]string{"bob", "carol"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if result.TotalPrice != 300000 {
		t.Fatalf("total price: got %d, want 300000", result.TotalPrice)
	}
	if result.ShareAmount != 100000 {
		t.Fatalf("share amount: got %d, want 100000", result.ShareAmount)
	}
	if result.Group.Status != "Pending" {
		t.Fatalf("status: %s", result.Group.Status)
	}

	unpaid, err := database.Queries.CountUnpaidGroupShares(ctx, result.Group.ID)
	if err != nil {
		t.Fatalf("count unpaid: %v", err)
	}
	if unpaid != 3 {
		t.Fatalf("unpaid shares: got %d, want 3", unpaid)
	}

	// Proposal alone charges nobody.
	creator, err := database.Queries.GetMemberByID(ctx, creatorID)
	if err != nil {
		t.Fatalf("load creator: %v", err)
	}
	if creator.WalletBalance != 500000 {
		t.Fatalf("creator charged on proposal: %d", creator.WalletBalance)
	}
}

// Integer division leaves the remainder unallocated.
func TestCreateGroupBookingShareRemainder(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 125000)

	start := testNow.Add(24 * time.Hour)
	result, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if result.ShareAmount != 62500 {
		t.Fatalf("share amount: got %d, want 62500", result.ShareAmount)
	}
}

func TestCreateGroupBookingUnknownInvitee(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	_, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"bob", "nosuchmember"})
	if !errors.Is(err, domain.ErrMemberNotFound) {
		t.Fatalf("expected member not found, got %v", err)
	}

	// All-or-nothing: no group row survives a failed creation.
	groups, err := database.Queries.ListGroupBookingsByMember(ctx, creatorID)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("group created despite unknown invitee")
	}
}

func TestCreateGroupBookingRejectsDuplicateInvitee(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	_, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"bob", "bob"})
	if !errors.Is(err, domain.ErrInvalidInvitee) {
		t.Fatalf("expected invalid invitee, got %v", err)
	}

	groups, err := database.Queries.ListGroupBookingsByMember(ctx, creatorID)
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 0 {
		t.Fatalf("group created despite duplicate invitee")
	}
}

func TestCreateGroupBookingRejectsSelfInvite(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	_, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"alice"})
	if !errors.Is(err, domain.ErrInvalidInvitee) {
		t.Fatalf("expected invalid invitee, got %v", err)
	}
}

func TestPayShare(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(2*time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	result, err := coord.PayShare(ctx, bobID, created.Group.ID)
	if err != nil {
		t.Fatalf("pay share: %v", err)
	}
	if result.Balance != 400000 {
		t.Fatalf("balance: got %d, want 400000", result.Balance)
	}
	if result.Finalized {
		t.Fatalf("finalized with an unpaid share outstanding")
	}

	bob, err := database.Queries.GetMemberByID(ctx, bobID)
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if bob.TotalSpent != 100000 {
		t.Fatalf("total spent: got %d, want 100000", bob.TotalSpent)
	}
}

func TestPayShareTwice(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(2*time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := coord.PayShare(ctx, bobID, created.Group.ID); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	_, err = coord.PayShare(ctx, bobID, created.Group.ID)
	if !errors.Is(err, domain.ErrShareAlreadyPaid) {
		t.Fatalf("expected already paid, got %v", err)
	}

	// The second attempt charged nothing.
	bob, err := database.Queries.GetMemberByID(ctx, bobID)
	if err != nil {
		t.Fatalf("load member: %v", err)
	}
	if bob.WalletBalance != 400000 {
		t.Fatalf("balance after duplicate payment: got %d, want 400000", bob.WalletBalance)
	}
}

func TestPayShareNotAMember(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	testutil.CreateMember(t, database, "bob", 500000)
	outsiderID := testutil.CreateMember(t, database, "mallory", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	_, err = coord.PayShare(ctx, outsiderID, created.Group.ID)
	if !errors.Is(err, domain.ErrNotGroupMember) {
		t.Fatalf("expected not a group member, got %v", err)
	}
}

func TestPayShareInsufficientFunds(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 50000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(2*time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	_, err = coord.PayShare(ctx, bobID, created.Group.ID)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}

	// The share stays payable.
	unpaid, err := database.Queries.CountUnpaidGroupShares(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("count unpaid: %v", err)
	}
	if unpaid != 2 {
		t.Fatalf("unpaid shares: got %d, want 2", unpaid)
	}
}

func TestLastPaymentFinalizesGroup(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	carolID := testutil.CreateMember(t, database, "carol", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(3*time.Hour),
		[]string{"bob", "carol"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	for _, id := range []int64{bobID, carolID} {
		result, err := coord.PayShare(ctx, id, created.Group.ID)
		if err != nil {
			t.Fatalf("pay share for member %d: %v", id, err)
		}
		if result.Finalized {
			t.Fatalf("finalized before the creator paid")
		}
	}

	final, err := coord.PayShare(ctx, creatorID, created.Group.ID)
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if !final.Finalized {
		t.Fatalf("last payment did not finalize the group")
	}
	if final.Booking.MemberID != creatorID {
		t.Fatalf("booking owner: got %d, want creator %d", final.Booking.MemberID, creatorID)
	}
	if final.Booking.TotalPrice != 300000 {
		t.Fatalf("booking price: got %d, want 300000", final.Booking.TotalPrice)
	}

	group, err := database.Queries.GetGroupBookingByID(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("load group: %v", err)
	}
	if group.Status != "Confirmed" {
		t.Fatalf("group status: %s", group.Status)
	}

	// Exactly one booking materialized, owned by the creator.
	bookings, err := database.Queries.ListBookingsByMember(ctx, creatorID)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("creator bookings: got %d, want 1", len(bookings))
	}
}

// If the group was already flipped to Confirmed by the time the last
// payment lands, no second booking materializes.
func TestFinalizationCreatesAtMostOneBooking(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(2*time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	if _, err := coord.PayShare(ctx, bobID, created.Group.ID); err != nil {
		t.Fatalf("first payment: %v", err)
	}

	// Simulate a racing payer having won the Pending->Confirmed transition.
	if _, err := database.ExecContext(ctx,
		"UPDATE group_bookings SET status = 'Confirmed' WHERE id = ?", created.Group.ID); err != nil {
		t.Fatalf("pre-confirm group: %v", err)
	}

	result, err := coord.PayShare(ctx, creatorID, created.Group.ID)
	if err != nil {
		t.Fatalf("final payment: %v", err)
	}
	if result.Finalized {
		t.Fatalf("finalized a group that was already confirmed")
	}

	bookings, err := database.Queries.ListBookingsByMember(ctx, creatorID)
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 0 {
		t.Fatalf("booking created for already-confirmed group: %d", len(bookings))
	}
}

func TestListForMember(t *testing.T) {
	coord, database := newTestCoordinator(t)
	ctx := context.Background()

	creatorID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	created, err := coord.Create(ctx, creatorID, courtID, start, start.Add(time.Hour),
		[]string{"bob"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	for _, id := range []int64{creatorID, bobID} {
		groups, err := coord.ListForMember(ctx, id)
		if err != nil {
			t.Fatalf("list for member %d: %v", id, err)
		}
		if len(groups) != 1 || groups[0].ID != created.Group.ID {
			t.Fatalf("member %d: unexpected group list %+v", id, groups)
		}
	}
}
