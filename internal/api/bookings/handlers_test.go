package bookings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pcmclub/courtbook/internal/api/auth"
	"github.com/pcmclub/courtbook/internal/booking"
	appdb "github.com/pcmclub/courtbook/internal/db"
	"github.com/pcmclub/courtbook/internal/testutil"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

func setupHandlers(t *testing.T) *appdb.DB {
	t.Helper()

	database := testutil.NewTestDB(t)
	svc := booking.NewService(database, fixedClock{now: testNow})

	queries = nil
	service = nil
	emailClient = nil
	handlerOnce = sync.Once{}
	InitHandlers(database, svc, nil)

	return database
}

func authedRequest(method, target string, body string, memberID int64) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(auth.ContextWithMemberID(r.Context(), memberID))
}

func TestHandleBookingCreate(t *testing.T) {
	database := setupHandlers(t)

	memberID := testutil.CreateMember(t, database, "alice", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	body := fmt.Sprintf(`{"court_id": %d, "start_time": %q, "end_time": %q}`,
		courtID, start.Format(time.RFC3339), start.Add(2*time.Hour).Format(time.RFC3339))

	w := httptest.NewRecorder()
	HandleBookingCreate(w, authedRequest(http.MethodPost, "/api/v1/bookings", body, memberID))

	if w.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp createBookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Price != 200000 || resp.Balance != 300000 {
		t.Fatalf("response: price %d balance %d", resp.Price, resp.Balance)
	}
	if resp.Booking.MemberID != memberID {
		t.Fatalf("booking owner: got %d, want %d", resp.Booking.MemberID, memberID)
	}
}

func TestHandleBookingCreateUnauthenticated(t *testing.T) {
	setupHandlers(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{}`))
	HandleBookingCreate(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestHandleBookingCreateValidation(t *testing.T) {
	database := setupHandlers(t)
	memberID := testutil.CreateMember(t, database, "bob", 500000)

	cases := []struct {
		name string
		body string
	}{
		{"missing court", `{"start_time": "2026-09-02T10:00:00Z", "end_time": "2026-09-02T12:00:00Z"}`},
		{"bad start time", `{"court_id": 1, "start_time": "tomorrow", "end_time": "2026-09-02T12:00:00Z"}`},
		{"unknown field", `{"court_id": 1, "court": 2}`},
		{"not json", `court_id=1`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleBookingCreate(w, authedRequest(http.MethodPost, "/api/v1/bookings", tc.body, memberID))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleBookingCreateConflict(t *testing.T) {
	database := setupHandlers(t)

	aliceID := testutil.CreateMember(t, database, "alice", 500000)
	bobID := testutil.CreateMember(t, database, "bob", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	testutil.CreateConfirmedBooking(t, database, aliceID, courtID, start, start.Add(time.Hour), 100000)

	body := fmt.Sprintf(`{"court_id": %d, "start_time": %q, "end_time": %q}`,
		courtID, start.Format(time.RFC3339), start.Add(time.Hour).Format(time.RFC3339))

	w := httptest.NewRecorder()
	HandleBookingCreate(w, authedRequest(http.MethodPost, "/api/v1/bookings", body, bobID))

	if w.Code != http.StatusConflict {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestHandleBookingCreateInsufficientFunds(t *testing.T) {
	database := setupHandlers(t)

	memberID := testutil.CreateMember(t, database, "carol", 1000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)

	start := testNow.Add(24 * time.Hour)
	body := fmt.Sprintf(`{"court_id": %d, "start_time": %q, "end_time": %q}`,
		courtID, start.Format(time.RFC3339), start.Add(time.Hour).Format(time.RFC3339))

	w := httptest.NewRecorder()
	HandleBookingCreate(w, authedRequest(http.MethodPost, "/api/v1/bookings", body, memberID))

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusPaymentRequired)
	}
}

func TestHandleMyBookings(t *testing.T) {
	database := setupHandlers(t)

	memberID := testutil.CreateMember(t, database, "dave", 500000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)
	start := testNow.Add(24 * time.Hour)
	testutil.CreateConfirmedBooking(t, database, memberID, courtID, start, start.Add(time.Hour), 100000)

	w := httptest.NewRecorder()
	HandleMyBookings(w, authedRequest(http.MethodGet, "/api/v1/bookings/my", "", memberID))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusOK)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: got %d, want 1", len(items))
	}
}

func TestHandleBookingCancel(t *testing.T) {
	database := setupHandlers(t)

	memberID := testutil.CreateMember(t, database, "erin", 300000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)
	start := testNow.Add(24 * time.Hour)
	bookingID := testutil.CreateConfirmedBooking(t, database, memberID, courtID, start, start.Add(2*time.Hour), 200000)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", bookingID), "", memberID)
	r.SetPathValue("id", fmt.Sprintf("%d", bookingID))
	HandleBookingCancel(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp cancelBookingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Refund != 200000 || resp.Balance != 500000 {
		t.Fatalf("response: refund %d balance %d", resp.Refund, resp.Balance)
	}
}

func TestHandleBookingCancelNotFound(t *testing.T) {
	database := setupHandlers(t)
	memberID := testutil.CreateMember(t, database, "frank", 300000)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, "/api/v1/bookings/999", "", memberID)
	r.SetPathValue("id", "999")
	HandleBookingCancel(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandleBookingCancelTooLate(t *testing.T) {
	database := setupHandlers(t)

	memberID := testutil.CreateMember(t, database, "grace", 300000)
	courtID := testutil.CreateCourt(t, database, "Court 1", 100000)
	bookingID := testutil.CreateConfirmedBooking(t, database, memberID, courtID,
		testNow.Add(-time.Hour), testNow.Add(time.Hour), 200000)

	w := httptest.NewRecorder()
	r := authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", bookingID), "", memberID)
	r.SetPathValue("id", fmt.Sprintf("%d", bookingID))
	HandleBookingCancel(w, r)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusForbidden)
	}
}
