package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pcmclub/courtbook/internal/db"
)

// NewTestDB creates a temporary SQLite database with migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	database, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("create test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})

	return database
}

// CreateMember inserts a member with the given wallet balance and returns its id.
func CreateMember(t *testing.T, database *db.DB, userName string, balance int64) int64 {
	t.Helper()

	result, err := database.ExecContext(context.Background(),
		"INSERT INTO members (user_name, full_name, email, wallet_balance) VALUES (?, ?, ?, ?)",
		userName,
		userName,
		userName+"@example.com",
		balance,
	)
	if err != nil {
		t.Fatalf("insert member: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("member id: %v", err)
	}
	return id
}

// CreateCourt inserts an active court and returns its id.
func CreateCourt(t *testing.T, database *db.DB, name string, pricePerHour int64) int64 {
	t.Helper()

	result, err := database.ExecContext(context.Background(),
		"INSERT INTO courts (name, price_per_hour, is_active) VALUES (?, ?, 1)",
		name,
		pricePerHour,
	)
	if err != nil {
		t.Fatalf("insert court: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("court id: %v", err)
	}
	return id
}

// CreateConfirmedBooking inserts a Confirmed booking row and returns its id.
func CreateConfirmedBooking(t *testing.T, database *db.DB, memberID, courtID int64, start, end time.Time, price int64) int64 {
	t.Helper()

	result, err := database.ExecContext(context.Background(),
		"INSERT INTO bookings (member_id, court_id, start_time, end_time, total_price, status) VALUES (?, ?, ?, ?, ?, 'Confirmed')",
		memberID,
		courtID,
		start,
		end,
		price,
	)
	if err != nil {
		t.Fatalf("insert booking: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("booking id: %v", err)
	}
	return id
}
