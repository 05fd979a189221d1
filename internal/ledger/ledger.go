// Package ledger moves money on member wallets. Every balance change writes
// exactly one wallet transaction row in the caller's transaction.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbgen "github.com/pcmclub/courtbook/internal/db/generated"
	"github.com/pcmclub/courtbook/internal/domain"
)

// Kind labels a wallet transaction.
type Kind string

const (
	KindPayment         Kind = "Payment"
	KindRefund          Kind = "Refund"
	KindTopUp           Kind = "TopUpApproved"
	KindTournamentEntry Kind = "TournamentEntry"
)

// CountsAsSpend reports whether the kind accumulates into total_spent.
// Refunds never undo spend history.
func (k Kind) CountsAsSpend() bool {
	return k == KindPayment || k == KindTournamentEntry
}

// Entry is the committed result of a single ledger operation.
type Entry struct {
	Transaction dbgen.WalletTransaction
	Balance     int64
}

// Debit removes amount from the member's wallet. The balance guard runs as a
// conditional update so concurrent debits cannot drive the balance negative.
// Callers must pass transaction-scoped queries; the balance update and the
// transaction row commit or roll back together.
func Debit(ctx context.Context, q *dbgen.Queries, memberID, amount int64, kind Kind, description string) (Entry, error) {
	if amount < 0 {
		return Entry{}, domain.ErrInvalidAmount
	}

	rows, err := q.DebitMemberBalance(ctx, dbgen.DebitMemberBalanceParams{
		Amount:   amount,
		MemberID: memberID,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("debit member %d: %w", memberID, err)
	}
	if rows == 0 {
		if _, err := q.GetMemberByID(ctx, memberID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return Entry{}, domain.ErrMemberNotFound
			}
			return Entry{}, fmt.Errorf("load member %d: %w", memberID, err)
		}
		return Entry{}, domain.ErrInsufficientFunds
	}

	if kind.CountsAsSpend() {
		if err := q.AddMemberSpend(ctx, dbgen.AddMemberSpendParams{
			Amount:   amount,
			MemberID: memberID,
		}); err != nil {
			return Entry{}, fmt.Errorf("update member %d spend: %w", memberID, err)
		}
	}

	txn, err := q.CreateWalletTransaction(ctx, dbgen.CreateWalletTransactionParams{
		MemberID:    memberID,
		Amount:      -amount,
		Type:        string(kind),
		Description: description,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("record debit for member %d: %w", memberID, err)
	}

	balance, err := q.GetMemberBalance(ctx, memberID)
	if err != nil {
		return Entry{}, fmt.Errorf("load member %d balance: %w", memberID, err)
	}

	return Entry{Transaction: txn, Balance: balance}, nil
}

// Credit adds amount to the member's wallet and records the transaction.
func Credit(ctx context.Context, q *dbgen.Queries, memberID, amount int64, kind Kind, description string) (Entry, error) {
	if amount < 0 {
		return Entry{}, domain.ErrInvalidAmount
	}

	balance, err := q.CreditMemberBalance(ctx, dbgen.CreditMemberBalanceParams{
		Amount:   amount,
		MemberID: memberID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, domain.ErrMemberNotFound
		}
		return Entry{}, fmt.Errorf("credit member %d: %w", memberID, err)
	}

	txn, err := q.CreateWalletTransaction(ctx, dbgen.CreateWalletTransactionParams{
		MemberID:    memberID,
		Amount:      amount,
		Type:        string(kind),
		Description: description,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("record credit for member %d: %w", memberID, err)
	}

	return Entry{Transaction: txn, Balance: balance}, nil
}
