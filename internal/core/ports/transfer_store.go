package ports

import "context"

// TransferStore executes multi-step balance mutations. Each method runs as
// a single database transaction: the balance update(s) and the ledger row
// commit together or not at all.
//
// Debits are conditional writes ("balance >= amount" in the WHERE clause);
// an unmet condition surfaces as domain.ErrInsufficientFunds with no state
// change, which closes the check-then-act window between reading a balance
// and writing it back.
type TransferStore interface {
	// Deposit credits amount to the account, appends a credit row, and
	// returns the new balance.
	Deposit(ctx context.Context, accountID int64, amount float64) (float64, error)

	// Transfer moves amount from payer to recipient and appends one debit
	// row for the payer. Returns the payer's new balance.
	Transfer(ctx context.Context, payerID, recipientID int64, amount float64) (float64, error)

	// Purchase debits amount from the account and appends one debit row.
	Purchase(ctx context.Context, accountID int64, amount float64) error
}
