package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// PurchaseResult reports a completed buy. Balance is computed from the
// pre-debit snapshot (balance - price), not re-read after the write.
type PurchaseResult struct {
	Product *domain.Product
	Balance float64
}

// WalletService implements the transfer operations: fund, pay, buy, and
// the read-only balance/statement queries.
type WalletService interface {
	Fund(ctx context.Context, accountID int64, amount float64) (float64, error)
	Pay(ctx context.Context, payerID int64, recipient string, amount float64) (float64, error)
	Buy(ctx context.Context, accountID, productID int64) (*PurchaseResult, error)
	Balance(ctx context.Context, accountID int64) (float64, error)
	Statement(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}
