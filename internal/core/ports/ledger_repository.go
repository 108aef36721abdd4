package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// LedgerRepository reads the append-only transaction log. Writes happen
// only through TransferStore, inside the same database transaction as the
// balance mutation they record.
type LedgerRepository interface {
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
}
