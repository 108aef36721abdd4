package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	Balance(ctx context.Context, id int64) (float64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.AccountSummary, error)
}
