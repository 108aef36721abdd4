package ports

import (
	"context"

	"github.com/minipay/ledger-api/internal/core/domain"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Delete(ctx context.Context, accountID int64) error
	ListUsers(ctx context.Context) ([]domain.AccountSummary, error)
}

// Verifier resolves a credential pair to an account or fails with
// domain.ErrUnauthorized. Called on every authenticated request; there is
// no session state.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (*domain.Account, error)
}
