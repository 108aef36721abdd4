package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

// AccountService implements registration, deletion, and the public listing.
type AccountService struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("account_id", account.ID).Str("username", username).Msg("account registered")
	return account, nil
}

// Delete removes the account. Its ledger rows survive as audit history.
func (s *AccountService) Delete(ctx context.Context, accountID int64) error {
	if err := s.repo.Delete(ctx, accountID); err != nil {
		return err
	}
	s.log.Info().Int64("account_id", accountID).Msg("account deleted")
	return nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]domain.AccountSummary, error) {
	return s.repo.List(ctx)
}
