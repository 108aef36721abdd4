package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

// CredentialCache remembers recently verified credential pairs (Redis).
// A nil cache disables the optimisation without changing behaviour.
type CredentialCache interface {
	Check(ctx context.Context, username, password string) (bool, error)
	Mark(ctx context.Context, username, password string) error
}

// AuthService is the identity verifier: it resolves a credential pair to an
// account or fails with domain.ErrUnauthorized. Every request re-verifies;
// there are no sessions and no lockout.
type AuthService struct {
	repo  ports.AccountRepository
	cache CredentialCache
	log   zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, cache CredentialCache, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, cache: cache, log: log}
}

func (s *AuthService) Verify(ctx context.Context, username, password string) (*domain.Account, error) {
	if username == "" || password == "" {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if s.cache != nil {
		hit, err := s.cache.Check(ctx, username, password)
		if err != nil {
			s.log.Warn().Err(err).Msg("credential cache check failed, falling back to bcrypt")
		} else if hit {
			return account, nil
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	if s.cache != nil {
		if err := s.cache.Mark(ctx, username, password); err != nil {
			s.log.Warn().Err(err).Msg("failed to set credential cache key")
		}
	}

	return account, nil
}
