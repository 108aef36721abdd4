package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minipay/ledger-api/internal/core/domain"
	"github.com/minipay/ledger-api/internal/core/ports"
)

// WalletService implements the transfer operations. All multi-step balance
// mutations go through the TransferStore, which executes them atomically;
// this service only resolves identities and validates amounts.
type WalletService struct {
	accounts  ports.AccountRepository
	products  ports.ProductRepository
	ledger    ports.LedgerRepository
	transfers ports.TransferStore
	log       zerolog.Logger
}

func NewWalletService(
	accounts ports.AccountRepository,
	products ports.ProductRepository,
	ledger ports.LedgerRepository,
	transfers ports.TransferStore,
	log zerolog.Logger,
) *WalletService {
	return &WalletService{
		accounts:  accounts,
		products:  products,
		ledger:    ledger,
		transfers: transfers,
		log:       log,
	}
}

// Fund credits amount to the account and returns the new balance.
func (s *WalletService) Fund(ctx context.Context, accountID int64, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	balance, err := s.transfers.Deposit(ctx, accountID, amount)
	if err != nil {
		return 0, err
	}

	s.log.Info().Int64("account_id", accountID).Float64("amount", amount).Msg("account funded")
	return balance, nil
}

// Pay moves amount from the payer to the named recipient and returns the
// payer's new balance.
func (s *WalletService) Pay(ctx context.Context, payerID int64, recipient string, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}

	to, err := s.accounts.FindByUsername(ctx, recipient)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return 0, domain.ErrRecipientNotFound
		}
		return 0, err
	}

	balance, err := s.transfers.Transfer(ctx, payerID, to.ID, amount)
	if err != nil {
		return 0, err
	}

	s.log.Info().
		Int64("payer_id", payerID).
		Int64("recipient_id", to.ID).
		Float64("amount", amount).
		Msg("payment completed")
	return balance, nil
}

// Buy debits the product price from the account. The returned balance is
// the pre-debit snapshot minus the price, not a post-write re-read.
func (s *WalletService) Buy(ctx context.Context, accountID, productID int64) (*ports.PurchaseResult, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	balance, err := s.accounts.Balance(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if balance < product.Price {
		return nil, domain.ErrInsufficientFunds
	}

	if err := s.transfers.Purchase(ctx, accountID, product.Price); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("account_id", accountID).
		Int64("product_id", product.ID).
		Float64("price", product.Price).
		Msg("product purchased")

	return &ports.PurchaseResult{Product: product, Balance: balance - product.Price}, nil
}

func (s *WalletService) Balance(ctx context.Context, accountID int64) (float64, error) {
	return s.accounts.Balance(ctx, accountID)
}

// Statement returns the account's transactions newest first.
func (s *WalletService) Statement(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	return s.ledger.ListByAccount(ctx, accountID)
}
