package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// TransferStore runs each balance mutation and its ledger append in one
// database transaction. The payer-side debit is a conditional UPDATE
// (balance >= amount in the WHERE clause); zero rows affected means
// insufficient funds and rolls the whole transaction back.
type TransferStore struct {
	db *gorm.DB
}

func NewTransferStore(db *gorm.DB) *TransferStore {
	return &TransferStore{db: db}
}

func (s *TransferStore) Deposit(ctx context.Context, accountID int64, amount float64) (float64, error) {
	var balance float64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := credit(tx, accountID, amount); err != nil {
			return err
		}
		if err := appendRow(tx, accountID, amount, domain.KindCredit); err != nil {
			return err
		}
		return readBalance(tx, accountID, &balance)
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *TransferStore) Transfer(ctx context.Context, payerID, recipientID int64, amount float64) (float64, error) {
	var balance float64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := debitIfSufficient(tx, payerID, amount); err != nil {
			return err
		}
		if err := credit(tx, recipientID, amount); err != nil {
			return err
		}
		if err := appendRow(tx, payerID, amount, domain.KindDebit); err != nil {
			return err
		}
		return readBalance(tx, payerID, &balance)
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *TransferStore) Purchase(ctx context.Context, accountID int64, amount float64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := debitIfSufficient(tx, accountID, amount); err != nil {
			return err
		}
		return appendRow(tx, accountID, amount, domain.KindDebit)
	})
}

func debitIfSufficient(tx *gorm.DB, accountID int64, amount float64) error {
	result := tx.Model(&domain.Account{}).
		Where("id = ? AND balance >= ?", accountID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return fmt.Errorf("debit account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func credit(tx *gorm.DB, accountID int64, amount float64) error {
	result := tx.Model(&domain.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return fmt.Errorf("credit account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func appendRow(tx *gorm.DB, accountID int64, amount float64, kind string) error {
	row := &domain.Transaction{
		AccountID: accountID,
		Amount:    amount,
		Kind:      kind,
	}
	if err := tx.Create(row).Error; err != nil {
		return fmt.Errorf("append transaction: %w", err)
	}
	return nil
}

func readBalance(tx *gorm.DB, accountID int64, out *float64) error {
	if err := tx.Model(&domain.Account{}).Where("id = ?", accountID).Pluck("balance", out).Error; err != nil {
		return fmt.Errorf("read balance: %w", err)
	}
	return nil
}
