package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minipay/ledger-api/internal/core/domain"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// ListByAccount returns the account's transactions newest first. The id is
// the tie-break for rows sharing a timestamp.
func (r *LedgerRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}
