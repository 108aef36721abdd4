package domain

import "time"

// Transaction kinds. A credit increases the account balance, a debit
// decreases it; the amount is always the positive magnitude.
const (
	KindCredit = "credit"
	KindDebit  = "debit"
)

// Transaction is one row of the append-only ledger. Rows are created as a
// side effect of a balance mutation and are never updated or deleted.
type Transaction struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID int64     `gorm:"index;not null" json:"account_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Kind      string    `gorm:"type:varchar(16);not null" json:"kind"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (Transaction) TableName() string {
	return "transactions"
}
