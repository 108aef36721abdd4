package domain

import "time"

// Account is a registered identity with a credential and a balance.
// PasswordHash is a bcrypt hash and is never serialised.
type Account struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Balance      float64   `gorm:"not null;default:0" json:"balance"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountSummary is the public listing shape: no balance, no credential.
type AccountSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
