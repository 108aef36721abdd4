package sqlite

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/minipay/ledger-api/internal/core/domain"
)

// DefaultDSN keeps the whole store in memory for the process lifetime.
// Pass a file path for a durable single-file database instead.
const DefaultDSN = "file::memory:?cache=shared"

// Connect opens the embedded SQLite database and migrates the schema.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	// under concurrent transfers and keeps shared-cache memory DBs alive.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&domain.Account{},
		&domain.Transaction{},
		&domain.Product{},
	); err != nil {
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}

	return db, nil
}
