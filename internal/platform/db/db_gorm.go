// Package db はウォッチリスト用のSQLite接続を提供します。
package db

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketdata_backend/internal/feature/symbollist/domain/entity"
)

// DefaultPath is the database file used when MARKET_DB_PATH is unset.
const DefaultPath = "marketdata.db"

// defaultSymbols は初回起動時に投入されるウォッチリストです。
var defaultSymbols = []entity.Symbol{
	{Code: "BTCUSDT", Name: "Bitcoin / Tether", IsActive: true, SortKey: 1},
	{Code: "ETHUSDT", Name: "Ethereum / Tether", IsActive: true, SortKey: 2},
	{Code: "SOLUSDT", Name: "Solana / Tether", IsActive: true, SortKey: 3},
}

// OpenDB はウォッチリストDBを開き、マイグレーションを実行します。
// テーブルが空の場合はデフォルトのウォッチリストを投入します。
func OpenDB() (*gorm.DB, error) {
	path := os.Getenv("MARKET_DB_PATH")
	if path == "" {
		path = DefaultPath
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.AutoMigrate(&entity.Symbol{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var count int64
	if err := db.Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count symbols: %w", err)
	}
	if count == 0 {
		rows := make([]entity.Symbol, len(defaultSymbols))
		copy(rows, defaultSymbols)
		if err := db.Create(&rows).Error; err != nil {
			return nil, fmt.Errorf("seed watchlist: %w", err)
		}
		slog.Info("seeded default watchlist", "count", len(rows))
	}

	return db, nil
}
