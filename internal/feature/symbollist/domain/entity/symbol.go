// Package entity defines the domain models for the symbollist feature.
package entity

import "time"

// Symbol is one watchlist entry: a tradable crypto pair whose daily series
// the service keeps warm. Code is the canonical pair spelling used against
// the providers (e.g. "BTCUSDT").
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
