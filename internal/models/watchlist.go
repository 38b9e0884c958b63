package models

import (
	"time"
)

type WatchlistEntry struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	StockID string    `json:"stockId"`
	AddedAt time.Time `json:"addedAt"`
}

// WatchlistItem is a watchlist entry joined with the stock it references
type WatchlistItem struct {
	WatchlistEntry
	Stock Stock `json:"stock"`
}

type NewWatchlistEntry struct {
	UserID  string
	StockID string
}
