package models

import (
	"time"
)

// SentimentLabel classifies market mood for a stock or article
type SentimentLabel string

const (
	SentimentBullish SentimentLabel = "bullish"
	SentimentBearish SentimentLabel = "bearish"
	SentimentNeutral SentimentLabel = "neutral"
)

// Stock is a listed equity. Price and Change are in minor currency units,
// ChangePercent is in basis points (235 = 2.35%).
type Stock struct {
	ID             string         `json:"id"`
	Symbol         string         `json:"symbol"`
	Name           string         `json:"name"`
	Sector         string         `json:"sector"`
	Price          int64          `json:"price"`
	Change         int64          `json:"change"`
	ChangePercent  int64          `json:"changePercent"`
	MarketCap      string         `json:"marketCap"`
	Volume         string         `json:"volume"`
	Sentiment      int            `json:"sentiment"`
	SentimentLabel SentimentLabel `json:"sentimentLabel"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

type NewStock struct {
	Symbol         string
	Name           string
	Sector         string
	Price          int64
	Change         int64
	ChangePercent  int64
	MarketCap      string
	Volume         string
	Sentiment      int
	SentimentLabel SentimentLabel
}

// StockPatch carries a partial stock update; nil fields are left untouched
type StockPatch struct {
	Symbol         *string
	Name           *string
	Sector         *string
	Price          *int64
	Change         *int64
	ChangePercent  *int64
	MarketCap      *string
	Volume         *string
	Sentiment      *int
	SentimentLabel *SentimentLabel
}
