package models

import (
	"time"
)

type News struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Summary     string         `json:"summary"`
	Source      string         `json:"source"`
	Sentiment   SentimentLabel `json:"sentiment"`
	StockIDs    []string       `json:"stockIds"`
	PublishedAt time.Time      `json:"publishedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
}

type NewNews struct {
	Title       string
	Summary     string
	Source      string
	Sentiment   SentimentLabel
	StockIDs    []string
	PublishedAt time.Time
}
