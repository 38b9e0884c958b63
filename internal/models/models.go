package models

// Message represents a WebSocket message
type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content"`
}

// IndexQuote is a market index value. Value and Change are in minor units,
// ChangePercent in basis points.
type IndexQuote struct {
	Value         int64 `json:"value"`
	Change        int64 `json:"change"`
	ChangePercent int64 `json:"changePercent"`
}

type MarketIndices struct {
	Nifty50   IndexQuote `json:"nifty50"`
	Sensex    IndexQuote `json:"sensex"`
	BankNifty IndexQuote `json:"bankNifty"`
	Nasdaq    IndexQuote `json:"nasdaq"`
}

// SectorPerformance is the rounded mean change of all stocks in a sector
type SectorPerformance struct {
	Sector        string `json:"sector"`
	ChangePercent int64  `json:"changePercent"`
}

type MarketOverview struct {
	Indices           MarketIndices       `json:"indices"`
	SectorPerformance []SectorPerformance `json:"sectorPerformance"`
	TopMovers         []Stock             `json:"topMovers"`
}
