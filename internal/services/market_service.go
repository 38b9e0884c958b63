package services

import (
	"cmp"
	"math"
	"slices"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// topMoversCount is how many stocks the overview lists as top movers
const topMoversCount = 4

// mockIndices are fixed display values; there is no live index feed.
var mockIndices = models.MarketIndices{
	Nifty50:   models.IndexQuote{Value: 1967425, Change: 15632, ChangePercent: 80},
	Sensex:    models.IndexQuote{Value: 6642809, Change: 38990, ChangePercent: 60},
	BankNifty: models.IndexQuote{Value: 4523875, Change: -14225, ChangePercent: -30},
	Nasdaq:    models.IndexQuote{Value: 1597352, Change: 18934, ChangePercent: 120},
}

// MarketService derives the dashboard's market overview
type MarketService interface {
	Overview() models.MarketOverview
}

type marketService struct {
	stocks StockService
}

func NewMarketService(stocks StockService) MarketService {
	return &marketService{stocks: stocks}
}

// Overview is recomputed from the current stocks on every call.
func (s *marketService) Overview() models.MarketOverview {
	return BuildOverview(s.stocks.GetStocks())
}

// BuildOverview computes sector means and top movers for the given stocks.
func BuildOverview(stocks []models.Stock) models.MarketOverview {
	return models.MarketOverview{
		Indices:           mockIndices,
		SectorPerformance: sectorPerformance(stocks),
		TopMovers:         topMovers(stocks, topMoversCount),
	}
}

// sectorPerformance lists sectors in the order they are first seen
func sectorPerformance(stocks []models.Stock) []models.SectorPerformance {
	type bucket struct {
		total int64
		count int64
	}

	var order []string
	buckets := make(map[string]*bucket)
	for _, stock := range stocks {
		b, ok := buckets[stock.Sector]
		if !ok {
			b = &bucket{}
			buckets[stock.Sector] = b
			order = append(order, stock.Sector)
		}
		b.total += stock.ChangePercent
		b.count++
	}

	result := make([]models.SectorPerformance, 0, len(order))
	for _, sector := range order {
		b := buckets[sector]
		result = append(result, models.SectorPerformance{
			Sector:        sector,
			ChangePercent: roundHalfUp(float64(b.total) / float64(b.count)),
		})
	}
	return result
}

func topMovers(stocks []models.Stock, n int) []models.Stock {
	movers := slices.Clone(stocks)
	slices.SortStableFunc(movers, func(a, b models.Stock) int {
		return cmp.Compare(abs(b.ChangePercent), abs(a.ChangePercent))
	})
	if len(movers) > n {
		movers = movers[:n]
	}
	if movers == nil {
		movers = []models.Stock{}
	}
	return movers
}

// roundHalfUp rounds .5 towards positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
