package services

import (
	"strings"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/store"
)

// StockService defines the interface for stock lookups and maintenance
type StockService interface {
	GetStocks() []models.Stock
	GetStockByID(id string) (models.Stock, error)
	GetStockBySymbol(symbol string) (models.Stock, error)
	CreateStock(stock models.NewStock) (models.Stock, error)
	UpdateStock(id string, patch models.StockPatch) (models.Stock, error)
}

type stockService struct {
	store *store.Store
}

func NewStockService(s *store.Store) StockService {
	return &stockService{store: s}
}

func (s *stockService) GetStocks() []models.Stock {
	return s.store.AllStocks()
}

func (s *stockService) GetStockByID(id string) (models.Stock, error) {
	return s.store.StockByID(id)
}

// GetStockBySymbol tries the symbol as given, then upper-cased, so that
// /api/stocks/tcs resolves the same as /api/stocks/TCS.
func (s *stockService) GetStockBySymbol(symbol string) (models.Stock, error) {
	stock, err := s.store.StockBySymbol(symbol)
	if err != nil && strings.ToUpper(symbol) != symbol {
		return s.store.StockBySymbol(strings.ToUpper(symbol))
	}
	return stock, err
}

func (s *stockService) CreateStock(stock models.NewStock) (models.Stock, error) {
	return s.store.CreateStock(stock)
}

func (s *stockService) UpdateStock(id string, patch models.StockPatch) (models.Stock, error) {
	return s.store.UpdateStock(id, patch)
}
