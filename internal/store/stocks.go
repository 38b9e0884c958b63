package store

import (
	"fmt"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// AllStocks returns every stock in insertion order
func (s *Store) AllStocks() []models.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stocks := make([]models.Stock, 0, s.stocks.Len())
	for pair := s.stocks.Oldest(); pair != nil; pair = pair.Next() {
		stocks = append(stocks, pair.Value)
	}
	return stocks
}

func (s *Store) StockByID(id string) (models.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock, ok := s.stocks.Get(id)
	if !ok {
		return models.Stock{}, fmt.Errorf("stock %s: %w", id, ErrNotFound)
	}
	return stock, nil
}

// StockBySymbol returns the first stock, in insertion order, with the given symbol.
func (s *Store) StockBySymbol(symbol string) (models.Stock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stock, ok := s.findStockBySymbol(symbol)
	if !ok {
		return models.Stock{}, fmt.Errorf("stock %q: %w", symbol, ErrNotFound)
	}
	return stock, nil
}

func (s *Store) findStockBySymbol(symbol string) (models.Stock, bool) {
	for pair := s.stocks.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Symbol == symbol {
			return pair.Value, true
		}
	}
	return models.Stock{}, false
}

func (s *Store) CreateStock(in models.NewStock) (models.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createStockLocked(in)
}

func (s *Store) createStockLocked(in models.NewStock) (models.Stock, error) {
	if _, taken := s.findStockBySymbol(in.Symbol); taken {
		return models.Stock{}, fmt.Errorf("symbol %q: %w", in.Symbol, ErrDuplicate)
	}

	stock := models.Stock{
		ID:             s.newID(),
		Symbol:         in.Symbol,
		Name:           in.Name,
		Sector:         in.Sector,
		Price:          in.Price,
		Change:         in.Change,
		ChangePercent:  in.ChangePercent,
		MarketCap:      in.MarketCap,
		Volume:         in.Volume,
		Sentiment:      in.Sentiment,
		SentimentLabel: in.SentimentLabel,
		UpdatedAt:      s.now(),
	}
	s.stocks.Set(stock.ID, stock)

	return stock, nil
}

// UpdateStock merges patch over the stored stock and re-stamps UpdatedAt,
// even when the patch changes nothing. UpdatedAt never moves backwards.
func (s *Store) UpdateStock(id string, patch models.StockPatch) (models.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stock, ok := s.stocks.Get(id)
	if !ok {
		return models.Stock{}, fmt.Errorf("stock %s: %w", id, ErrNotFound)
	}

	if patch.Symbol != nil && *patch.Symbol != stock.Symbol {
		if _, taken := s.findStockBySymbol(*patch.Symbol); taken {
			return models.Stock{}, fmt.Errorf("symbol %q: %w", *patch.Symbol, ErrDuplicate)
		}
		stock.Symbol = *patch.Symbol
	}
	if patch.Name != nil {
		stock.Name = *patch.Name
	}
	if patch.Sector != nil {
		stock.Sector = *patch.Sector
	}
	if patch.Price != nil {
		stock.Price = *patch.Price
	}
	if patch.Change != nil {
		stock.Change = *patch.Change
	}
	if patch.ChangePercent != nil {
		stock.ChangePercent = *patch.ChangePercent
	}
	if patch.MarketCap != nil {
		stock.MarketCap = *patch.MarketCap
	}
	if patch.Volume != nil {
		stock.Volume = *patch.Volume
	}
	if patch.Sentiment != nil {
		stock.Sentiment = *patch.Sentiment
	}
	if patch.SentimentLabel != nil {
		stock.SentimentLabel = *patch.SentimentLabel
	}

	if now := s.now(); now.After(stock.UpdatedAt) {
		stock.UpdatedAt = now
	}

	s.stocks.Set(id, stock)
	return stock, nil
}

// DeleteStock removes a stock. Watchlist entries, alerts and news that
// reference it are left in place; joins over them fail with ErrIntegrity.
func (s *Store) DeleteStock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.stocks.Delete(id)
	return ok
}
