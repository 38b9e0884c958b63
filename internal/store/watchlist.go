package store

import (
	"fmt"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// WatchlistForUser returns the user's watchlist entries in insertion order,
// each joined with its stock. An entry whose stock no longer exists fails the
// whole call with ErrIntegrity.
func (s *Store) WatchlistForUser(userID string) ([]models.WatchlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []models.WatchlistItem{}
	for pair := s.watchlists.Oldest(); pair != nil; pair = pair.Next() {
		entry := pair.Value
		if entry.UserID != userID {
			continue
		}
		stock, ok := s.stocks.Get(entry.StockID)
		if !ok {
			return nil, fmt.Errorf("watchlist entry %s references stock %s: %w", entry.ID, entry.StockID, ErrIntegrity)
		}
		items = append(items, models.WatchlistItem{WatchlistEntry: entry, Stock: stock})
	}
	return items, nil
}

// AddToWatchlist stores a new entry. Both the user and the stock must exist.
func (s *Store) AddToWatchlist(in models.NewWatchlistEntry) (models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkRefsLocked(in.UserID, in.StockID); err != nil {
		return models.WatchlistEntry{}, err
	}

	entry := models.WatchlistEntry{
		ID:      s.newID(),
		UserID:  in.UserID,
		StockID: in.StockID,
		AddedAt: s.now(),
	}
	s.watchlists.Set(entry.ID, entry)

	return entry, nil
}

// RemoveFromWatchlist deletes the first entry matching userID and stockID.
// Later duplicates of the same pair are kept.
func (s *Store) RemoveFromWatchlist(userID, stockID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pair := s.watchlists.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.UserID == userID && pair.Value.StockID == stockID {
			s.watchlists.Delete(pair.Key)
			return true
		}
	}
	return false
}

func (s *Store) checkRefsLocked(userID, stockID string) error {
	if _, ok := s.users.Get(userID); !ok {
		return fmt.Errorf("user %s: %w", userID, ErrInvalidReference)
	}
	if _, ok := s.stocks.Get(stockID); !ok {
		return fmt.Errorf("stock %s: %w", stockID, ErrInvalidReference)
	}
	return nil
}
