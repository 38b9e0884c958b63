package services

import (
	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/store"
)

type WatchlistService interface {
	GetUserWatchlist(userID string) ([]models.WatchlistItem, error)
	AddToWatchlist(entry models.NewWatchlistEntry) (models.WatchlistEntry, error)
	RemoveFromWatchlist(userID, stockID string) bool
}

type watchlistService struct {
	store *store.Store
}

func NewWatchlistService(s *store.Store) WatchlistService {
	return &watchlistService{store: s}
}

// GetUserWatchlist gets all watchlist entries for a user with their stock data
func (s *watchlistService) GetUserWatchlist(userID string) ([]models.WatchlistItem, error) {
	return s.store.WatchlistForUser(userID)
}

func (s *watchlistService) AddToWatchlist(entry models.NewWatchlistEntry) (models.WatchlistEntry, error) {
	return s.store.AddToWatchlist(entry)
}

func (s *watchlistService) RemoveFromWatchlist(userID, stockID string) bool {
	return s.store.RemoveFromWatchlist(userID, stockID)
}
