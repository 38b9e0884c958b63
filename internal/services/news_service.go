package services

import (
	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/store"
)

type NewsService interface {
	GetRecentNews(limit int) []models.News
	GetNewsForStock(stockID string) []models.News
	CreateNews(news models.NewNews) models.News
}

type newsService struct {
	store *store.Store
}

func NewNewsService(s *store.Store) NewsService {
	return &newsService{store: s}
}

func (s *newsService) GetRecentNews(limit int) []models.News {
	return s.store.RecentNews(limit)
}

func (s *newsService) GetNewsForStock(stockID string) []models.News {
	return s.store.NewsForStock(stockID)
}

func (s *newsService) CreateNews(news models.NewNews) models.News {
	return s.store.CreateNews(news)
}
