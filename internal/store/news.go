package store

import (
	"slices"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// DefaultNewsLimit is used by RecentNews when limit is not positive
const DefaultNewsLimit = 10

// RecentNews returns up to limit articles, most recently published first.
// Articles published at the same instant keep their insertion order.
func (s *Store) RecentNews(limit int) []models.News {
	if limit <= 0 {
		limit = DefaultNewsLimit
	}

	s.mu.RLock()
	articles := make([]models.News, 0, s.news.Len())
	for pair := s.news.Oldest(); pair != nil; pair = pair.Next() {
		articles = append(articles, copyNews(pair.Value))
	}
	s.mu.RUnlock()

	slices.SortStableFunc(articles, func(a, b models.News) int {
		return b.PublishedAt.Compare(a.PublishedAt)
	})

	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

// NewsForStock returns every article tagged with stockID, in insertion order
func (s *Store) NewsForStock(stockID string) []models.News {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := []models.News{}
	for pair := s.news.Oldest(); pair != nil; pair = pair.Next() {
		if slices.Contains(pair.Value.StockIDs, stockID) {
			articles = append(articles, copyNews(pair.Value))
		}
	}
	return articles
}

// CreateNews stores an article. PublishedAt is taken as given; only
// CreatedAt is assigned here.
func (s *Store) CreateNews(in models.NewNews) models.News {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createNewsLocked(in)
}

func (s *Store) createNewsLocked(in models.NewNews) models.News {
	article := models.News{
		ID:          s.newID(),
		Title:       in.Title,
		Summary:     in.Summary,
		Source:      in.Source,
		Sentiment:   in.Sentiment,
		StockIDs:    cloneOrEmpty(in.StockIDs),
		PublishedAt: in.PublishedAt,
		CreatedAt:   s.now(),
	}
	s.news.Set(article.ID, article)

	return copyNews(article)
}
