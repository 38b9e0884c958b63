package store

import (
	"time"

	"github.com/vikasavnish/marketpulse/internal/models"
)

var seedStocks = []models.NewStock{
	{
		Symbol:         "TCS",
		Name:           "Tata Consultancy Services",
		Sector:         "IT Services",
		Price:          384725,
		Change:         8850,
		ChangePercent:  235,
		MarketCap:      "₹14.2L Cr",
		Volume:         "2.3M",
		Sentiment:      72,
		SentimentLabel: models.SentimentBullish,
	},
	{
		Symbol:         "HDFCBANK",
		Name:           "HDFC Bank Limited",
		Sector:         "Banking",
		Price:          158945,
		Change:         2860,
		ChangePercent:  183,
		MarketCap:      "₹8.7L Cr",
		Volume:         "1.8M",
		Sentiment:      68,
		SentimentLabel: models.SentimentBullish,
	},
	{
		Symbol:         "RELIANCE",
		Name:           "Reliance Industries Ltd",
		Sector:         "Energy",
		Price:          265480,
		Change:         -1325,
		ChangePercent:  -50,
		MarketCap:      "₹17.9L Cr",
		Volume:         "3.2M",
		Sentiment:      35,
		SentimentLabel: models.SentimentBearish,
	},
	{
		Symbol:         "INFY",
		Name:           "Infosys Limited",
		Sector:         "IT Services",
		Price:          143290,
		Change:         1945,
		ChangePercent:  138,
		MarketCap:      "₹6.1L Cr",
		Volume:         "1.5M",
		Sentiment:      52,
		SentimentLabel: models.SentimentNeutral,
	},
	{
		Symbol:         "ICICIBANK",
		Name:           "ICICI Bank Limited",
		Sector:         "Banking",
		Price:          124580,
		Change:         890,
		ChangePercent:  72,
		MarketCap:      "₹8.9L Cr",
		Volume:         "2.1M",
		Sentiment:      61,
		SentimentLabel: models.SentimentBullish,
	},
}

// seed loads the example market so the dashboard works without a feed.
// Only called from New, before the store is shared.
func (s *Store) seed() {
	for _, stock := range seedStocks {
		// symbols above are distinct and the store is empty
		_, _ = s.createStockLocked(stock)
	}

	now := s.now()

	var tcsIDs []string
	if tcs, ok := s.findStockBySymbol("TCS"); ok {
		tcsIDs = []string{tcs.ID}
	}

	s.createNewsLocked(models.NewNews{
		Title:       "TCS Reports Strong Q3 Earnings",
		Summary:     "Revenue growth of 12% YoY with margin expansion. Management optimistic about FY24 outlook.",
		Source:      "Economic Times",
		Sentiment:   models.SentimentBullish,
		StockIDs:    tcsIDs,
		PublishedAt: now.Add(-2 * time.Hour),
	})
	s.createNewsLocked(models.NewNews{
		Title:       "RBI Maintains Repo Rate at 6.5%",
		Summary:     "Central bank cites inflation concerns but acknowledges growth momentum in the economy.",
		Source:      "Reuters",
		Sentiment:   models.SentimentNeutral,
		StockIDs:    []string{},
		PublishedAt: now.Add(-4 * time.Hour),
	})
}
