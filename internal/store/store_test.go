package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikasavnish/marketpulse/internal/models"
)

var epoch = time.Date(2024, 1, 15, 9, 15, 0, 0, time.UTC)

// stepClock advances by step on every reading
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(c.step)
	return c.t
}

func (c *stepClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *stepClock) {
	t.Helper()
	clock := &stepClock{t: epoch, step: time.Second}
	return New(append([]Option{WithClock(clock.Now)}, opts...)...), clock
}

func mustUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()
	user, err := s.CreateUser(models.NewUser{Username: username, Password: "secret"})
	require.NoError(t, err)
	return user
}

func mustStock(t *testing.T, s *Store, symbol string) models.Stock {
	t.Helper()
	stock, err := s.CreateStock(models.NewStock{
		Symbol:         symbol,
		Name:           symbol + " Corp",
		Sector:         "Test",
		Price:          10000,
		Sentiment:      50,
		SentimentLabel: models.SentimentNeutral,
	})
	require.NoError(t, err)
	return stock
}

func TestNew_Seed(t *testing.T) {
	s, _ := newTestStore(t)

	stocks := s.AllStocks()
	require.Len(t, stocks, 5)

	want := []struct {
		symbol        string
		price         int64
		change        int64
		changePercent int64
		sentiment     int
		label         models.SentimentLabel
	}{
		{"TCS", 384725, 8850, 235, 72, models.SentimentBullish},
		{"HDFCBANK", 158945, 2860, 183, 68, models.SentimentBullish},
		{"RELIANCE", 265480, -1325, -50, 35, models.SentimentBearish},
		{"INFY", 143290, 1945, 138, 52, models.SentimentNeutral},
		{"ICICIBANK", 124580, 890, 72, 61, models.SentimentBullish},
	}
	for i, w := range want {
		got := stocks[i]
		assert.Equal(t, w.symbol, got.Symbol)
		assert.Equal(t, w.price, got.Price, w.symbol)
		assert.Equal(t, w.change, got.Change, w.symbol)
		assert.Equal(t, w.changePercent, got.ChangePercent, w.symbol)
		assert.Equal(t, w.sentiment, got.Sentiment, w.symbol)
		assert.Equal(t, w.label, got.SentimentLabel, w.symbol)
		assert.NotEmpty(t, got.ID)
	}

	news := s.RecentNews(0)
	require.Len(t, news, 2)
	assert.Equal(t, "TCS Reports Strong Q3 Earnings", news[0].Title)
	assert.Equal(t, []string{stocks[0].ID}, news[0].StockIDs)
	assert.Equal(t, "RBI Maintains Repo Rate at 6.5%", news[1].Title)
	assert.Empty(t, news[1].StockIDs)
	assert.NotNil(t, news[1].StockIDs)
	assert.Equal(t, 2*time.Hour, news[0].PublishedAt.Sub(news[1].PublishedAt))
}

func TestNew_WithoutSeed(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())

	assert.Equal(t, Stats{}, s.Stats())
	assert.Empty(t, s.AllStocks())
	assert.Empty(t, s.RecentNews(10))
}

func TestNew_WithIDGenerator(t *testing.T) {
	n := 0
	s, _ := newTestStore(t, WithoutSeed(), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))

	user := mustUser(t, s, "alice")
	stock := mustStock(t, s, "XYZ")
	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "id-2", stock.ID)
}

func TestUsers_CreateAndLookup(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())

	user, err := s.CreateUser(models.NewUser{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.InvestorBalanced, user.InvestorType)
	assert.NotNil(t, user.Interests)
	assert.Empty(t, user.Interests)
	assert.Equal(t, epoch.Add(time.Second), user.CreatedAt)
	assert.Equal(t, "pw", user.Password)

	byID, err := s.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byName, err := s.UserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = s.UserByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UserByUsername("bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsers_DuplicateUsername(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())

	first := mustUser(t, s, "alice")
	_, err := s.CreateUser(models.NewUser{Username: "alice", Password: "other"})
	require.ErrorIs(t, err, ErrDuplicate)

	got, err := s.UserByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 1, s.Stats().Users)
}

func TestUsers_Update(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	user := mustUser(t, s, "alice")
	mustUser(t, s, "bob")

	aggressive := models.InvestorAggressive
	interests := []models.Interest{models.InterestTechnical, models.InterestPattern}
	updated, err := s.UpdateUser(user.ID, models.UserPatch{
		InvestorType: &aggressive,
		Interests:    &interests,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InvestorAggressive, updated.InvestorType)
	assert.Equal(t, interests, updated.Interests)
	assert.Equal(t, user.Username, updated.Username)
	assert.Equal(t, user.Password, updated.Password)
	assert.Equal(t, user.CreatedAt, updated.CreatedAt)

	t.Run("rename to taken username leaves record untouched", func(t *testing.T) {
		bob := "bob"
		_, err := s.UpdateUser(user.ID, models.UserPatch{Username: &bob, InvestorType: &aggressive})
		require.ErrorIs(t, err, ErrDuplicate)

		got, err := s.UserByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.UpdateUser("missing", models.UserPatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUsers_ReadsAreCopies(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	interests := []models.Interest{models.InterestFundamental}
	user, err := s.CreateUser(models.NewUser{Username: "alice", Interests: interests})
	require.NoError(t, err)

	interests[0] = models.InterestPattern
	user.Interests[0] = models.InterestTechnical

	got, err := s.UserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Interest{models.InterestFundamental}, got.Interests)
}

func TestStocks_LookupAndDuplicate(t *testing.T) {
	s, _ := newTestStore(t)

	tcs, err := s.StockBySymbol("TCS")
	require.NoError(t, err)
	byID, err := s.StockByID(tcs.ID)
	require.NoError(t, err)
	assert.Equal(t, tcs, byID)

	_, err = s.StockBySymbol("AAPL")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.StockByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreateStock(models.NewStock{Symbol: "TCS"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Len(t, s.AllStocks(), 5)
}

func TestStocks_UpdateMergesOnlyPatchedFields(t *testing.T) {
	s, _ := newTestStore(t)

	for _, before := range s.AllStocks() {
		price := int64(400000)
		after, err := s.UpdateStock(before.ID, models.StockPatch{Price: &price})
		require.NoError(t, err)

		assert.Equal(t, price, after.Price)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

		expected := before
		expected.Price = price
		expected.UpdatedAt = after.UpdatedAt
		assert.Equal(t, expected, after, before.Symbol)
	}
}

func TestStocks_UpdatedAtNeverDecreases(t *testing.T) {
	s, clock := newTestStore(t, WithoutSeed())
	stock := mustStock(t, s, "XYZ")

	first, err := s.UpdateStock(stock.ID, models.StockPatch{})
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.After(stock.UpdatedAt))

	clock.Set(epoch.Add(-time.Hour))
	second, err := s.UpdateStock(stock.ID, models.StockPatch{})
	require.NoError(t, err)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestStocks_UpdateRejectsTakenSymbol(t *testing.T) {
	s, _ := newTestStore(t)
	infy, err := s.StockBySymbol("INFY")
	require.NoError(t, err)

	symbol := "TCS"
	price := int64(1)
	_, err = s.UpdateStock(infy.ID, models.StockPatch{Symbol: &symbol, Price: &price})
	require.ErrorIs(t, err, ErrDuplicate)

	got, err := s.StockByID(infy.ID)
	require.NoError(t, err)
	assert.Equal(t, infy, got)

	_, err = s.UpdateStock("missing", models.StockPatch{Price: &price})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWatchlist_JoinReturnsOnlyUsersEntries(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")
	stocks := s.AllStocks()

	for _, stock := range []models.Stock{stocks[2], stocks[0]} {
		_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: stock.ID})
		require.NoError(t, err)
	}
	_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: bob.ID, StockID: stocks[1].ID})
	require.NoError(t, err)

	items, err := s.WatchlistForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, alice.ID, item.UserID)
		assert.Equal(t, item.StockID, item.Stock.ID)
	}
	assert.Equal(t, "RELIANCE", items[0].Stock.Symbol)
	assert.Equal(t, "TCS", items[1].Stock.Symbol)

	empty, err := s.WatchlistForUser("nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestWatchlist_JoinReflectsCurrentStock(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	alice := mustUser(t, s, "alice")
	stock := mustStock(t, s, "XYZ")
	_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: stock.ID})
	require.NoError(t, err)

	price := int64(12345)
	_, err = s.UpdateStock(stock.ID, models.StockPatch{Price: &price})
	require.NoError(t, err)

	items, err := s.WatchlistForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, price, items[0].Stock.Price)
}

func TestWatchlist_DanglingStockFailsJoin(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	alice := mustUser(t, s, "alice")
	kept := mustStock(t, s, "KEEP")
	gone := mustStock(t, s, "GONE")

	for _, stock := range []models.Stock{kept, gone} {
		_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: stock.ID})
		require.NoError(t, err)
	}
	require.True(t, s.DeleteStock(gone.ID))
	assert.False(t, s.DeleteStock(gone.ID))

	items, err := s.WatchlistForUser(alice.ID)
	require.ErrorIs(t, err, ErrIntegrity)
	assert.Contains(t, err.Error(), gone.ID)
	assert.Nil(t, items)

	// other users are unaffected
	bob := mustUser(t, s, "bob")
	items, err = s.WatchlistForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWatchlist_AddRejectsUnknownReferences(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	alice := mustUser(t, s, "alice")
	stock := mustStock(t, s, "XYZ")

	_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: "ghost", StockID: stock.ID})
	assert.ErrorIs(t, err, ErrInvalidReference)
	_, err = s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: "ghost"})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, 0, s.Stats().Watchlists)
}

func TestWatchlist_RemoveFirstMatchOnly(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	alice := mustUser(t, s, "alice")
	stock := mustStock(t, s, "XYZ")

	for i := 0; i < 2; i++ {
		_, err := s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: stock.ID})
		require.NoError(t, err)
	}

	assert.True(t, s.RemoveFromWatchlist(alice.ID, stock.ID))
	items, err := s.WatchlistForUser(alice.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	assert.True(t, s.RemoveFromWatchlist(alice.ID, stock.ID))
	assert.False(t, s.RemoveFromWatchlist(alice.ID, stock.ID))
	assert.False(t, s.RemoveFromWatchlist("nobody", stock.ID))
}

func TestAlerts_CreateIsUntriggered(t *testing.T) {
	s, clock := newTestStore(t)
	alice := mustUser(t, s, "alice")
	tcs, err := s.StockBySymbol("TCS")
	require.NoError(t, err)

	alert, err := s.CreateAlert(models.NewAlert{
		UserID:            alice.ID,
		StockID:           tcs.ID,
		Type:              models.AlertPrice,
		Condition:         models.ConditionAbove,
		Value:             400000,
		IsActive:          true,
		EmailNotification: true,
	})
	require.NoError(t, err)
	assert.False(t, alert.IsTriggered)
	assert.Nil(t, alert.TriggeredAt)
	assert.True(t, alert.IsActive)
	assert.Equal(t, clock.t, alert.CreatedAt)

	triggered := true
	at := epoch.Add(time.Hour)
	updated, err := s.UpdateAlert(alert.ID, models.AlertPatch{IsTriggered: &triggered, TriggeredAt: &at})
	require.NoError(t, err)
	assert.True(t, updated.IsTriggered)
	require.NotNil(t, updated.TriggeredAt)
	assert.Equal(t, at, *updated.TriggeredAt)
	assert.Equal(t, alert.Value, updated.Value)
	assert.Equal(t, alert.CreatedAt, updated.CreatedAt)

	// returned pointer does not alias stored state
	*updated.TriggeredAt = epoch
	items, err := s.AlertsForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, at, *items[0].TriggeredAt)
	assert.Equal(t, "TCS", items[0].Stock.Symbol)

	_, err = s.UpdateAlert("missing", models.AlertPatch{IsTriggered: &triggered})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlerts_DeleteAndDangling(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	alice := mustUser(t, s, "alice")
	stock := mustStock(t, s, "XYZ")

	_, err := s.CreateAlert(models.NewAlert{UserID: "ghost", StockID: stock.ID, Type: models.AlertNews})
	assert.ErrorIs(t, err, ErrInvalidReference)

	alert, err := s.CreateAlert(models.NewAlert{
		UserID:    alice.ID,
		StockID:   stock.ID,
		Type:      models.AlertSentiment,
		Condition: models.ConditionBelow,
		Value:     30,
	})
	require.NoError(t, err)

	require.True(t, s.DeleteStock(stock.ID))
	_, err = s.AlertsForUser(alice.ID)
	assert.ErrorIs(t, err, ErrIntegrity)

	assert.True(t, s.DeleteAlert(alert.ID))
	assert.False(t, s.DeleteAlert(alert.ID))

	items, err := s.AlertsForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNews_RecentOrdering(t *testing.T) {
	s, clock := newTestStore(t)
	seedTime := s.RecentNews(1)[0].PublishedAt.Add(2 * time.Hour)

	fresh := s.CreateNews(models.NewNews{
		Title:       "Fresh",
		Sentiment:   models.SentimentNeutral,
		PublishedAt: seedTime,
	})
	assert.Equal(t, seedTime, fresh.PublishedAt)
	assert.Equal(t, clock.t, fresh.CreatedAt)
	assert.NotNil(t, fresh.StockIDs)

	recent := s.RecentNews(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "Fresh", recent[0].Title)
	assert.Equal(t, seedTime.Add(-2*time.Hour), recent[1].PublishedAt)

	assert.Len(t, s.RecentNews(10), 3)
	assert.Len(t, s.RecentNews(-1), 3)
}

func TestNews_TiesKeepInsertionOrder(t *testing.T) {
	s, _ := newTestStore(t, WithoutSeed())
	for _, title := range []string{"a", "b", "c"} {
		s.CreateNews(models.NewNews{Title: title, PublishedAt: epoch})
	}
	s.CreateNews(models.NewNews{Title: "older", PublishedAt: epoch.Add(-time.Minute)})

	var titles []string
	for _, n := range s.RecentNews(10) {
		titles = append(titles, n.Title)
	}
	assert.Equal(t, []string{"a", "b", "c", "older"}, titles)
}

func TestNews_ForStock(t *testing.T) {
	s, _ := newTestStore(t)
	tcs, err := s.StockBySymbol("TCS")
	require.NoError(t, err)
	infy, err := s.StockBySymbol("INFY")
	require.NoError(t, err)

	s.CreateNews(models.NewNews{Title: "IT rally", StockIDs: []string{infy.ID, tcs.ID}, PublishedAt: epoch})

	tcsNews := s.NewsForStock(tcs.ID)
	require.Len(t, tcsNews, 2)
	assert.Equal(t, "TCS Reports Strong Q3 Earnings", tcsNews[0].Title)
	assert.Equal(t, "IT rally", tcsNews[1].Title)

	assert.Len(t, s.NewsForStock(infy.ID), 1)
	none := s.NewsForStock("missing")
	assert.NotNil(t, none)
	assert.Empty(t, none)

	tcsNews[1].StockIDs[0] = "mutated"
	assert.Len(t, s.NewsForStock(infy.ID), 1)
}

func TestScenario_WatchlistLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	alice := mustUser(t, s, "alice")
	xyz, err := s.CreateStock(models.NewStock{
		Symbol:         "XYZ",
		Price:          10000,
		Change:         0,
		ChangePercent:  0,
		Sentiment:      50,
		SentimentLabel: models.SentimentNeutral,
	})
	require.NoError(t, err)

	_, err = s.AddToWatchlist(models.NewWatchlistEntry{UserID: alice.ID, StockID: xyz.ID})
	require.NoError(t, err)

	items, err := s.WatchlistForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "XYZ", items[0].Stock.Symbol)

	assert.True(t, s.RemoveFromWatchlist(alice.ID, xyz.ID))

	items, err = s.WatchlistForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s, _ := newTestStore(t)
	stocks := s.AllStocks()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := s.CreateUser(models.NewUser{Username: fmt.Sprintf("user-%d", i)})
			if !assert.NoError(t, err) {
				return
			}
			stock := stocks[i%len(stocks)]
			_, err = s.AddToWatchlist(models.NewWatchlistEntry{UserID: user.ID, StockID: stock.ID})
			assert.NoError(t, err)

			price := int64(i)
			_, err = s.UpdateStock(stock.ID, models.StockPatch{Price: &price})
			assert.NoError(t, err)

			_, err = s.WatchlistForUser(user.ID)
			assert.NoError(t, err)
			s.RecentNews(5)
		}(i)
	}
	wg.Wait()

	stats := s.Stats()
	assert.Equal(t, 20, stats.Users)
	assert.Equal(t, 20, stats.Watchlists)
}
