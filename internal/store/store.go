// Package store is the in-memory relational data store behind the dashboard.
//
// It owns five insertion-ordered collections (users, stocks, watchlist
// entries, alerts and news) and exposes CRUD and join operations over them.
// All collections share one lock, so every operation is atomic with respect
// to every other. Records never leave the store by reference: reads return
// copies, including copies of slice fields.
package store

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vikasavnish/marketpulse/internal/models"
)

var (
	// ErrNotFound is returned when an id or unique key does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a write would break username or symbol uniqueness.
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidReference is returned when a new record points at a user or stock that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrIntegrity is returned by join queries that hit a dangling stock reference.
	// It means stored state is inconsistent and must not be treated as a missing row.
	ErrIntegrity = errors.New("integrity violation")
)

// Store holds every entity collection in memory
type Store struct {
	mu         sync.RWMutex
	users      *orderedmap.OrderedMap[string, models.User]
	stocks     *orderedmap.OrderedMap[string, models.Stock]
	watchlists *orderedmap.OrderedMap[string, models.WatchlistEntry]
	alerts     *orderedmap.OrderedMap[string, models.Alert]
	news       *orderedmap.OrderedMap[string, models.News]

	now   func() time.Time
	newID func() string
}

type options struct {
	now   func() time.Time
	newID func() string
	seed  bool
}

// Option configures a Store
type Option func(*options)

// WithClock replaces the time source used for every timestamp the store assigns.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// WithoutSeed starts the store empty instead of loading the example market data.
func WithoutSeed() Option {
	return func(o *options) {
		o.seed = false
	}
}

// New creates a store and, unless WithoutSeed is given, loads the example
// stocks and news exactly once.
func New(opts ...Option) *Store {
	o := options{
		now:   time.Now,
		newID: uuid.NewString,
		seed:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		users:      orderedmap.New[string, models.User](),
		stocks:     orderedmap.New[string, models.Stock](),
		watchlists: orderedmap.New[string, models.WatchlistEntry](),
		alerts:     orderedmap.New[string, models.Alert](),
		news:       orderedmap.New[string, models.News](),
		now:        o.now,
		newID:      o.newID,
	}

	if o.seed {
		s.seed()
	}

	return s
}

// Stats reports how many records each collection holds
type Stats struct {
	Users      int `json:"users"`
	Stocks     int `json:"stocks"`
	Watchlists int `json:"watchlists"`
	Alerts     int `json:"alerts"`
	News       int `json:"news"`
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		Users:      s.users.Len(),
		Stocks:     s.stocks.Len(),
		Watchlists: s.watchlists.Len(),
		Alerts:     s.alerts.Len(),
		News:       s.news.Len(),
	}
}

func copyUser(u models.User) models.User {
	u.Interests = cloneOrEmpty(u.Interests)
	return u
}

func copyNews(n models.News) models.News {
	n.StockIDs = cloneOrEmpty(n.StockIDs)
	return n
}

func copyAlert(a models.Alert) models.Alert {
	if a.TriggeredAt != nil {
		t := *a.TriggeredAt
		a.TriggeredAt = &t
	}
	return a
}

// cloneOrEmpty never returns nil so the JSON form is always an array.
func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
