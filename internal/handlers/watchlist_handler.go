package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
)

type WatchlistHandler struct {
	watchlistService services.WatchlistService
	logger           *zap.Logger
}

func NewWatchlistHandler(watchlistService services.WatchlistService, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		watchlistService: watchlistService,
		logger:           logger,
	}
}

func (h *WatchlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/watchlist", h.AddToWatchlist).Methods("POST")
	router.HandleFunc("/watchlist/{userId}", h.GetWatchlist).Methods("GET")
	router.HandleFunc("/watchlist/{userId}/{stockId}", h.RemoveFromWatchlist).Methods("DELETE")
}

type addWatchlistRequest struct {
	UserID  string `json:"userId" validate:"required"`
	StockID string `json:"stockId" validate:"required"`
}

// GetWatchlist returns the user's watchlist joined with stock data
func (h *WatchlistHandler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.watchlistService.GetUserWatchlist(mux.Vars(r)["userId"])
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to fetch watchlist")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// AddToWatchlist adds a stock to a user's watchlist
func (h *WatchlistHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	var req addWatchlistRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid watchlist data")
		return
	}

	entry, err := h.watchlistService.AddToWatchlist(models.NewWatchlistEntry{
		UserID:  req.UserID,
		StockID: req.StockID,
	})
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to add to watchlist")
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// RemoveFromWatchlist removes a stock from a user's watchlist
func (h *WatchlistHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if !h.watchlistService.RemoveFromWatchlist(vars["userId"], vars["stockId"]) {
		writeError(w, http.StatusNotFound, "Watchlist item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
