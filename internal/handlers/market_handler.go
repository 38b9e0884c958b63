package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vikasavnish/marketpulse/internal/services"
)

type MarketHandler struct {
	marketService services.MarketService
}

func NewMarketHandler(marketService services.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

func (h *MarketHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/market/overview", h.GetOverview).Methods("GET")
}

// GetOverview returns index values, sector performance and top movers
func (h *MarketHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.marketService.Overview())
}
