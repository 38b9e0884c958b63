package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
)

// StockHandler handles stock lookup and maintenance requests
type StockHandler struct {
	stockService services.StockService
	logger       *zap.Logger
}

func NewStockHandler(stockService services.StockService, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		logger:       logger,
	}
}

func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/stocks", h.GetStocks).Methods("GET")
	router.HandleFunc("/stocks", h.CreateStock).Methods("POST")
	router.HandleFunc("/stocks/id/{id}", h.GetStockByID).Methods("GET")
	router.HandleFunc("/stocks/id/{id}", h.UpdateStock).Methods("PATCH")
	router.HandleFunc("/stocks/{symbol}", h.GetStock).Methods("GET")
}

type createStockRequest struct {
	Symbol         string `json:"symbol" validate:"required"`
	Name           string `json:"name" validate:"required"`
	Sector         string `json:"sector" validate:"required"`
	Price          *int64 `json:"price" validate:"required"`
	Change         *int64 `json:"change" validate:"required"`
	ChangePercent  *int64 `json:"changePercent" validate:"required"`
	MarketCap      string `json:"marketCap" validate:"required"`
	Volume         string `json:"volume" validate:"required"`
	Sentiment      *int   `json:"sentiment" validate:"omitempty,min=0,max=100"`
	SentimentLabel string `json:"sentimentLabel" validate:"omitempty,oneof=bullish bearish neutral"`
}

type updateStockRequest struct {
	Symbol         *string `json:"symbol" validate:"omitempty,min=1"`
	Name           *string `json:"name"`
	Sector         *string `json:"sector"`
	Price          *int64  `json:"price"`
	Change         *int64  `json:"change"`
	ChangePercent  *int64  `json:"changePercent"`
	MarketCap      *string `json:"marketCap"`
	Volume         *string `json:"volume"`
	Sentiment      *int    `json:"sentiment" validate:"omitempty,min=0,max=100"`
	SentimentLabel *string `json:"sentimentLabel" validate:"omitempty,oneof=bullish bearish neutral"`
}

// GetStocks returns all stocks
func (h *StockHandler) GetStocks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stockService.GetStocks())
}

// GetStock returns a stock by its ticker symbol
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	stock, err := h.stockService.GetStockBySymbol(mux.Vars(r)["symbol"])
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Stock not found")
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

func (h *StockHandler) GetStockByID(w http.ResponseWriter, r *http.Request) {
	stock, err := h.stockService.GetStockByID(mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Stock not found")
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

func (h *StockHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	var req createStockRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stock data")
		return
	}

	in := models.NewStock{
		Symbol:         req.Symbol,
		Name:           req.Name,
		Sector:         req.Sector,
		Price:          *req.Price,
		Change:         *req.Change,
		ChangePercent:  *req.ChangePercent,
		MarketCap:      req.MarketCap,
		Volume:         req.Volume,
		Sentiment:      50,
		SentimentLabel: models.SentimentNeutral,
	}
	if req.Sentiment != nil {
		in.Sentiment = *req.Sentiment
	}
	if req.SentimentLabel != "" {
		in.SentimentLabel = models.SentimentLabel(req.SentimentLabel)
	}

	stock, err := h.stockService.CreateStock(in)
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Failed to create stock")
		return
	}
	writeJSON(w, http.StatusCreated, stock)
}

func (h *StockHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stock data")
		return
	}

	patch := models.StockPatch{
		Symbol:        req.Symbol,
		Name:          req.Name,
		Sector:        req.Sector,
		Price:         req.Price,
		Change:        req.Change,
		ChangePercent: req.ChangePercent,
		MarketCap:     req.MarketCap,
		Volume:        req.Volume,
		Sentiment:     req.Sentiment,
	}
	if req.SentimentLabel != nil {
		label := models.SentimentLabel(*req.SentimentLabel)
		patch.SentimentLabel = &label
	}

	stock, err := h.stockService.UpdateStock(mux.Vars(r)["id"], patch)
	if err != nil {
		writeStoreError(w, r, h.logger, err, "Stock not found")
		return
	}
	writeJSON(w, http.StatusOK, stock)
}
