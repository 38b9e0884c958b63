package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/services"
	"github.com/vikasavnish/marketpulse/internal/store"
)

type NewsHandler struct {
	newsService services.NewsService
}

func NewNewsHandler(newsService services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func (h *NewsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/news", h.GetRecentNews).Methods("GET")
	router.HandleFunc("/news", h.CreateNews).Methods("POST")
	router.HandleFunc("/news/stock/{stockId}", h.GetStockNews).Methods("GET")
}

type createNewsRequest struct {
	Title       string     `json:"title" validate:"required"`
	Summary     string     `json:"summary" validate:"required"`
	Source      string     `json:"source" validate:"required"`
	Sentiment   string     `json:"sentiment" validate:"required,oneof=bullish bearish neutral"`
	StockIDs    []string   `json:"stockIds" validate:"dive,required"`
	PublishedAt *time.Time `json:"publishedAt" validate:"required"`
}

// GetRecentNews returns the latest articles. A missing or unusable limit
// falls back to the default of 10.
func (h *NewsHandler) GetRecentNews(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = store.DefaultNewsLimit
	}
	writeJSON(w, http.StatusOK, h.newsService.GetRecentNews(limit))
}

// GetStockNews returns every article tagged with the stock, possibly none
func (h *NewsHandler) GetStockNews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.newsService.GetNewsForStock(mux.Vars(r)["stockId"]))
}

func (h *NewsHandler) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req createNewsRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid news data")
		return
	}

	article := h.newsService.CreateNews(models.NewNews{
		Title:       req.Title,
		Summary:     req.Summary,
		Source:      req.Source,
		Sentiment:   models.SentimentLabel(req.Sentiment),
		StockIDs:    req.StockIDs,
		PublishedAt: *req.PublishedAt,
	})
	writeJSON(w, http.StatusCreated, article)
}
