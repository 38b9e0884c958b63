package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/vikasavnish/marketpulse/internal/config"
	"github.com/vikasavnish/marketpulse/internal/handlers"
	"github.com/vikasavnish/marketpulse/internal/middleware"
	"github.com/vikasavnish/marketpulse/internal/services"
	"github.com/vikasavnish/marketpulse/internal/store"
	"github.com/vikasavnish/marketpulse/internal/websocket"
)

// SetupRouter configures all routes and returns the router
func SetupRouter(st *store.Store, wsHub *websocket.Hub, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}` + "\n"))
	})

	// Dashboard push channel
	router.HandleFunc("/ws", wsHub.HandleWebSocket)

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.HandleFunc("/health", HealthHandler(st)).Methods("GET")

	// Create services
	stockService := services.NewStockService(st)
	marketService := services.NewMarketService(stockService)
	newsService := services.NewNewsService(st)
	userService := services.NewUserService(st)
	watchlistService := services.NewWatchlistService(st)
	alertService := services.NewAlertService(st)

	// Create handlers using services
	handlers.NewStockHandler(stockService, logger).RegisterRoutes(apiRouter)
	handlers.NewMarketHandler(marketService).RegisterRoutes(apiRouter)
	handlers.NewNewsHandler(newsService).RegisterRoutes(apiRouter)
	handlers.NewUserHandler(userService, logger).RegisterRoutes(apiRouter)
	handlers.NewWatchlistHandler(watchlistService, logger).RegisterRoutes(apiRouter)
	handlers.NewAlertHandler(alertService, logger).RegisterRoutes(apiRouter)

	return router
}

// WithCORS wraps the router so browser dashboards on other origins can call it
func WithCORS(router http.Handler, cfg config.ServerConfig) http.Handler {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})
	return corsMiddleware.Handler(router)
}
