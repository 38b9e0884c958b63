package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vikasavnish/marketpulse/internal/api"
	"github.com/vikasavnish/marketpulse/internal/config"
	"github.com/vikasavnish/marketpulse/internal/db"
	"github.com/vikasavnish/marketpulse/internal/logging"
	"github.com/vikasavnish/marketpulse/internal/services"
	"github.com/vikasavnish/marketpulse/internal/store"
	"github.com/vikasavnish/marketpulse/internal/tasks"
	"github.com/vikasavnish/marketpulse/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE:  runServe,
	}

	rootCmd := &cobra.Command{
		Use:          "marketpulse",
		Short:        "Market sentiment dashboard backend",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, &cobra.Command{
		Use:   "routes",
		Short: "Print every registered HTTP route",
		RunE:  runRoutes,
	})
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Market.TickInterval.Duration <= 0 {
		return nil, fmt.Errorf("market tick interval must be positive, got %s", cfg.Market.TickInterval.Duration)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var storeOpts []store.Option
	if !cfg.Market.Seed {
		storeOpts = append(storeOpts, store.WithoutSeed())
	}
	st := store.New(storeOpts...)

	wsHub := websocket.NewHub(logger)

	// Redis is optional; without it snapshots only go to websocket clients
	var sink tasks.SnapshotSink
	if cfg.Redis.URL != "" {
		redisClient, err := db.ConnectRedis(cfg.Redis)
		if err != nil {
			logger.Warn("failed to connect to Redis, snapshot publishing disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			sink = db.NewRedisSink(redisClient, cfg.Redis)
		}
	}

	taskManager := tasks.NewManager(logger)
	marketService := services.NewMarketService(services.NewStockService(st))
	taskManager.RegisterTask(tasks.NewMarketSnapshotTask(marketService, wsHub, sink, cfg.Market.TickInterval.Duration, logger))

	router := api.SetupRouter(st, wsHub, logger)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           api.WithCORS(router, cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wsHub.Run(ctx)
		return nil
	})
	g.Go(func() error {
		return taskManager.Run(ctx)
	})
	g.Go(func() error {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func runRoutes(cmd *cobra.Command, args []string) error {
	router := api.SetupRouter(store.New(store.WithoutSeed()), websocket.NewHub(zap.NewNop()), zap.NewNop())
	return api.PrintRoutes(cmd.OutOrStdout(), router)
}
