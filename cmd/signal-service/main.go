package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stocksphere-signal/internal/signal/config"
	delivery "stocksphere-signal/internal/signal/delivery/http"
	_ "stocksphere-signal/internal/signal/docs"
	"stocksphere-signal/internal/signal/repository"
	"stocksphere-signal/internal/signal/service"
	"stocksphere-signal/pkg/logger"
	"stocksphere-signal/pkg/postgres"
	"stocksphere-signal/pkg/redis"
	"stocksphere-signal/pkg/telegram"
	"stocksphere-signal/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the signal service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Signal Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Telegram notifier
	var notifier telegram.Notifier = telegram.NoopNotifier{}
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize repositories
	var newsRepo repository.NewsRepository
	switch cfg.News.Provider {
	case "rss":
		newsRepo = repository.NewRSSNewsRepository(cfg, appLogger)
	default:
		newsRepo = repository.NewGuardianNewsRepository(cfg, appLogger)
	}

	var techRepo repository.TechnicalDataRepository
	switch cfg.Technical.Provider {
	case "candles":
		techRepo = repository.NewCandleTechnicalRepository(cfg, appLogger, repository.NewSyntheticCandleRepository())
	default:
		techRepo = repository.NewRandomTechnicalRepository()
	}

	signalRepo := repository.NewSignalRepository(db.DB)

	// Initialize services
	predictorSvc := service.NewPredictorService(cfg, appLogger, newsRepo, techRepo, signalRepo, redisClient.Client)
	historySvc := service.NewSignalHistoryService(signalRepo, appLogger)

	// Start watchlist scanner
	if cfg.Watchlist.Enabled {
		watchlistSvc := service.NewWatchlistService(cfg, appLogger, predictorSvc, notifier)
		utils.GoSafe(func() {
			if err := watchlistSvc.Start(ctx); err != nil {
				appLogger.Error("Watchlist scanner stopped", logger.ErrorField(err))
			}
		})
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	predictionHandler := delivery.NewPredictionHandler(predictorSvc, appLogger)
	apiV1 := e.Group("/api/v1")
	predictionsGroup := apiV1.Group("/predictions")
	predictionHandler.RegisterRoutes(predictionsGroup)

	signalHandler := delivery.NewSignalHandler(historySvc, appLogger)
	signalsGroup := apiV1.Group("/signals")
	signalHandler.RegisterRoutes(signalsGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title StockSphere Signal API
// @version 1.0
// @description Heuristic multi-factor stock signal scoring service.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "signal-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-signal.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing signal-service CLI: %s\n", err)
		os.Exit(1)
	}
}
