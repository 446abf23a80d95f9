package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchtrack-service/internal/domain/repository"
	"launchtrack-service/internal/infrastructure/config"
	"launchtrack-service/internal/infrastructure/persistence"
	"launchtrack-service/internal/interface/httpapi"
	mongoRepo "launchtrack-service/internal/interface/repository"
	"launchtrack-service/internal/interface/spacex"
	"launchtrack-service/internal/usecase"
	"launchtrack-service/pkg/logger"
	"launchtrack-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Launch Tracker Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	// Set up repositories
	launchRepo := mongoRepo.NewMongoLaunchRepository(db, cfg.LaunchesCollection)
	webhookRepo := mongoRepo.NewMongoWebhookRepository(db, cfg.WebhooksCollection)
	notifier := mongoRepo.NewWebhookNotifier(webhookRepo, log)

	// Set up the upstream client, with a Redis fetch cache when configured
	var spacexRepo repository.SpaceXRepository = spacex.NewClient(cfg.SpaceXBaseURL, log)
	if cfg.RedisAddr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("Failed to connect to Redis", "error", err)
		}
		defer redisClient.Close()
		spacexRepo = spacex.NewCachedClient(spacexRepo, redisClient, cfg.CacheExpiry, log)
	}

	syncer := usecase.NewLaunchSyncer(spacexRepo, launchRepo, notifier, log)
	appMetrics := metrics.NewMetrics("launchtrack")

	runSync := func() {
		started := time.Now()
		result, err := syncer.Sync(ctx)
		appMetrics.SyncDuration.Observe(time.Since(started).Seconds())
		if err != nil {
			appMetrics.ErrorsCount.WithLabelValues("sync").Inc()
			log.Error("Sync cycle failed", "error", err)
			return
		}
		appMetrics.SyncRuns.Inc()
		appMetrics.LaunchesEnriched.Add(float64(result.Enriched))
		appMetrics.NewLaunches.Add(float64(result.NewLaunches))
		log.Info("Sync cycle completed",
			"enriched", result.Enriched,
			"newLaunches", result.NewLaunches,
			"elapsed", time.Since(started))
	}

	// Start the sync loop in a goroutine
	go func() {
		runSync()

		syncTicker := time.NewTicker(cfg.SyncInterval)
		defer syncTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Sync loop stopped")
				return
			case <-syncTicker.C:
				runSync()
			}
		}
	}()

	// Set up HTTP server for metrics and the dashboard API
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	httpapi.NewHandler(launchRepo, log).Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop the sync loop

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Launch Tracker Service stopped")
}
