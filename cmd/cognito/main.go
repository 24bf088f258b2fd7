// Cognito analysis server — provides the HTTP API, manages queue workers,
// and orchestrates drug analysis processing.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/owais-symtera/cognito-sub001/pkg/api"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/database"
	"github.com/owais-symtera/cognito-sub001/pkg/pipeline"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
	"github.com/owais-symtera/cognito-sub001/pkg/queue"
	"github.com/owais-symtera/cognito-sub001/pkg/ratelimit"
	"github.com/owais-symtera/cognito-sub001/pkg/retention"
	"github.com/owais-symtera/cognito-sub001/pkg/scoring"
	"github.com/owais-symtera/cognito-sub001/pkg/services"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
	"github.com/owais-symtera/cognito-sub001/pkg/webhook"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// apiKeysFromEnv parses the comma-separated API_KEYS variable. Empty means
// authentication is disabled (local development).
func apiKeysFromEnv() []string {
	raw := os.Getenv("API_KEYS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if k := strings.TrimSpace(p); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Audit, tracking, reference data
	recorder := audit.NewRecorder(dbClient.Client)
	tracker := tracking.NewTracker(dbClient.Client, recorder, cfg.Stages)

	refData := services.NewRefDataService(dbClient.Client, cfg, recorder)
	if err := refData.Seed(ctx); err != nil {
		slog.Error("Failed to seed reference data", "error", err)
		os.Exit(1)
	}

	// 4. Provider fleet
	fleet, err := provider.BuildFleet(cfg.ProviderRegistry)
	if err != nil {
		slog.Error("Failed to build provider fleet", "error", err)
		os.Exit(1)
	}
	chat, ok := fleet.Chat()
	if !ok {
		slog.Error("No internal chat provider configured; merge, summary, and scoring require one")
		os.Exit(1)
	}
	searcher, hasSearch := fleet.Searcher()
	if !hasSearch {
		slog.Warn("No search provider configured; live-search scoring fallback disabled")
		searcher = nil
	}

	// 5. Rate limiting: shared Postgres window with in-memory fallback
	limiter := ratelimit.NewFallbackLimiter(
		ratelimit.NewPostgresLimiter(dbClient.DB(), cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		ratelimit.NewMemoryLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
	)

	// 6. Pipeline, scoring, queue
	stageExec := pipeline.NewStageExecutor(dbClient.Client, fleet, cfg, recorder, limiter)
	extractor := scoring.NewExtractor(chat, searcher, cfg.Scoring)
	scorer := scoring.NewScorer(extractor, chat, cfg.Scoring)
	scheduler := queue.NewScheduler(dbClient.Client, stageExec, scorer, tracker, cfg.CategoryRegistry, cfg.Queue, recorder)
	dispatcher := webhook.NewDispatcher(cfg.Defaults.WebhookMaxRetries)
	executor := queue.NewRequestExecutor(dbClient.Client, cfg, scheduler, tracker, dispatcher)
	recoverer := queue.NewOrphanRecoverer(dbClient.Client, cfg.Queue, tracker, recorder)

	pool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, executor, recoverer)
	pool.Start(ctx)
	slog.Info("Worker pool started", "pod_id", pool.PodID(), "workers", cfg.Queue.WorkerCount)

	// 7. Retention loop
	retainer := retention.NewManager(dbClient.Client, cfg.Retention, recorder)
	retainer.Start(ctx)

	// 8. HTTP server
	requestSvc := services.NewRequestService(dbClient.Client, cfg, tracker, recorder)
	resultSvc := services.NewResultService(dbClient.Client, recorder)
	httpServer := api.NewServer(cfg, dbClient, requestSvc, resultSvc, limiter, pool, apiKeysFromEnv())

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Cognito started", "pod_id", pool.PodID())

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop claiming first, then drain in-flight work.
	pool.Stop()
	retainer.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
