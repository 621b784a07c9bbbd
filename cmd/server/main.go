package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/edustat/markboard-backend/internal/config"
	"github.com/edustat/markboard-backend/internal/database"
	"github.com/edustat/markboard-backend/internal/handler"
	"github.com/edustat/markboard-backend/internal/logger"
	"github.com/edustat/markboard-backend/internal/repository"
	"github.com/edustat/markboard-backend/internal/router"
	"github.com/edustat/markboard-backend/internal/service"
	"github.com/edustat/markboard-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Markboard Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	marksRepo := repository.NewMarksRepository(pool)
	queryRepo := repository.NewQueryRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	faSettingRepo := repository.NewFASettingRepository(pool)
	filterRepo := repository.NewFilterRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	filterService := service.NewFilterService(filterRepo, rdb, cfg.FilterCacheTTL, log)
	importService := service.NewImportService(cfg, marksRepo, filterService, log)
	statsService := service.NewStatsService(marksRepo, studentRepo, queryRepo, faSettingRepo, log)
	queryService := service.NewQueryService(queryRepo, notificationRepo, log)
	faService := service.NewFASettingService(faSettingRepo, filterService, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Filter: handler.NewFilterHandler(filterService, log),
		Stats:  handler.NewStatsHandler(statsService, log),
		Upload: handler.NewUploadHandler(importService, log),
		Query:  handler.NewQueryHandler(queryService, log),
		FAMode: handler.NewFAModeHandler(faService, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
