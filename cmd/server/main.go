package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/database"
	"github.com/smartaid/smartaid-backend/internal/handler"
	"github.com/smartaid/smartaid-backend/internal/logger"
	"github.com/smartaid/smartaid-backend/internal/repository"
	"github.com/smartaid/smartaid-backend/internal/router"
	"github.com/smartaid/smartaid-backend/internal/service"
	"github.com/smartaid/smartaid-backend/internal/validator"
	"github.com/smartaid/smartaid-backend/internal/worker"
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
		Msg("Starting SmartAid Backend")

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
	programRepo := repository.NewProgramRepository(pool)
	faqRepo := repository.NewFaqRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	recordRepo := repository.NewStudentRecordRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	catalogService := service.NewCatalogService(programRepo, log)
	screeningService := service.NewScreeningService(cfg, rdb, catalogService, log)
	faqService := service.NewFaqService(faqRepo, rdb, log)
	recordService := service.NewRecordService(recordRepo, log)

	// ─── Load Static Tables ───────────────────────────────────────────
	// The program catalog and FAQ table are immutable after this point;
	// the server refuses to start without a seeded catalog.
	if err := catalogService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load program catalog")
	}
	if err := faqService.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to load FAQ table")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService, staffRepo),
		Screening: handler.NewScreeningHandler(screeningService),
		Chat:      handler.NewChatHandler(faqService, log, cfg.AllowedOrigins),
		Record:    handler.NewRecordHandler(recordService, screeningService, faqService),
		Program:   handler.NewProgramHandler(catalogService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	chatLogWorker := worker.NewChatLogWorker(faqRepo, rdb, log)
	go chatLogWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

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

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the chat log worker and let it drain its queue.
	workerCancel()
	time.Sleep(2 * time.Second)

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
