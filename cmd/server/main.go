package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/database"
	"github.com/stemsi/safetrain-backend/internal/handler"
	"github.com/stemsi/safetrain-backend/internal/llm"
	"github.com/stemsi/safetrain-backend/internal/logger"
	"github.com/stemsi/safetrain-backend/internal/questionbank"
	"github.com/stemsi/safetrain-backend/internal/repository"
	"github.com/stemsi/safetrain-backend/internal/router"
	"github.com/stemsi/safetrain-backend/internal/service"
	"github.com/stemsi/safetrain-backend/internal/validator"
	"github.com/stemsi/safetrain-backend/internal/worker"
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
		Bool("llm_enabled", cfg.LLMAPIKey != "").
		Msg("Starting SafeTrain Backend")

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
	txRunner := repository.NewTxRunner(pool)
	userRepo := repository.NewUserRepository(pool)
	instructionRepo := repository.NewInstructionRepository(pool)
	programRepo := repository.NewProgramRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	questionRepo := repository.NewTestQuestionRepository(pool)
	sessionRepo := repository.NewTestSessionRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	llmClient := llm.NewClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	activityService := service.NewActivityService(activityRepo, rdb, log)
	testGeneratorService := service.NewTestGeneratorService(questionbank.NewGenerator(nil, nil), log)
	instructionGeneratorService := service.NewInstructionGeneratorService(llmClient, log)
	sessionService := service.NewTestSessionService(txRunner, sessionRepo, questionRepo, instructionRepo, activityService, log)
	instructionService := service.NewInstructionService(txRunner, instructionRepo, questionRepo, activityService, rdb, cfg.CacheTTL, log)
	userService := service.NewUserService(userRepo)
	programService := service.NewProgramService(programRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, programRepo, activityService, log)
	statsService := service.NewStatsService(statsRepo, rdb, log)
	mediaService := service.NewMediaService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Generate:    handler.NewGenerateHandler(testGeneratorService, instructionGeneratorService, log),
		TestSession: handler.NewTestSessionHandler(sessionService, log),
		Instruction: handler.NewInstructionHandler(instructionService, log),
		Directory:   handler.NewDirectoryHandler(userService, programService, assignmentService, log),
		Activity:    handler.NewActivityHandler(activityService, log),
		Stats:       handler.NewStatsHandler(statsService, log),
		Media:       handler.NewMediaHandler(mediaService, log),
		WS:          handler.NewWSHandler(rdb, activityService, log, cfg.AllowedOrigins),
		Health:      handler.NewHealthHandler(pool, rdb),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})

	activityWorker := worker.NewActivityWorker(activityRepo, rdb, log)
	go func() {
		defer close(workerDone)
		activityWorker.Start(workerCtx)
	}()

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(ctx, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	// 2. Stop the activity worker and wait for its final flush.
	workerCancel()
	select {
	case <-workerDone:
	case <-time.After(10 * time.Second):
		log.Warn().Msg("Activity worker did not drain in time")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
