package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vcard-payments/config"
	httpHandler "vcard-payments/internal/adapter/http/handler"
	pgStorage "vcard-payments/internal/adapter/storage/postgres"
	redisStorage "vcard-payments/internal/adapter/storage/redis"
	"vcard-payments/internal/core/ports"
	"vcard-payments/internal/processor"
	"vcard-payments/internal/service"
	"vcard-payments/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Virtual Card Payments")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	ledgerRepo := pgStorage.NewLedgerRepo(pool)
	pendingRepo := pgStorage.NewPendingRefundRepo(pool)
	profileRepo := pgStorage.NewProfileRepo(pool)

	// Initialize Redis stores
	txnCache := redisStorage.NewTransactionCache(rdb)
	orderLock := redisStorage.NewOrderLock(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Processor client
	procClient := processor.NewClient(cfg.Processor, &http.Client{Timeout: cfg.Processor.Timeout}, log)

	// Initialize core services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Issuer)
	recorder := service.NewLedgerRecorder(ledgerRepo, log)
	txnSvc := service.NewTransactionService(procClient, recorder, ledgerRepo, pendingRepo, orderLock, log)
	querySvc := service.NewQueryService(ledgerRepo, pendingRepo, txnCache, cfg.Cache.TransactionTTL, log)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		TxnSvc:         txnSvc,
		QuerySvc:       querySvc,
		TokenVerifier:  tokenSvc,
		ProfileRepo:    profileRepo,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
