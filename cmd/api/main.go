package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"donation-ledger/config"
	httpHandler "donation-ledger/internal/adapter/http/handler"
	"donation-ledger/internal/adapter/messaging/rabbitmq"
	"donation-ledger/internal/adapter/storage/blob"
	pgStorage "donation-ledger/internal/adapter/storage/postgres"
	redisStorage "donation-ledger/internal/adapter/storage/redis"
	"donation-ledger/internal/core/ports"
	"donation-ledger/internal/service"
	"donation-ledger/internal/worker"
	"donation-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting donation ledger")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.EnsureFundRow(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise fund balance row")
	}
	log.Info().Msg("PostgreSQL connected")

	// Redis
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	userRepo := pgStorage.NewUserRepo(pool)
	fundRepo := pgStorage.NewFundRepo(pool)
	recordRepo := pgStorage.NewFinancialTransactionRepo(pool)
	donationRepo := pgStorage.NewMoneyDonationRepo(pool)
	requestRepo := pgStorage.NewMoneyRequestRepo(pool)
	accountRepo := pgStorage.NewBankAccountRepo(pool)
	physicalRepo := pgStorage.NewPhysicalDonationRepo(pool)
	actionRepo := pgStorage.NewAdminActionRepo(pool)
	outboxRepo := pgStorage.NewOutboxRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Core services
	cipher, err := service.NewAESCipher(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize account cipher")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ledger := service.NewFundLedgerService(fundRepo, recordRepo, actionRepo, transactor, logger.Component(log, "ledger"))
	donationSvc := service.NewMoneyDonationService(
		donationRepo,
		userRepo,
		ledger,
		outboxRepo,
		actionRepo,
		transactor,
		service.RewardPolicy{Unit: cfg.Rewards.Unit, PointsPerUnit: cfg.Rewards.PointsPerUnit},
		logger.Component(log, "money_donation"),
	)
	requestSvc := service.NewMoneyRequestService(
		requestRepo,
		userRepo,
		accountRepo,
		ledger,
		outboxRepo,
		actionRepo,
		transactor,
		cipher,
		logger.Component(log, "money_request"),
	)
	accountSvc := service.NewBankAccountService(accountRepo, userRepo, cipher, transactor, logger.Component(log, "bank_account"))
	handoffSvc := service.NewHandoffService(physicalRepo, outboxRepo, transactor, logger.Component(log, "handoff"))

	var proofSvc ports.ProofService
	if cfg.Proofs.Bucket != "" {
		store, err := blob.NewProofStore(ctx, cfg.Proofs.Bucket, cfg.Proofs.Region)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize proof store")
		}
		proofSvc = service.NewProofUploadService(store, cfg.Proofs.Prefix, cfg.Proofs.MaxSize, logger.Component(log, "proofs"))
	} else {
		log.Warn().Msg("proofs.bucket not set, proof uploads disabled")
	}

	// Notification delivery
	producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange, logger.Component(log, "rabbitmq"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize event producer")
	}
	defer producer.Close()

	dispatcher := worker.NewOutboxDispatcher(outboxRepo, producer, worker.DispatcherConfig{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		StaleAfter:   cfg.Outbox.StaleAfter,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
	}, logger.Component(log, "outbox"))
	dispatcherDone := make(chan struct{})
	go func() {
		defer close(dispatcherDone)
		dispatcher.Run(ctx)
	}()

	var integrity *worker.IntegrityChecker
	if cfg.Integrity.Schedule != "" {
		integrity = worker.NewIntegrityChecker(ledger, cfg.Integrity.Schedule, logger.Component(log, "integrity"))
		if err := integrity.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule ledger integrity check")
		}
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Donations:        donationSvc,
		Requests:         requestSvc,
		Ledger:           ledger,
		BankAccounts:     accountSvc,
		Handoffs:         handoffSvc,
		Proofs:           proofSvc,
		TokenSvc:         tokenSvc,
		RateLimiter:      redisStorage.NewRateLimitStore(rdb),
		IdempotencyCache: redisStorage.NewIdempotencyCache(rdb),
		IdempotencyTTL:   cfg.Server.IdempotencyTTL,
		HealthCheckers:   []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		RequestTimeout:   cfg.Server.RequestTimeout,
		MaxProofSize:     cfg.Proofs.MaxSize,
		Mode:             cfg.Server.Mode,
		Logger:           log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.RequestTimeout,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if integrity != nil {
		select {
		case <-integrity.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn().Msg("integrity check still running at shutdown")
		}
	}
	<-dispatcherDone

	log.Info().Msg("Server exited")
}
