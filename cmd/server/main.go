// Package main is the entry point for the Stokado API server.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stokado/internal/config"
	"stokado/internal/core/sequence"
	v1 "stokado/internal/infrastructure/http/v1"
	"stokado/internal/infrastructure/storage/postgres"
	"stokado/internal/infrastructure/storage/postgres/sequence_repo"
	"stokado/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting stokado server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(cfg.Database.DSN())
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}
	defer auditService.Close()

	// --- Identifier sequences ---
	seqStore := sequence_repo.NewStore(txManager)
	sequencer := sequence.NewManager(seqStore,
		sequence.WithMaxAttempts(cfg.Sequence.MaxAttempts),
		sequence.WithHealNotifier(func(ctx context.Context, prefix string, discarded sequence.State) {
			log.Warnw("healed corrupt sequence state",
				"prefix", prefix,
				"letters", discarded.Letters,
				"number", discarded.Number,
			)
			payload, _ := json.Marshal(discarded)
			entry := postgres.AuditEntry{
				EntityType: "sequence:" + prefix,
				Action:     postgres.AuditActionSequenceHeal,
				Changes:    payload,
			}
			if err := auditService.Log(ctx, entry); err != nil {
				log.Warnw("failed to record sequence heal", "prefix", prefix, "error", err)
			}
		}),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:      pool,
		TxManager: txManager,
		Sequencer: sequencer,
		Audit:     auditService,
		Logger:    log,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
