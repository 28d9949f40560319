package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/draftdb-io/draftdb-backend/config"
	"github.com/draftdb-io/draftdb-backend/internal/bootstrap"
	"github.com/draftdb-io/draftdb-backend/internal/chat"
	"github.com/draftdb-io/draftdb-backend/internal/db"
	"github.com/draftdb-io/draftdb-backend/internal/logging"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.App.Environment)
	defer logger.Sync()

	for _, key := range cfg.MissingKeys() {
		logger.Warn("missing configuration, dependent endpoints will return errors", zap.String("key", key))
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.Database.DSN != "" {
		p, err := db.Open(ctx, db.Options{DSN: cfg.Database.DSN})
		if err != nil {
			logger.Error("database unavailable, project endpoints disabled", zap.Error(err))
		} else {
			pool = p
			defer pool.Close()
		}
	}

	var llm chat.Generator
	if cfg.Gemini.APIKey != "" {
		client, err := chat.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Error("gemini client init failed, chat endpoint disabled", zap.Error(err))
		} else {
			llm = client
		}
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		DB:  pool,
		LLM: llm,
		Log: logger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("version", cfg.App.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
