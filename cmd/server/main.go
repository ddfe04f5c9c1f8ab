// The server exposes the report document produced by the fetcher over a
// read-only HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wallycup/stats-engine/internal/config"
	"github.com/wallycup/stats-engine/internal/handlers"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync()
	sugar := logger.Sugar()

	h := handlers.New(handlers.Config{
		Reports:        handlers.NewFileProvider(cfg.ReportPath),
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		sugar.Infow("Starting server", "port", cfg.Port, "report", cfg.ReportPath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
}

func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			os.Exit(1)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		os.Exit(1)
	}
	return logger
}
