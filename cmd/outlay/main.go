package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"outlay/internal/config"
	apphttp "outlay/internal/http"
	applog "outlay/internal/log"
	"outlay/internal/store"
	"outlay/internal/storage"
)

func main() {
	// Load .env for local development; absence is fine.
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: applog.ComponentApp})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	backing, cleanup, err := storage.Open(cfg.StorageOptions(), logger.WithComponent(applog.ComponentStorage).Logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", "error", err, "backend", cfg.StorageBackend)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Storage cleanup failed", "error", err)
		}
	}()

	st := store.New(backing)
	if err := st.Init(context.Background()); err != nil {
		// Fail open: an unreadable collection starts empty rather than
		// refusing to start.
		logger.Warn("Loading persisted expenses failed, starting empty", "error", err)
	}

	srv := apphttp.NewServer(":"+cfg.Port, st, apphttp.Options{
		DailyBudgetCents: cfg.DailyBudgetCents,
		TrendWindowDays:  cfg.TrendWindowDays,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting outlay server",
			"port", cfg.Port, "backend", cfg.StorageBackend.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
