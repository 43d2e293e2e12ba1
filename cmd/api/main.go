package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/chat"
	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/generator"
	"github.com/techstore/assistant/internal/search"
	"github.com/techstore/assistant/internal/server"
	"github.com/techstore/assistant/internal/session"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := catalog.Load(ctx, cfg)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "products", store.Len(), "source", cfg.CatalogSource)

	sessions, err := session.NewFromConfig(cfg)
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}
	defer sessions.Close()

	engine := search.NewEngine(store)
	chatSvc := chat.NewService(engine, sessions, generator.FromConfig(cfg))

	srv := server.New(cfg, chatSvc, store)

	go func() {
		slog.Info("starting server", "port", cfg.Port, "generator", cfg.Generator)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	slog.Info("server stopped gracefully")
}
