package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/chat"
	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/generator"
	"github.com/techstore/assistant/internal/search"
	"github.com/techstore/assistant/internal/session"
	"github.com/techstore/assistant/internal/telegram"
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
	if cfg.BotToken == "" {
		slog.Error("BOT_TOKEN is required for the telegram gateway")
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
	gateway := telegram.NewGateway(chatSvc)

	opts := []bot.Option{
		bot.WithMiddlewares(
			telegram.Recover(),
			telegram.Logging(),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/clear", bot.MatchTypeExact, gateway.HandleClear)
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		gateway.HandleText(ctx, b, update)
	})

	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
