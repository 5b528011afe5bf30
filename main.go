package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/skyline-labs/discord-interactions-bot/cache"
	"github.com/skyline-labs/discord-interactions-bot/commands"
	"github.com/skyline-labs/discord-interactions-bot/config"
	"github.com/skyline-labs/discord-interactions-bot/discord"
	"github.com/skyline-labs/discord-interactions-bot/dispatch"
	"github.com/skyline-labs/discord-interactions-bot/eventbus"
	"github.com/skyline-labs/discord-interactions-bot/gateway"
	"github.com/skyline-labs/discord-interactions-bot/quiz"
	"github.com/skyline-labs/discord-interactions-bot/server"
	"github.com/skyline-labs/discord-interactions-bot/storage"
	"github.com/skyline-labs/discord-interactions-bot/worker"
)

const weatherCacheTTL = 10 * time.Minute

func main() {
	// Load configuration.
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	publicKey, err := gateway.ParsePublicKey(cfg.Discord.PublicKey)
	if err != nil {
		log.Fatalf("Failed to parse Discord public key: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Command bus between gateway and worker.
	wmLogger := watermill.NewSlogLogger(logger)
	bus, err := eventbus.New(cfg.NATS.URL, wmLogger)
	if err != nil {
		log.Fatalf("Failed to create event bus: %v", err)
	}

	router, err := message.NewRouter(message.RouterConfig{}, wmLogger)
	if err != nil {
		log.Fatalf("Failed to create message router: %v", err)
	}
	// No Retry middleware here: a redelivered invocation could produce a
	// duplicate followup.
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	// Worker side: Discord REST session, followup delivery, command handlers.
	session, err := discord.NewRestSession(cfg.Discord.BotToken, logger)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	notifier := discord.NewWebhookNotifier(session, logger)
	guard := storage.NewDeliveryGuard(storage.TokenTTL, logger)

	weatherCache, err := cache.New(ctx, weatherCacheTTL)
	if err != nil {
		log.Fatalf("Failed to create weather cache: %v", err)
	}

	registry := worker.NewRegistry()
	registry.Register("ping", commands.Ping())
	registry.Register("weather", commands.NewWeatherHandler(cfg.Weather, weatherCache, logger))
	registry.Register("trivia", commands.NewTriviaHandler(cfg.Trivia, logger))

	commandWorker := worker.New(registry, notifier, guard, cfg.Discord.ApplicationID, logger)
	commandWorker.RegisterHandlers(router, bus.Subscriber)

	// Gateway side: signature verification, routing, dispatch.
	dispatcher := dispatch.NewEventBusDispatcher(bus.Publisher, logger)
	resolver := quiz.NewResolver(logger)
	gw := gateway.New(publicKey, dispatcher, resolver, logger)
	srv := server.New(cfg.Server.ListenAddr, gw, logger)

	go func() {
		if err := router.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Message router stopped", slog.Any("error", err))
			cancel()
		}
	}()

	// Accept webhooks only once the worker is consuming.
	<-router.Running()

	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Error("Webhook server stopped", slog.Any("error", err))
			cancel()
		}
	}()

	logger.Info("Bot is running", slog.String("service", cfg.Service.Name))

	// Handle graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
		logger.Info("Shutting down gracefully...")
	case <-ctx.Done():
	}
	cancel()

	if err := bus.Close(); err != nil {
		logger.Error("Failed to close event bus", slog.Any("error", err))
	}
	logger.Info("Shutdown complete.")
}
