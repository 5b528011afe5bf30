// Command register-commands declares the bot's slash commands with Discord.
// Run it once after deploying, or again whenever the command set changes.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/skyline-labs/discord-interactions-bot/config"
	"github.com/skyline-labs/discord-interactions-bot/discord"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the config file")
		guildID    = flag.String("guild", "", "Guild ID to register against (empty registers globally)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	session, err := discord.NewRestSession(cfg.Discord.BotToken, logger)
	if err != nil {
		logger.Error("Failed to create Discord session", slog.Any("error", err))
		os.Exit(1)
	}

	if err := discord.RegisterCommands(session, logger, cfg.Discord.ApplicationID, *guildID); err != nil {
		logger.Error("Failed to register commands", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("All commands registered")
}
