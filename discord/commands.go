package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Commands returns the slash commands this bot declares to Discord.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check if the bot is online.",
		},
		{
			Name:        "weather",
			Description: "Get the weather for a specific location.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "location",
					Description: "Enter the location.",
					Required:    true,
				},
			},
		},
		{
			Name:        "trivia",
			Description: "Get a random trivia question.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "category",
					Description: "Optional category ID.",
					Required:    false,
				},
			},
		},
	}
}

// RegisterCommands registers the bot's slash commands with Discord. Creation
// is an upsert keyed on the command name, so registering twice is safe; that
// also makes it a safe target for the retry helper.
func RegisterCommands(s Session, logger *slog.Logger, applicationID, guildID string) error {
	for _, cmd := range Commands() {
		err := RetryDiscordAPI(logger, "ApplicationCommandCreate", func() error {
			_, err := s.ApplicationCommandCreate(applicationID, guildID, cmd)
			return err
		})
		if err != nil {
			logger.Error("Failed to register command",
				slog.String("command", cmd.Name),
				slog.Any("error", err),
			)
			return fmt.Errorf("failed to register command %q: %w", cmd.Name, err)
		}
		logger.Info("Registered command", slog.String("command", cmd.Name))
	}
	return nil
}
