package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
	"github.com/skyline-labs/discord-interactions-bot/worker"
)

// Ping answers /ping. It exercises the full deferred path without touching
// any upstream service.
func Ping() worker.HandlerFunc {
	return func(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
		return &discordgo.WebhookParams{Content: "Pong!"}, nil
	}
}
