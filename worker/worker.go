package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
	"github.com/skyline-labs/discord-interactions-bot/storage"
)

// FollowupSender delivers the final message for a deferred interaction.
type FollowupSender interface {
	SendFollowup(ctx context.Context, applicationID, token string, params *discordgo.WebhookParams) error
}

const handlerName = "command-worker"

// Worker consumes command invocations off the bus. Its contract is that every
// invocation gets exactly one followup delivery attempt: handler failures are
// absorbed into user-facing error text, and a failed delivery is terminal —
// retrying could post the message twice.
type Worker struct {
	registry      *Registry
	sender        FollowupSender
	guard         *storage.DeliveryGuard
	applicationID string
	logger        *slog.Logger
}

// New creates a Worker.
func New(registry *Registry, sender FollowupSender, guard *storage.DeliveryGuard, applicationID string, logger *slog.Logger) *Worker {
	return &Worker{
		registry:      registry,
		sender:        sender,
		guard:         guard,
		applicationID: applicationID,
		logger:        logger,
	}
}

// RegisterHandlers attaches the worker to the message router.
func (w *Worker) RegisterHandlers(router *message.Router, subscriber message.Subscriber) {
	router.AddNoPublisherHandler(handlerName, dispatch.TopicCommandInvoked, subscriber, w.HandleInvocation)
}

// HandleInvocation processes one invocation message. It always returns nil:
// every outcome here is terminal, and a non-nil error would trigger
// redelivery and with it a possible duplicate followup.
func (w *Worker) HandleInvocation(msg *message.Message) error {
	ctx := msg.Context()

	var inv dispatch.CommandInvocation
	if err := json.Unmarshal(msg.Payload, &inv); err != nil {
		w.logger.Error("Failed to unmarshal command invocation",
			slog.Any("error", err),
			slog.String("message_id", msg.UUID),
		)
		return nil
	}

	if inv.Token == "" {
		w.logger.Error("Invocation without interaction token",
			slog.String("command", inv.Name),
			slog.String("message_id", msg.UUID),
		)
		return nil
	}

	if !w.guard.Begin(inv.Token) {
		w.logger.Warn("Skipping invocation for already-claimed token",
			slog.String("command", inv.Name),
			slog.String("interaction_id", inv.InteractionID),
		)
		return nil
	}

	w.logger.Info("Executing command",
		slog.String("command", inv.Name),
		slog.String("interaction_id", inv.InteractionID),
	)
	params := w.execute(ctx, inv)

	applicationID := inv.ApplicationID
	if applicationID == "" {
		applicationID = w.applicationID
	}

	if err := w.sender.SendFollowup(ctx, applicationID, inv.Token, params); err != nil {
		w.logger.Error("Failed to deliver followup",
			slog.Any("error", err),
			slog.String("command", inv.Name),
			slog.String("interaction_id", inv.InteractionID),
		)
		return nil
	}

	w.logger.Info("Command processed",
		slog.String("command", inv.Name),
		slog.String("interaction_id", inv.InteractionID),
	)
	return nil
}

// execute runs the command handler, substituting user-facing error text for
// any failure. The worker has no return channel to the original webhook, so
// the followup is the only place errors can surface.
func (w *Worker) execute(ctx context.Context, inv dispatch.CommandInvocation) *discordgo.WebhookParams {
	handler, ok := w.registry.Resolve(inv.Name)
	if !ok {
		return &discordgo.WebhookParams{Content: fmt.Sprintf("Unknown command: %s", inv.Name)}
	}

	params, err := handler.Handle(ctx, inv)
	if err != nil || params == nil {
		w.logger.Error("Command handler failed",
			slog.Any("error", err),
			slog.String("command", inv.Name),
			slog.String("interaction_id", inv.InteractionID),
		)
		return &discordgo.WebhookParams{Content: "Sorry, something went wrong processing your command. Please try again!"}
	}
	return params
}
