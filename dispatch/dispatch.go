package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/skyline-labs/discord-interactions-bot/helpers"
)

// TopicCommandInvoked carries CommandInvocation payloads from the gateway to
// the worker.
const TopicCommandInvoked = "interaction.command.invoked"

// CommandOption is one named option of a slash-command invocation. Values are
// carried as strings; the handlers that care about other types parse them.
type CommandOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CommandInvocation is the payload handed from the gateway to the worker. It
// carries everything the worker needs to execute the command and deliver the
// followup; nothing else is shared between the two halves.
type CommandInvocation struct {
	InteractionID string          `json:"interaction_id"`
	ApplicationID string          `json:"application_id"`
	Token         string          `json:"token"`
	Name          string          `json:"name"`
	Options       []CommandOption `json:"options,omitempty"`
}

// Option returns the value of the named option, if present.
func (inv CommandInvocation) Option(name string) (string, bool) {
	for _, opt := range inv.Options {
		if opt.Name == name {
			return opt.Value, true
		}
	}
	return "", false
}

// EventBusDispatcher publishes invocations onto the command bus. Publishing
// is the only response leg: the dispatcher never hears back from the worker.
type EventBusDispatcher struct {
	publisher message.Publisher
	logger    *slog.Logger
}

// NewEventBusDispatcher creates a dispatcher over the given publisher.
func NewEventBusDispatcher(publisher message.Publisher, logger *slog.Logger) *EventBusDispatcher {
	return &EventBusDispatcher{publisher: publisher, logger: logger}
}

// Dispatch publishes the invocation to the worker topic.
func (d *EventBusDispatcher) Dispatch(ctx context.Context, inv CommandInvocation) error {
	correlationID := uuid.New().String()
	if err := helpers.PublishEvent(d.publisher, TopicCommandInvoked, correlationID, inv); err != nil {
		return fmt.Errorf("failed to publish command invocation: %w", err)
	}
	d.logger.Info("Dispatched command invocation",
		slog.String("command", inv.Name),
		slog.String("interaction_id", inv.InteractionID),
		slog.String("correlation_id", correlationID),
	)
	return nil
}
