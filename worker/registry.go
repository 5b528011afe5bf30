package worker

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
)

// Handler executes one command and produces the followup payload.
type Handler interface {
	Handle(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
	return f(ctx, inv)
}

// Registry maps command names to handlers. Registration happens during
// startup wiring; lookups afterwards are read-only, so no locking is needed.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a command name to a handler. The last registration for a
// name wins.
func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

// Resolve looks up the handler for a command name.
func (r *Registry) Resolve(name string) (Handler, bool) {
	handler, ok := r.handlers[name]
	return handler, ok
}
