package gateway

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
)

// Dispatcher hands a command invocation to the worker. Dispatching is fire
// and forget: the gateway cannot observe, await, or cancel the worker.
type Dispatcher interface {
	Dispatch(ctx context.Context, inv dispatch.CommandInvocation) error
}

// ComponentResolver resolves a component click synchronously. Implementations
// must not perform network I/O; the response is returned inline.
type ComponentResolver interface {
	Resolve(interaction *discordgo.Interaction) *discordgo.InteractionResponse
}

// InboundRequest is one interaction webhook as received off the wire. Body is
// the raw bytes the signature was computed over.
type InboundRequest struct {
	Body      []byte
	Signature string
	Timestamp string
}

// Response pairs an HTTP status code with a JSON-marshalable body.
type Response struct {
	Status int
	Body   interface{}
}

type errorBody struct {
	Error string `json:"error"`
}

// Gateway is the entry point for all interaction webhooks. It verifies the
// request, routes it, and either answers inline or defers to the worker.
type Gateway struct {
	publicKey  ed25519.PublicKey
	dispatcher Dispatcher
	resolver   ComponentResolver
	logger     *slog.Logger
}

// New creates a Gateway. The public key and dispatcher are fixed for the life
// of the process; there is no per-request state.
func New(publicKey ed25519.PublicKey, dispatcher Dispatcher, resolver ComponentResolver, logger *slog.Logger) *Gateway {
	return &Gateway{
		publicKey:  publicKey,
		dispatcher: dispatcher,
		resolver:   resolver,
		logger:     logger,
	}
}

// Handle processes one interaction webhook. Every failure maps to a status
// code at this boundary: 401 for a bad signature, 400 for an unparseable body
// or unknown type, 500 if the dispatch leg fails. Discord expects the answer
// within 3 seconds, which is why commands are acked with a deferred response
// before the worker has done anything.
func (g *Gateway) Handle(ctx context.Context, req InboundRequest) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("Recovered panic while handling interaction", slog.Any("panic", r))
			resp = Response{Status: http.StatusInternalServerError, Body: errorBody{Error: "internal server error"}}
		}
	}()

	if !VerifyInteraction(g.publicKey, req.Signature, req.Timestamp, req.Body) {
		// Do not log payload contents for unverified requests.
		g.logger.Warn("Rejected interaction with invalid signature")
		return Response{Status: http.StatusUnauthorized, Body: errorBody{Error: ErrUnauthorized.Error()}}
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(req.Body, &interaction); err != nil {
		g.logger.Warn("Rejected malformed interaction payload", slog.Any("error", err))
		return Response{Status: http.StatusBadRequest, Body: errorBody{Error: ErrMalformedRequest.Error()}}
	}

	decision, err := Route(&interaction)
	if err != nil {
		g.logger.Warn("Rejected interaction", slog.Any("error", err), slog.Int("type", int(interaction.Type)))
		return Response{Status: http.StatusBadRequest, Body: errorBody{Error: err.Error()}}
	}

	switch decision.Kind {
	case DecisionRespond:
		return Response{Status: http.StatusOK, Body: decision.Response}

	case DecisionDispatch:
		if err := g.dispatcher.Dispatch(ctx, decision.Invocation); err != nil {
			g.logger.Error("Failed to dispatch command invocation",
				slog.Any("error", err),
				slog.String("command", decision.Invocation.Name),
				slog.String("interaction_id", decision.Invocation.InteractionID),
			)
			return Response{Status: http.StatusInternalServerError, Body: errorBody{Error: ErrDispatchFailed.Error()}}
		}
		g.logger.Info("Deferred command interaction",
			slog.String("command", decision.Invocation.Name),
			slog.String("interaction_id", decision.Invocation.InteractionID),
		)
		return Response{
			Status: http.StatusOK,
			Body: &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			},
		}

	case DecisionResolveComponent:
		return Response{Status: http.StatusOK, Body: g.resolver.Resolve(&interaction)}
	}

	return Response{Status: http.StatusInternalServerError, Body: errorBody{Error: "internal server error"}}
}
