// Package server exposes the gateway over HTTP. It is a thin adapter: all
// protocol decisions live in the gateway package.
package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/skyline-labs/discord-interactions-bot/gateway"
)

// Server serves the interaction webhook endpoint.
type Server struct {
	app    *fiber.App
	gw     *gateway.Gateway
	logger *slog.Logger
	addr   string
}

// New creates the webhook server.
func New(addr string, gw *gateway.Gateway, logger *slog.Logger) *Server {
	app := fiber.New()
	s := &Server{app: app, gw: gw, logger: logger, addr: addr}
	app.Post("/interactions", s.handleInteraction)
	return s
}

func (s *Server) handleInteraction(c fiber.Ctx) error {
	resp := s.gw.Handle(c.Context(), gateway.InboundRequest{
		Body:      c.BodyRaw(),
		Signature: c.Get("X-Signature-Ed25519"),
		Timestamp: c.Get("X-Signature-Timestamp"),
	})
	return c.Status(resp.Status).JSON(resp.Body)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Starting interaction webhook server", slog.String("addr", s.addr))
	return s.app.Listen(s.addr, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	})
}
