package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// WebhookNotifier delivers followup messages over Discord's token-addressed
// webhook channel. The interaction token is a one-shot credential: Discord
// accepts followups against it for roughly fifteen minutes, and an expired
// token fails outright rather than being retried here.
type WebhookNotifier struct {
	session Session
	logger  *slog.Logger
}

// NewWebhookNotifier creates a WebhookNotifier.
func NewWebhookNotifier(session Session, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{session: session, logger: logger}
}

// SendFollowup posts the final message for a deferred interaction. Exactly
// one attempt is made; the caller decides what a failure means.
func (n *WebhookNotifier) SendFollowup(ctx context.Context, applicationID, token string, params *discordgo.WebhookParams) error {
	msg, err := n.session.WebhookExecute(applicationID, token, true, params, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to execute followup webhook: %w", err)
	}
	n.logger.Info("Followup delivered", slog.String("discord_message_id", msg.ID))
	return nil
}
