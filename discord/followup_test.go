package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookNotifier_SendFollowup(t *testing.T) {
	fake := NewFakeSession()
	var gotID, gotToken string
	var gotWait bool
	fake.WebhookExecuteFunc = func(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
		gotID, gotToken, gotWait = webhookID, token, wait
		assert.Equal(t, "Pong!", data.Content)
		return &discordgo.Message{ID: "msg-1"}, nil
	}

	notifier := NewWebhookNotifier(fake, discardLogger())
	err := notifier.SendFollowup(context.Background(), "app-1", "tok-1", &discordgo.WebhookParams{Content: "Pong!"})
	require.NoError(t, err)

	assert.Equal(t, "app-1", gotID)
	assert.Equal(t, "tok-1", gotToken)
	assert.True(t, gotWait)
	assert.Equal(t, []string{"WebhookExecute"}, fake.Trace())
}

func TestWebhookNotifier_SendFollowup_SingleAttempt(t *testing.T) {
	fake := NewFakeSession()
	fake.WebhookExecuteFunc = func(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
		return nil, errors.New("discord unavailable")
	}

	notifier := NewWebhookNotifier(fake, discardLogger())
	err := notifier.SendFollowup(context.Background(), "app-1", "tok-1", &discordgo.WebhookParams{Content: "Pong!"})
	require.Error(t, err)

	// One call, never retried: a retry could deliver twice.
	assert.Equal(t, []string{"WebhookExecute"}, fake.Trace())
}
