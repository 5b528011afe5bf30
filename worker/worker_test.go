package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
	"github.com/skyline-labs/discord-interactions-bot/mocks"
	"github.com/skyline-labs/discord-interactions-bot/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func invocationMessage(t *testing.T, inv dispatch.CommandInvocation) *message.Message {
	t.Helper()
	payload, err := json.Marshal(inv)
	require.NoError(t, err)
	return message.NewMessage("msg-1", payload)
}

func newTestWorker(t *testing.T, sender FollowupSender, register func(*Registry)) *Worker {
	t.Helper()
	registry := NewRegistry()
	if register != nil {
		register(registry)
	}
	guard := storage.NewDeliveryGuard(storage.TokenTTL, discardLogger())
	return New(registry, sender, guard, "app-default", discardLogger())
}

func TestWorker_HandleInvocation_DeliversExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-1", "tok-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params *discordgo.WebhookParams) error {
			assert.Equal(t, "Pong!", params.Content)
			return nil
		}).
		Times(1)

	w := newTestWorker(t, sender, func(r *Registry) {
		r.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
			return &discordgo.WebhookParams{Content: "Pong!"}, nil
		}))
	})

	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{
		InteractionID: "int-1",
		ApplicationID: "app-1",
		Token:         "tok-1",
		Name:          "ping",
	}))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-1", "tok-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params *discordgo.WebhookParams) error {
			assert.Equal(t, "Unknown command: frobnicate", params.Content)
			return nil
		}).
		Times(1)

	w := newTestWorker(t, sender, nil)
	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{
		ApplicationID: "app-1",
		Token:         "tok-1",
		Name:          "frobnicate",
	}))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_HandlerErrorBecomesApology(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-1", "tok-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params *discordgo.WebhookParams) error {
			assert.Equal(t, "Sorry, something went wrong processing your command. Please try again!", params.Content)
			return nil
		}).
		Times(1)

	w := newTestWorker(t, sender, func(r *Registry) {
		r.Register("weather", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
			return nil, errors.New("upstream down")
		}))
	})

	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{
		ApplicationID: "app-1",
		Token:         "tok-1",
		Name:          "weather",
	}))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_DeliveryFailureIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-1", "tok-1", gomock.Any()).
		Return(errors.New("discord 500")).
		Times(1)

	w := newTestWorker(t, sender, func(r *Registry) {
		r.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
			return &discordgo.WebhookParams{Content: "Pong!"}, nil
		}))
	})

	// nil keeps the bus from redelivering; a retry could post twice.
	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{
		ApplicationID: "app-1",
		Token:         "tok-1",
		Name:          "ping",
	}))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_DuplicateTokenSendsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-1", "tok-1", gomock.Any()).
		Return(nil).
		Times(1)

	w := newTestWorker(t, sender, func(r *Registry) {
		r.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
			return &discordgo.WebhookParams{Content: "Pong!"}, nil
		}))
	})

	inv := dispatch.CommandInvocation{ApplicationID: "app-1", Token: "tok-1", Name: "ping"}
	assert.NoError(t, w.HandleInvocation(invocationMessage(t, inv)))
	assert.NoError(t, w.HandleInvocation(invocationMessage(t, inv)))
}

func TestWorker_HandleInvocation_MalformedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No SendFollowup expectation: poison messages are dropped.
	w := newTestWorker(t, mocks.NewMockFollowupSender(ctrl), nil)
	err := w.HandleInvocation(message.NewMessage("msg-1", []byte("not json")))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := newTestWorker(t, mocks.NewMockFollowupSender(ctrl), nil)
	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{Name: "ping"}))
	assert.NoError(t, err)
}

func TestWorker_HandleInvocation_FallsBackToConfiguredAppID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := mocks.NewMockFollowupSender(ctrl)
	sender.EXPECT().
		SendFollowup(gomock.Any(), "app-default", "tok-1", gomock.Any()).
		Return(nil).
		Times(1)

	w := newTestWorker(t, sender, func(r *Registry) {
		r.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
			return &discordgo.WebhookParams{Content: "Pong!"}, nil
		}))
	})

	err := w.HandleInvocation(invocationMessage(t, dispatch.CommandInvocation{Token: "tok-1", Name: "ping"}))
	assert.NoError(t, err)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	_, ok := registry.Resolve("ping")
	assert.False(t, ok)

	registry.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
		return &discordgo.WebhookParams{Content: "first"}, nil
	}))
	registry.Register("ping", HandlerFunc(func(context.Context, dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
		return &discordgo.WebhookParams{Content: "second"}, nil
	}))

	handler, ok := registry.Resolve("ping")
	require.True(t, ok)
	params, err := handler.Handle(context.Background(), dispatch.CommandInvocation{Name: "ping"})
	require.NoError(t, err)
	assert.Equal(t, "second", params.Content)
}
