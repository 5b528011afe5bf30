package discord

import (
	"github.com/bwmarrin/discordgo"
)

// FakeSession provides a programmable stub for the Session interface. Each
// method has a corresponding Func field that can be set per-test; calls are
// recorded in a trace for order assertions.
type FakeSession struct {
	trace []string

	WebhookExecuteFunc           func(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ApplicationCommandCreateFunc func(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandsFunc      func(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// NewFakeSession initializes a new FakeSession with an empty trace.
func NewFakeSession() *FakeSession {
	return &FakeSession{trace: make([]string, 0)}
}

// Trace returns the names of the methods called, in order.
func (f *FakeSession) Trace() []string {
	return f.trace
}

func (f *FakeSession) record(name string) {
	f.trace = append(f.trace, name)
}

func (f *FakeSession) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.record("WebhookExecute")
	if f.WebhookExecuteFunc != nil {
		return f.WebhookExecuteFunc(webhookID, token, wait, data, options...)
	}
	return &discordgo.Message{}, nil
}

func (f *FakeSession) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.record("ApplicationCommandCreate")
	if f.ApplicationCommandCreateFunc != nil {
		return f.ApplicationCommandCreateFunc(appID, guildID, cmd, options...)
	}
	return cmd, nil
}

func (f *FakeSession) ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.record("ApplicationCommands")
	if f.ApplicationCommandsFunc != nil {
		return f.ApplicationCommandsFunc(appID, guildID, options...)
	}
	return nil, nil
}
