package gateway

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/dispatch"
)

// DecisionKind tells the gateway how to act on a routed interaction.
type DecisionKind int

const (
	// DecisionRespond carries a response to return inline.
	DecisionRespond DecisionKind = iota
	// DecisionDispatch defers the interaction and hands the invocation to
	// the worker.
	DecisionDispatch
	// DecisionResolveComponent resolves a component click in-process.
	DecisionResolveComponent
)

// Decision is the outcome of routing one interaction.
type Decision struct {
	Kind       DecisionKind
	Response   *discordgo.InteractionResponse
	Invocation dispatch.CommandInvocation
}

// Route classifies a verified interaction payload. The first matching rule
// wins:
//
//	PING                -> respond PONG inline
//	APPLICATION_COMMAND -> deferred ack, dispatch to the worker
//	MESSAGE_COMPONENT   -> resolve in-process
//
// Routing knows nothing about command semantics; every command gets the same
// deferred ack regardless of its name.
func Route(interaction *discordgo.Interaction) (Decision, error) {
	switch interaction.Type {
	case discordgo.InteractionPing:
		return Decision{
			Kind:     DecisionRespond,
			Response: &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong},
		}, nil

	case discordgo.InteractionApplicationCommand:
		data := interaction.ApplicationCommandData()
		inv := dispatch.CommandInvocation{
			InteractionID: interaction.ID,
			ApplicationID: interaction.AppID,
			Token:         interaction.Token,
			Name:          data.Name,
			Options:       commandOptions(data.Options),
		}
		return Decision{Kind: DecisionDispatch, Invocation: inv}, nil

	case discordgo.InteractionMessageComponent:
		return Decision{Kind: DecisionResolveComponent}, nil

	default:
		return Decision{}, fmt.Errorf("%w: %d", ErrUnknownInteraction, interaction.Type)
	}
}

func commandOptions(options []*discordgo.ApplicationCommandInteractionDataOption) []dispatch.CommandOption {
	if len(options) == 0 {
		return nil
	}
	converted := make([]dispatch.CommandOption, 0, len(options))
	for _, opt := range options {
		if opt == nil {
			continue
		}
		converted = append(converted, dispatch.CommandOption{
			Name:  opt.Name,
			Value: optionValue(opt.Value),
		})
	}
	return converted
}

// optionValue flattens an option value to a string. Discord sends strings for
// string options and float64 for integer/number options.
func optionValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
