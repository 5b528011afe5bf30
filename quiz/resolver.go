package quiz

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Resolver answers trivia button clicks. Resolution is pure computation over
// the interaction payload, so the gateway runs it inline instead of deferring.
type Resolver struct {
	logger *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve decodes the clicked button and grades the answer against the
// answers parsed out of the question message. Any inconsistency — foreign
// custom ID, truncated message, out-of-range index — yields the generic
// error response rather than an error the user cannot act on.
func (r *Resolver) Resolve(interaction *discordgo.Interaction) *discordgo.InteractionResponse {
	data, ok := interaction.Data.(discordgo.MessageComponentInteractionData)
	if !ok {
		r.logger.Warn("Component interaction without component data",
			slog.String("interaction_id", interaction.ID))
		return genericErrorResponse()
	}

	selected, correct, err := DecodeAnswerID(data.CustomID)
	if err != nil {
		r.logger.Warn("Unrecognized component custom id",
			slog.Any("error", err),
			slog.String("interaction_id", interaction.ID))
		return genericErrorResponse()
	}

	var content string
	if interaction.Message != nil {
		content = interaction.Message.Content
	}
	answers := ParseAnswerLines(content)

	if selected < 0 || selected >= len(answers) || correct < 0 || correct >= len(answers) {
		r.logger.Warn("Trivia answer index out of range",
			slog.Int("selected", selected),
			slog.Int("correct", correct),
			slog.Int("answers", len(answers)),
			slog.String("interaction_id", interaction.ID))
		return genericErrorResponse()
	}

	correctAnswer := answers[correct]
	var msg string
	if selected == correct {
		msg = fmt.Sprintf("✅ Correct! The answer was: %s", correctAnswer)
	} else {
		msg = fmt.Sprintf("❌ Sorry, that's incorrect. The correct answer was: %s", correctAnswer)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: msg,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

// genericErrorResponse is the safe fallback, visible only to the clicker.
func genericErrorResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Sorry, there was an error processing your answer.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
