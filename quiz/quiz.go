// Package quiz owns the trivia round format: the button custom IDs the worker
// generates and the resolver that decodes them when a button is clicked.
//
// A round has no server-side state. The rendered question message is the only
// durable record, so the resolver re-derives the answers from the message text
// and the custom ID carries both the clicked and the correct index.
package quiz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const answerIDPrefix = "trivia_answer_"

// EncodeAnswerID builds a button custom ID embedding the answer the button
// represents and the index of the correct answer. Both indices are 0-based.
func EncodeAnswerID(selected, correct int) string {
	return fmt.Sprintf("%s%d_%d", answerIDPrefix, selected, correct)
}

// DecodeAnswerID recovers (selected, correct) from a button custom ID.
func DecodeAnswerID(customID string) (selected, correct int, err error) {
	rest, found := strings.CutPrefix(customID, answerIDPrefix)
	if !found {
		return 0, 0, fmt.Errorf("not a trivia answer id: %q", customID)
	}
	parts := strings.Split(rest, "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed trivia answer id: %q", customID)
	}
	selected, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed trivia answer id: %q", customID)
	}
	correct, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed trivia answer id: %q", customID)
	}
	return selected, correct, nil
}

// AnswerButtons builds one numbered button per answer, wrapped in an action
// row ready to attach to the question message.
func AnswerButtons(count, correct int) []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, count)
	for i := 0; i < count; i++ {
		buttons = append(buttons, discordgo.Button{
			Label:    strconv.Itoa(i + 1),
			Style:    discordgo.PrimaryButton,
			CustomID: EncodeAnswerID(i, correct),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// ParseAnswerLines recovers the candidate answers from a rendered question
// message. Answer lines start with a numeral followed by a period, e.g.
// "2. London". All assumptions about the rendered format live here; the
// trivia command builds its message through FormatQuestion below to match.
func ParseAnswerLines(content string) []string {
	var answers []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		_, rest, found := strings.Cut(line, ".")
		if !found {
			continue
		}
		answers = append(answers, strings.TrimSpace(rest))
	}
	return answers
}

// FormatQuestion renders a question message whose answer lines round-trip
// through ParseAnswerLines.
func FormatQuestion(category, difficulty, question string, answers []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 **%s** (%s)\n\n", category, difficulty)
	fmt.Fprintf(&b, "**Question:** %s\n\n", question)
	b.WriteString("**Choose your answer:**\n")
	for i, answer := range answers {
		fmt.Fprintf(&b, "%d. %s\n", i+1, answer)
	}
	return b.String()
}
