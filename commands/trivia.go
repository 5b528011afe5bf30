package commands

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/skyline-labs/discord-interactions-bot/config"
	"github.com/skyline-labs/discord-interactions-bot/dispatch"
	"github.com/skyline-labs/discord-interactions-bot/quiz"
)

const triviaTimeout = 5 * time.Second

const triviaApology = "Sorry, I couldn't fetch a trivia question. Please try again!"

// TriviaHandler answers /trivia with a question from OpenTrivia DB and one
// button per answer. The round's state lives entirely in the message: the
// answer text in the numbered lines, the correct index in the button custom
// IDs. Nothing is stored on our side.
type TriviaHandler struct {
	client *http.Client
	cfg    config.Trivia
	logger *slog.Logger
}

// NewTriviaHandler creates a TriviaHandler.
func NewTriviaHandler(cfg config.Trivia, logger *slog.Logger) *TriviaHandler {
	return &TriviaHandler{
		client: &http.Client{Timeout: triviaTimeout},
		cfg:    cfg,
		logger: logger,
	}
}

// question is one fetched trivia round with answers already shuffled.
type question struct {
	Category   string
	Difficulty string
	Text       string
	Answers    []string
	Correct    int
}

// Handle produces the trivia question followup.
func (h *TriviaHandler) Handle(ctx context.Context, inv dispatch.CommandInvocation) (*discordgo.WebhookParams, error) {
	category, _ := inv.Option("category")

	q, err := h.fetchQuestion(ctx, category)
	if err != nil {
		h.logger.Error("Failed to fetch trivia question",
			slog.Any("error", err),
			slog.String("category", category),
		)
		return &discordgo.WebhookParams{Content: triviaApology}, nil
	}

	return &discordgo.WebhookParams{
		Content:    quiz.FormatQuestion(q.Category, q.Difficulty, q.Text, q.Answers),
		Components: quiz.AnswerButtons(len(q.Answers), q.Correct),
	}, nil
}

type triviaAPIResponse struct {
	ResponseCode int `json:"response_code"`
	Results      []struct {
		Category         string   `json:"category"`
		Difficulty       string   `json:"difficulty"`
		Question         string   `json:"question"`
		CorrectAnswer    string   `json:"correct_answer"`
		IncorrectAnswers []string `json:"incorrect_answers"`
	} `json:"results"`
}

// fetchQuestion retrieves one question. The API is asked for base64-encoded
// fields so special characters and HTML entities survive the trip.
func (h *TriviaHandler) fetchQuestion(ctx context.Context, category string) (*question, error) {
	query := url.Values{}
	query.Set("amount", "1")
	query.Set("encode", "base64")
	if category != "" {
		query.Set("category", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.cfg.APIURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trivia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia request failed: unexpected status %d", resp.StatusCode)
	}

	var apiResp triviaAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode trivia response: %w", err)
	}
	if apiResp.ResponseCode != 0 || len(apiResp.Results) == 0 {
		return nil, fmt.Errorf("trivia API response code %d", apiResp.ResponseCode)
	}

	result := apiResp.Results[0]
	text, err := decodeField(result.Question)
	if err != nil {
		return nil, err
	}
	correctAnswer, err := decodeField(result.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	categoryName, err := decodeField(result.Category)
	if err != nil {
		return nil, err
	}
	difficulty, err := decodeField(result.Difficulty)
	if err != nil {
		return nil, err
	}

	answers := []string{correctAnswer}
	for _, encoded := range result.IncorrectAnswers {
		answer, err := decodeField(encoded)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	rand.Shuffle(len(answers), func(i, j int) {
		answers[i], answers[j] = answers[j], answers[i]
	})

	correct := 0
	for i, answer := range answers {
		if answer == correctAnswer {
			correct = i
			break
		}
	}

	return &question{
		Category:   categoryName,
		Difficulty: capitalize(difficulty),
		Text:       text,
		Answers:    answers,
		Correct:    correct,
	}, nil
}

func decodeField(encoded string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode trivia field: %w", err)
	}
	return html.UnescapeString(string(decoded)), nil
}
