package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"animeai-app/backend/ai"
	"animeai-app/backend/internal/models"
)

// ChatCompleter is the slice of the AI client the chat service needs.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []ai.ChatMessage, temperature float64, maxTokens int) (string, error)
}

// ChatService turns a persona, history and user message into an in-persona
// reply plus a classified emotion, using two sequential provider calls.
type ChatService struct {
	client ChatCompleter
}

func NewChatService(client ChatCompleter) *ChatService {
	return &ChatService{client: client}
}

// GenerateReply runs the reply and emotion-classification calls. An empty
// reply from the provider degrades to "..." and an unusable emotion to
// "neutral"; only transport failures surface as errors.
func (s *ChatService) GenerateReply(ctx context.Context, persona json.RawMessage, history []models.ChatTurn, message string) (string, string, error) {
	personaJSON := string(persona)
	if personaJSON == "" {
		personaJSON = "{}"
	}

	messages := make([]ai.ChatMessage, 0, len(history)+2)
	messages = append(messages, ai.TextMessage("system", fmt.Sprintf(
		"You are an anime character with the following traits: %s. Respond as this character would, with appropriate tone, expressions, and mannerisms.",
		personaJSON,
	)))
	for _, turn := range history {
		messages = append(messages, ai.TextMessage(turn.Role, turn.Content))
	}
	messages = append(messages, ai.TextMessage("user", message))

	reply, err := s.client.ChatCompletion(ctx, messages, 0.7, 150)
	if err != nil {
		return "", "", err
	}
	if reply == "" {
		reply = "..."
	}

	emotion, err := s.classifyEmotion(ctx, reply)
	if err != nil {
		return "", "", err
	}

	return reply, emotion, nil
}

// classifyEmotion asks the model for the primary emotion of the reply,
// constrained to the nine-word vocabulary.
func (s *ChatService) classifyEmotion(ctx context.Context, reply string) (string, error) {
	raw, err := s.client.ChatCompletion(ctx, []ai.ChatMessage{
		ai.TextMessage("system",
			"Extract the primary emotion from this anime character's response. Output only one word: happy, sad, angry, surprised, embarrassed, thoughtful, excited, nervous, or neutral."),
		ai.TextMessage("user", reply),
	}, 0.3, 10)
	if err != nil {
		return "", err
	}
	return NormalizeEmotion(raw), nil
}

// NormalizeEmotion lowercases and trims a classifier answer and falls back
// to "neutral" for anything outside the vocabulary.
func NormalizeEmotion(raw string) string {
	emotion := strings.ToLower(strings.TrimSpace(raw))
	emotion = strings.Trim(emotion, ".!\"'")
	if !models.IsKnownEmotion(emotion) {
		return "neutral"
	}
	return emotion
}
