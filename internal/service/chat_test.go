package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"animeai-app/backend/ai"
	"animeai-app/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompleter answers scripted responses in call order and records the
// messages it was given.
type stubCompleter struct {
	responses []string
	err       error
	calls     [][]ai.ChatMessage
}

func (s *stubCompleter) ChatCompletion(_ context.Context, messages []ai.ChatMessage, _ float64, _ int) (string, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return "", s.err
	}
	if len(s.calls) > len(s.responses) {
		return "", nil
	}
	return s.responses[len(s.calls)-1], nil
}

func TestGenerateReply(t *testing.T) {
	stub := &stubCompleter{responses: []string{"Konnichiwa!", "happy"}}
	svc := NewChatService(stub)

	persona := json.RawMessage(`{"type":"Friendly"}`)
	history := []models.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}

	reply, emotion, err := svc.GenerateReply(context.Background(), persona, history, "how are you?")
	require.NoError(t, err)
	assert.Equal(t, "Konnichiwa!", reply)
	assert.Equal(t, "happy", emotion)

	require.Len(t, stub.calls, 2)

	// first call: system prompt with persona, the history, then the message
	first := stub.calls[0]
	require.Len(t, first, 4)
	assert.Equal(t, "system", first[0].Role)
	assert.Contains(t, first[0].Content.(string), `{"type":"Friendly"}`)
	assert.Equal(t, "user", first[3].Role)
	assert.Equal(t, "how are you?", first[3].Content)

	// second call classifies the reply, not the user message
	second := stub.calls[1]
	require.Len(t, second, 2)
	assert.Equal(t, "Konnichiwa!", second[1].Content)
}

func TestGenerateReplyEmptyPersona(t *testing.T) {
	stub := &stubCompleter{responses: []string{"...", "neutral"}}
	svc := NewChatService(stub)

	_, _, err := svc.GenerateReply(context.Background(), nil, nil, "hello")
	require.NoError(t, err)

	assert.Contains(t, stub.calls[0][0].Content.(string), "traits: {}")
}

func TestGenerateReplyFallbacks(t *testing.T) {
	// provider answers nothing for either call
	stub := &stubCompleter{responses: []string{"", ""}}
	svc := NewChatService(stub)

	reply, emotion, err := svc.GenerateReply(context.Background(), nil, nil, "hello")
	require.NoError(t, err)
	assert.Equal(t, "...", reply)
	assert.Equal(t, "neutral", emotion)
}

func TestGenerateReplyPropagatesError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("provider down")}
	svc := NewChatService(stub)

	_, _, err := svc.GenerateReply(context.Background(), nil, nil, "hello")
	assert.Error(t, err)
}

func TestNormalizeEmotion(t *testing.T) {
	cases := map[string]string{
		"happy":      "happy",
		"Happy":      "happy",
		" EXCITED! ": "excited",
		`"sad"`:      "sad",
		"nervous.":   "nervous",
		"joyful":     "neutral",
		"":           "neutral",
		"I am happy": "neutral",
	}

	for raw, want := range cases {
		assert.Equal(t, want, NormalizeEmotion(raw), "input %q", raw)
	}
}
