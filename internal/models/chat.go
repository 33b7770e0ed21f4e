package models

import (
	"encoding/json"
)

// ChatTurn is one prior exchange supplied by the client.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat. Persona is forwarded to the
// model verbatim, so it stays raw JSON rather than a typed struct. UserID
// and CharacterID are optional; when both are present the exchange is
// recorded as an Interaction.
type ChatRequest struct {
	Message     string          `json:"message"`
	Persona     json.RawMessage `json:"persona"`
	History     []ChatTurn      `json:"history"`
	UserID      string          `json:"userId,omitempty"`
	CharacterID uint            `json:"characterId,omitempty"`
}

// ChatResponse carries the in-persona reply and its classified emotion.
type ChatResponse struct {
	Response string `json:"response"`
	Emotion  string `json:"emotion"`
}
