package api

import (
	"context"
	"encoding/json"
	"net/http"

	"animeai-app/backend/internal/models"
	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/shared/observability"

	"github.com/gin-gonic/gin"
)

// ReplyGenerator is the slice of the chat service this handler needs.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, persona json.RawMessage, history []models.ChatTurn, message string) (string, string, error)
}

// UserResolver lazily resolves a username to a persisted user row.
type UserResolver interface {
	GetOrCreate(username string) (*models.User, error)
}

// InteractionRecorder persists one chat exchange.
type InteractionRecorder interface {
	Record(userID, characterID uint, message, response, emotion string) error
}

type ChatHandler struct {
	chat         ReplyGenerator
	users        UserResolver
	interactions InteractionRecorder
	metrics      *observability.Metrics
}

func NewChatHandler(chat ReplyGenerator, users UserResolver, interactions InteractionRecorder, metrics *observability.Metrics) *ChatHandler {
	return &ChatHandler{
		chat:         chat,
		users:        users,
		interactions: interactions,
		metrics:      metrics,
	}
}

// Chat answers POST /api/chat: one provider call for the in-persona reply,
// one to classify its emotion. When the client identifies itself with
// userId and characterId the exchange is recorded as an Interaction;
// recording failures are logged, never surfaced.
func (h *ChatHandler) Chat(c *gin.Context) {
	log := logger.FromContext(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	h.metrics.RecordChatRequest(c.Request.Context())

	response, emotion, err := h.chat.GenerateReply(c.Request.Context(), req.Persona, req.History, req.Message)
	if err != nil {
		h.metrics.RecordProviderError(c.Request.Context(), "chat")
		log.LogError(err, "chat completion failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.UserID != "" && req.CharacterID != 0 {
		if user, uerr := h.users.GetOrCreate(req.UserID); uerr != nil {
			log.LogError(uerr, "failed to resolve user for interaction", "user", req.UserID)
		} else if rerr := h.interactions.Record(user.ID, req.CharacterID, req.Message, response, emotion); rerr != nil {
			log.LogError(rerr, "failed to record interaction", "user", req.UserID)
		}
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response: response,
		Emotion:  emotion,
	})
}
