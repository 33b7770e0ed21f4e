package api

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/shared/observability"
	"animeai-app/backend/shared/redis"

	"github.com/gin-gonic/gin"
)

const ttsCacheTTL = 24 * time.Hour

// SpeechSynthesizer is the slice of the AI client this handler needs.
type SpeechSynthesizer interface {
	Speech(ctx context.Context, text, voice string) ([]byte, error)
}

type SpeechHandler struct {
	ai      SpeechSynthesizer
	cache   *redis.Client
	metrics *observability.Metrics
}

// NewSpeechHandler creates the handler. cache may be nil to disable the
// Redis response cache.
func NewSpeechHandler(ai SpeechSynthesizer, cache *redis.Client, metrics *observability.Metrics) *SpeechHandler {
	return &SpeechHandler{ai: ai, cache: cache, metrics: metrics}
}

type textToSpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// TextToSpeech answers POST /api/text-to-speech. Synthesis is deterministic
// for a given voice and text, so responses are cached in Redis keyed by a
// hash of both.
func (h *SpeechHandler) TextToSpeech(c *gin.Context) {
	var req textToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}
	if req.Voice == "" {
		req.Voice = "nova"
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("tts:%s:%x", req.Voice, sha256.Sum256([]byte(req.Text)))

	if cached, found := h.cache.Get(ctx, cacheKey); found {
		h.metrics.RecordTTSCacheHit(ctx)
		c.JSON(http.StatusOK, gin.H{"audio": cached})
		return
	}

	audioData, err := h.ai.Speech(ctx, req.Text, req.Voice)
	if err != nil {
		h.metrics.RecordProviderError(ctx, "text-to-speech")
		logger.FromContext(c).LogError(err, "speech synthesis failed", "voice", req.Voice)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audioB64 := base64.StdEncoding.EncodeToString(audioData)

	if err := h.cache.Set(ctx, cacheKey, audioB64, ttsCacheTTL); err != nil {
		logger.FromContext(c).Warn("failed to cache TTS response", "error", err.Error())
	}

	c.JSON(http.StatusOK, gin.H{"audio": audioB64})
}
