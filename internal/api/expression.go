package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"animeai-app/backend/internal/models"
	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/shared/observability"

	"github.com/gin-gonic/gin"
)

// ImageAnalyzer is the slice of the AI client the expression endpoints need.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, imageB64, instruction string) (string, error)
}

type ExpressionHandler struct {
	ai      ImageAnalyzer
	metrics *observability.Metrics
}

func NewExpressionHandler(ai ImageAnalyzer, metrics *observability.Metrics) *ExpressionHandler {
	return &ExpressionHandler{ai: ai, metrics: metrics}
}

type analyzeExpressionRequest struct {
	Image string `json:"image"`
}

// AnalyzeExpression answers POST /api/analyze-expression: the image goes to
// the vision model with an instruction constraining the answer to the
// seven-word facial vocabulary.
func (h *ExpressionHandler) AnalyzeExpression(c *gin.Context) {
	var req analyzeExpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
		return
	}

	// Accept either raw base64 or a data URL
	imageData := req.Image
	if idx := strings.Index(imageData, ","); idx != -1 {
		imageData = imageData[idx+1:]
	}

	emotion, err := h.ai.AnalyzeImage(c.Request.Context(), imageData, faceInstruction())
	if err != nil {
		h.metrics.RecordProviderError(c.Request.Context(), "analyze-expression")
		logger.FromContext(c).LogError(err, "expression analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emotion": strings.ToLower(strings.TrimSpace(emotion)),
	})
}

// faceInstruction builds the vision prompt from the facial vocabulary.
func faceInstruction() string {
	vocab := models.FaceEmotionVocabulary
	return fmt.Sprintf(
		"Analyze this facial expression and tell me the emotion. Only respond with one word: %s, or %s.",
		strings.Join(vocab[:len(vocab)-1], ", "),
		vocab[len(vocab)-1],
	)
}

type characterExpressionsRequest struct {
	BaseImage string   `json:"baseImage"`
	Emotions  []string `json:"emotions"`
}

// GetCharacterExpressions answers POST /api/get-character-expressions.
// Per-emotion image generation is not implemented yet: every requested
// emotion maps to the base image verbatim, including the empty string.
func (h *ExpressionHandler) GetCharacterExpressions(c *gin.Context) {
	var req characterExpressionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	emotions := req.Emotions
	if len(emotions) == 0 {
		emotions = models.DefaultSheetEmotions
	}

	expressions := make(map[string]string, len(emotions))
	for _, emotion := range emotions {
		expressions[emotion] = req.BaseImage
	}

	c.JSON(http.StatusOK, gin.H{"expressions": expressions})
}
