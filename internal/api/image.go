package api

import (
	"context"
	"net/http"

	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/shared/observability"

	"github.com/gin-gonic/gin"
)

// ImageGenerator is the slice of the AI client this handler needs.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, size string) (string, error)
}

type ImageHandler struct {
	ai      ImageGenerator
	metrics *observability.Metrics
}

func NewImageHandler(ai ImageGenerator, metrics *observability.Metrics) *ImageHandler {
	return &ImageHandler{ai: ai, metrics: metrics}
}

type generateImageRequest struct {
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	// Image is accepted for a future image-to-image pipeline; the current
	// generation call ignores it.
	Image   string `json:"image"`
	Animate bool   `json:"animate"`
}

// GenerateCharacterImage answers POST /api/generate-character-image with a
// single generated image. With animate set, the same image is returned four
// times as stand-in animation frames; real frame generation is not wired up.
func (h *ImageHandler) GenerateCharacterImage(c *gin.Context) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No prompt provided"})
		return
	}
	if req.Size == "" {
		req.Size = "1024x1024"
	}

	image, err := h.ai.GenerateImage(c.Request.Context(), req.Prompt, req.Size)
	if err != nil {
		h.metrics.RecordProviderError(c.Request.Context(), "generate-image")
		logger.FromContext(c).LogError(err, "image generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.Animate {
		c.JSON(http.StatusOK, gin.H{
			"frames": []string{image, image, image, image},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": image})
}
