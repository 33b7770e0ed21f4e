package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubImageGenerator struct {
	image   string
	err     error
	gotSize string
}

func (s *stubImageGenerator) GenerateImage(_ context.Context, _, size string) (string, error) {
	s.gotSize = size
	return s.image, s.err
}

func newImageEngine(generator ImageGenerator) *gin.Engine {
	handler := NewImageHandler(generator, nil)
	engine := gin.New()
	engine.POST("/api/generate-character-image", handler.GenerateCharacterImage)
	return engine
}

func TestGenerateCharacterImage(t *testing.T) {
	stub := &stubImageGenerator{image: "b64image"}
	engine := newImageEngine(stub)

	w := performJSON(engine, "POST", "/api/generate-character-image", map[string]interface{}{
		"prompt": "an anime girl with silver hair",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b64image", decodeBody(t, w)["image"])
	assert.Equal(t, "1024x1024", stub.gotSize)
}

func TestGenerateCharacterImageAnimate(t *testing.T) {
	engine := newImageEngine(&stubImageGenerator{image: "frame"})

	w := performJSON(engine, "POST", "/api/generate-character-image", map[string]interface{}{
		"prompt":  "an anime boy",
		"animate": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	frames := decodeBody(t, w)["frames"].([]interface{})
	require.Len(t, frames, 4)
	for _, frame := range frames {
		assert.Equal(t, "frame", frame)
	}
}

func TestGenerateCharacterImageMissingPrompt(t *testing.T) {
	engine := newImageEngine(&stubImageGenerator{})

	w := performJSON(engine, "POST", "/api/generate-character-image", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No prompt provided", decodeBody(t, w)["error"])
}

func TestGenerateCharacterImageProviderError(t *testing.T) {
	engine := newImageEngine(&stubImageGenerator{err: errors.New("image API down")})

	w := performJSON(engine, "POST", "/api/generate-character-image", map[string]interface{}{
		"prompt": "anything",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
