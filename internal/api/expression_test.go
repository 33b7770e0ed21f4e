package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"animeai-app/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyzer struct {
	answer      string
	err         error
	gotImage    string
	instruction string
}

func (s *stubAnalyzer) AnalyzeImage(_ context.Context, imageB64, instruction string) (string, error) {
	s.gotImage = imageB64
	s.instruction = instruction
	return s.answer, s.err
}

func newExpressionEngine(analyzer ImageAnalyzer) *gin.Engine {
	handler := NewExpressionHandler(analyzer, nil)
	engine := gin.New()
	engine.POST("/api/analyze-expression", handler.AnalyzeExpression)
	engine.POST("/api/get-character-expressions", handler.GetCharacterExpressions)
	return engine
}

func TestAnalyzeExpression(t *testing.T) {
	stub := &stubAnalyzer{answer: " Happy\n"}
	engine := newExpressionEngine(stub)

	w := performJSON(engine, "POST", "/api/analyze-expression", map[string]interface{}{
		"image": "aGVsbG8=",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "happy", decodeBody(t, w)["emotion"])
	assert.Equal(t, "aGVsbG8=", stub.gotImage)
	// the instruction pins the answer to the facial vocabulary
	for _, emotion := range models.FaceEmotionVocabulary {
		assert.Contains(t, stub.instruction, emotion)
	}
}

func TestAnalyzeExpressionStripsDataURL(t *testing.T) {
	stub := &stubAnalyzer{answer: "neutral"}
	engine := newExpressionEngine(stub)

	w := performJSON(engine, "POST", "/api/analyze-expression", map[string]interface{}{
		"image": "data:image/jpeg;base64,aGVsbG8=",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "aGVsbG8=", stub.gotImage)
}

func TestAnalyzeExpressionMissingImage(t *testing.T) {
	engine := newExpressionEngine(&stubAnalyzer{})

	w := performJSON(engine, "POST", "/api/analyze-expression", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No image provided", decodeBody(t, w)["error"])

	w = performRaw(engine, "POST", "/api/analyze-expression", "garbage")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeExpressionProviderError(t *testing.T) {
	engine := newExpressionEngine(&stubAnalyzer{err: errors.New("vision down")})

	w := performJSON(engine, "POST", "/api/analyze-expression", map[string]interface{}{
		"image": "aGVsbG8=",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetCharacterExpressionsDefaults(t *testing.T) {
	engine := newExpressionEngine(&stubAnalyzer{})

	w := performJSON(engine, "POST", "/api/get-character-expressions", map[string]interface{}{
		"baseImage": "/assets/mika.png",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	expressions := decodeBody(t, w)["expressions"].(map[string]interface{})
	require.Len(t, expressions, len(models.DefaultSheetEmotions))
	for _, emotion := range models.DefaultSheetEmotions {
		assert.Equal(t, "/assets/mika.png", expressions[emotion])
	}
}

func TestGetCharacterExpressionsCustomEmotions(t *testing.T) {
	engine := newExpressionEngine(&stubAnalyzer{})

	w := performJSON(engine, "POST", "/api/get-character-expressions", map[string]interface{}{
		"baseImage": "/assets/yuki.png",
		"emotions":  []string{"happy", "nervous"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	expressions := decodeBody(t, w)["expressions"].(map[string]interface{})
	require.Len(t, expressions, 2)
	assert.Equal(t, "/assets/yuki.png", expressions["nervous"])
}

func TestGetCharacterExpressionsEmptyBaseImage(t *testing.T) {
	engine := newExpressionEngine(&stubAnalyzer{})

	w := performJSON(engine, "POST", "/api/get-character-expressions", map[string]interface{}{
		"emotions": []string{"happy"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// an absent base image maps every emotion to the empty string
	expressions := decodeBody(t, w)["expressions"].(map[string]interface{})
	assert.Equal(t, "", expressions["happy"])
}
