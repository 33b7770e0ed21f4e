package api

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubSynthesizer struct {
	audio    []byte
	err      error
	gotVoice string
	gotText  string
}

func (s *stubSynthesizer) Speech(_ context.Context, text, voice string) ([]byte, error) {
	s.gotText = text
	s.gotVoice = voice
	return s.audio, s.err
}

func newSpeechEngine(synth SpeechSynthesizer) *gin.Engine {
	// nil Redis client, caching is a no-op
	handler := NewSpeechHandler(synth, nil, nil)
	engine := gin.New()
	engine.POST("/api/text-to-speech", handler.TextToSpeech)
	return engine
}

func TestTextToSpeech(t *testing.T) {
	stub := &stubSynthesizer{audio: []byte("mp3 bytes")}
	engine := newSpeechEngine(stub)

	w := performJSON(engine, "POST", "/api/text-to-speech", map[string]interface{}{
		"text":  "Konnichiwa!",
		"voice": "alloy",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("mp3 bytes")), decodeBody(t, w)["audio"])
	assert.Equal(t, "Konnichiwa!", stub.gotText)
	assert.Equal(t, "alloy", stub.gotVoice)
}

func TestTextToSpeechDefaultVoice(t *testing.T) {
	stub := &stubSynthesizer{audio: []byte("x")}
	engine := newSpeechEngine(stub)

	w := performJSON(engine, "POST", "/api/text-to-speech", map[string]interface{}{
		"text": "hello",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nova", stub.gotVoice)
}

func TestTextToSpeechMalformedBody(t *testing.T) {
	engine := newSpeechEngine(&stubSynthesizer{})

	w := performRaw(engine, "POST", "/api/text-to-speech", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided", decodeBody(t, w)["error"])
}

func TestTextToSpeechProviderError(t *testing.T) {
	engine := newSpeechEngine(&stubSynthesizer{err: errors.New("TTS down")})

	w := performJSON(engine, "POST", "/api/text-to-speech", map[string]interface{}{
		"text": "hello",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "TTS down")
}
