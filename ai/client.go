package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"animeai-app/backend/pkg/config"
	"animeai-app/backend/pkg/logger"
	"animeai-app/backend/pkg/resilience"
)

// Client talks to an OpenAI-compatible API over plain HTTP. One instance is
// shared by all handlers; the underlying http.Client bounds every call with
// the configured timeout and a circuit breaker stops hammering the provider
// while it is down.
type Client struct {
	httpClient *http.Client
	breaker    *resilience.Breaker
	apiKey     string
	baseURL    string

	chatModel   string
	visionModel string
	ttsModel    string
	imageModel  string
}

// NewClient builds a client from the application configuration. A missing
// API key does not prevent construction; the server still serves its
// database-backed endpoints and every provider call fails with a clear
// error instead.
func NewClient() *Client {
	cfg := config.Get()

	return &Client{
		httpClient:  &http.Client{Timeout: cfg.OpenAI.Timeout},
		breaker:     resilience.NewBreaker("openai", logger.GetGlobal(), resilience.Options{}),
		apiKey:      cfg.OpenAI.APIKey,
		baseURL:     cfg.OpenAI.BaseURL,
		chatModel:   cfg.OpenAI.ChatModel,
		visionModel: cfg.OpenAI.VisionModel,
		ttsModel:    cfg.OpenAI.TTSModel,
		imageModel:  cfg.OpenAI.ImageModel,
	}
}

// requireKey guards every provider call.
func (c *Client) requireKey() error {
	if c.apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not configured")
	}
	return nil
}

// ChatCompletion runs one chat completion and returns the assistant text.
// An empty response with no choices returns "" and no error; callers
// substitute their own fallback text.
func (c *Client) ChatCompletion(ctx context.Context, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	reqBody := chatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var result chatCompletionResponse
	if err := c.postJSON(ctx, "/v1/chat/completions", reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}

// AnalyzeImage sends a base64-encoded image with an instruction to the
// vision model and returns the raw text answer.
func (c *Client) AnalyzeImage(ctx context.Context, imageB64, instruction string) (string, error) {
	reqBody := chatCompletionRequest{
		Model:     c.visionModel,
		Messages:  []ChatMessage{VisionMessage(instruction, imageB64)},
		MaxTokens: 10,
	}

	var result chatCompletionResponse
	if err := c.postJSON(ctx, "/v1/chat/completions", reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}

// Speech synthesizes text with the given voice and returns the audio bytes.
func (c *Client) Speech(ctx context.Context, text, voice string) ([]byte, error) {
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(speechRequest{
		Model: c.ttsModel,
		Voice: voice,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TTS request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/audio/speech", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	var audioData []byte
	err = c.breaker.Execute(func() error {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("TTS API request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("TTS API returned status %d: %s", resp.StatusCode, string(bodyBytes))
		}

		audioData, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read TTS response body: %v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return audioData, nil
}

// GenerateImage produces one image for the prompt and returns it base64
// encoded.
func (c *Client) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	reqBody := imageGenerationRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           size,
		ResponseFormat: "b64_json",
	}

	var result imageGenerationResponse
	if err := c.postJSON(ctx, "/v1/images/generations", reqBody, &result); err != nil {
		return "", err
	}

	if len(result.Data) == 0 {
		return "", fmt.Errorf("no image generated by provider")
	}
	if result.Data[0].B64JSON != "" {
		return result.Data[0].B64JSON, nil
	}
	return result.Data[0].URL, nil
}

// postJSON sends a JSON body to the given path and decodes the response
// into out. Non-2xx responses come back as errors carrying the body text.
func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	if err := c.requireKey(); err != nil {
		return err
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.breaker.Execute(func() error {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("provider request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(resp.Body)
			return fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(bodyBytes))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode provider response: %v", err)
		}
		return nil
	})
}
