// Package llm talks to an OpenAI-compatible provider for the four call types
// of the pipeline: theme extraction, per-theme asset generation, post ranking
// and chat-based editing. Every call is single-attempt; stage-level fallbacks
// live next to each call.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/contentcycle/contentcycle/pkg/config"
)

// ErrNotConfigured is returned when the provider API key is missing
var ErrNotConfigured = errors.New("llm provider is not configured, api key missing")

// Generator is the process-wide LLM client, constructed once at startup and
// shared by all request handlers
type Generator struct {
	client *openai.Client
	cfg    config.LLMConfig
}

// NewGenerator creates a generator from the LLM configuration
func NewGenerator(cfg config.LLMConfig) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Generator{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Configured reports whether an API key is present. Handlers check this
// before any processing begins.
func (g *Generator) Configured() bool { return g.cfg.APIKey != "" }

// completeJSON issues one chat completion in JSON mode and returns the raw
// message content. No retries: callers fall back to templates on failure.
func (g *Generator) completeJSON(ctx context.Context, systemMsg, userMsg string, maxTokens int) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	messages := []openai.ChatCompletionMessage{}
	if systemMsg != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemMsg,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMsg,
	})

	return g.complete(ctx, messages, maxTokens)
}

// complete issues one chat completion in JSON mode with a prebuilt message list
func (g *Generator) complete(ctx context.Context, messages []openai.ChatCompletionMessage, maxTokens int) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	req := openai.ChatCompletionRequest{
		Model:       g.cfg.Model,
		Temperature: float32(g.cfg.Temperature),
		MaxTokens:   maxTokens,
		Messages:    messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in llm response")
	}
	return content, nil
}

// unmarshalObject parses a JSON object response into dst
func unmarshalObject(content string, dst any) error {
	if err := json.Unmarshal([]byte(content), dst); err != nil {
		return fmt.Errorf("failed to parse json response: %w", err)
	}
	return nil
}
