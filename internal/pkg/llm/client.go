// Package llm wraps the completion service behind a single-shot
// prompt-in/text-out interface.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Gemini serves an OpenAI-compatible surface; the stock client pointed at
// it avoids a second SDK.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

// Completer answers a single prompt. No retries, no streaming.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiClient is the Completer backed by the Gemini API.
type GeminiClient struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a completion client for the given model.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(geminiBaseURL),
		),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends the prompt and returns the model's text unmodified.
// The call is bounded by the configured timeout.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("completion service returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
