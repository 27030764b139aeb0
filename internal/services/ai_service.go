package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"aicoach/internal/apperrors"
	"aicoach/internal/config"
)

// requestTimeout bounds the whole call, connect included. There are no
// retries; a failed call surfaces immediately.
const requestTimeout = 60 * time.Second

// AIService is a stateless client for an OpenAI-compatible chat-completions
// endpoint (OpenRouter by default).
type AIService struct {
	client *openai.Client
	model  string
}

// NewAIService builds the client. A blank API key is a configuration error:
// this is a hard startup dependency, not a per-call condition.
func NewAIService(cfg config.AIConfig) (*AIService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, apperrors.NewConfigurationError("OPENROUTER_API_KEY is not set")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: requestTimeout}

	return &AIService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Chat sends a system+user message pair and returns the first completion's
// text. A 2xx response without the expected content yields "", never an
// error; everything else comes back as a remote error with the cause kept.
func (s *AIService) Chat(ctx context.Context, system, user string, temperature float32, maxTokens int) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", remoteError(err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// remoteError folds transport, status and parse failures into a single
// remote error. Non-2xx messages keep the status code and response text for
// diagnostics.
func remoteError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperrors.NewRemoteError(err,
			fmt.Sprintf("AI request failed with status %d: %v", apiErr.HTTPStatusCode, apiErr.Message))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apperrors.NewRemoteError(err,
			fmt.Sprintf("AI request failed with status %d", reqErr.HTTPStatusCode))
	}

	return apperrors.NewRemoteError(err, "AI request failed")
}
