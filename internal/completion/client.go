package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/cosmiclearn/learning-service/internal/config"
)

var (
	// ErrNoCredential is returned when no usable API key is configured.
	ErrNoCredential = errors.New("completion service credential not configured")
	// ErrNoChoices is returned when the service answers without a choice.
	ErrNoChoices = errors.New("completion service returned no choices")
)

// Request is one system + user exchange.
type Request struct {
	System string
	User   string
	// JSON asks the service for a JSON object reply.
	JSON bool
}

// Completer is the external chat-completion service.
type Completer interface {
	// Available reports whether a usable credential is configured.
	Available() bool
	Model() string
	Complete(ctx context.Context, req Request) (string, error)
}

type OpenAIClient struct {
	client    *openai.Client
	model     string
	timeout   time.Duration
	available bool
}

func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		timeout:   cfg.Timeout,
		available: cfg.HasCredential(),
	}
}

func (c *OpenAIClient) Available() bool { return c.available }

func (c *OpenAIClient) Model() string { return c.model }

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if !c.available {
		return "", ErrNoCredential
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
	}
	if req.JSON {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}
