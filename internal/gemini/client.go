package gemini

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/leetmentor/bot/internal/infrastructure"
)

// Client generates prose using Google's Gemini API
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, config *infrastructure.GeminiConfig, logger *zap.Logger) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   config.Model,
		timeout: config.Timeout,
		logger:  logger,
	}, nil
}

// Generate produces a completion for the given prompt
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	infrastructure.LogUpstreamCall(c.logger, "gemini.generate", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return text, nil
}
