package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicClient is the alternate completion provider.
type AnthropicClient struct {
	client  *anthropic.Client
	model   anthropic.Model
	timeout time.Duration
}

func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	m := anthropic.ModelClaudeHaiku4_5
	if model != "" {
		m = anthropic.Model(model)
	}
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)
	return &AnthropicClient{
		client:  &client,
		model:   m,
		timeout: requestTimeout,
	}
}

func (c *AnthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   defaultMaxTokens,
		Temperature: anthropic.Float(defaultTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return "", &UpstreamError{Status: apierr.StatusCode, Body: truncateBody(apierr.Error())}
		}
		return "", transportError(err)
	}

	if len(resp.Content) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Content[0].Text)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
