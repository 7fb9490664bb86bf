package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

// completionAPI is the slice of the OpenAI client the agent needs; tests
// substitute a stub.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client wraps the OpenAI API with rate limiting and retries.
type Client struct {
	api       completionAPI
	limiter   *rate.Limiter
	logger    zerolog.Logger
	model     string
	maxTokens int
	temp      float64
}

// ClientOptions holds options for creating a new Client
type ClientOptions struct {
	APIKey         string
	Model          string
	MaxTokens      int
	Temperature    float64
	RequestsPerSec int
}

// NewClient creates a new agent client bound to the OpenAI API.
func NewClient(opts ClientOptions) *Client {
	if opts.Model == "" {
		opts.Model = openai.GPT4
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 200
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 5
	}

	return &Client{
		api:       openai.NewClient(opts.APIKey),
		limiter:   rate.NewLimiter(rate.Every(time.Second), opts.RequestsPerSec),
		logger:    log.With().Str("component", "agent_client").Logger(),
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		temp:      opts.Temperature,
	}
}

// Answer sends the composed prompt to the model and returns its output
// verbatim. Retries cover transport failures only; the text itself is never
// post-processed.
func (c *Client) Answer(ctx context.Context, question, summary string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	prompt := BuildPrompt(question, summary)
	c.logger.Debug().Int("prompt_len", len(prompt)).Msg("Sending prompt to OpenAI")

	var resp openai.ChatCompletionResponse
	operation := func() error {
		var err error
		resp, err = c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			MaxTokens:   c.maxTokens,
			Temperature: float32(c.temp),
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		})
		return err
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(backoffStrategy, ctx)); err != nil {
		c.logger.Error().Err(err).Msg("OpenAI API error")
		return "", fmt.Errorf("after retries: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.logger.Warn().Msg("OpenAI returned empty choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
