package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"englishcoach/models"

	openai "github.com/sashabaranov/go-openai"
)

const providerOpenRouter = "openrouter"

// OpenRouterOptions configures the OpenAI-compatible chat completions backend.
type OpenRouterOptions struct {
	APIKey  string
	BaseURL string
	// Referer and Title are sent as HTTP-Referer and X-Title for OpenRouter app attribution.
	Referer string
	Title   string
	// HTTPClient defaults to http.DefaultClient's transport with no timeout.
	HTTPClient *http.Client
}

// OpenRouter implements Completer against POST {BaseURL}/chat/completions.
type OpenRouter struct {
	client *openai.Client
}

func NewOpenRouter(opts OpenRouterOptions) *OpenRouter {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	base := opts.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	cfg.HTTPClient = &http.Client{
		Transport: &attributionTransport{next: transport, referer: opts.Referer, title: opts.Title},
		Timeout:   base.Timeout,
	}

	return &OpenRouter{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenRouter) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, req)
	return observe(providerOpenRouter, req.Model, start, text, err)
}

func (c *OpenRouter) complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
		TopP:        req.TopP,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	if resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty content in response")
	}
	return resp.Choices[0].Message.Content, nil
}

type attributionTransport struct {
	next    http.RoundTripper
	referer string
	title   string
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		r.Header.Set("X-Title", t.title)
	}
	return t.next.RoundTrip(r)
}
