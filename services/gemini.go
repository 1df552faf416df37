package services

import (
	"context"
	"errors"
	"time"

	"englishcoach/models"

	"google.golang.org/genai"
)

const providerGemini = "gemini"

// Gemini implements Completer with the Gemini generateContent API.
type Gemini struct {
	client  *genai.Client
	initErr error
}

// NewGemini creates the client eagerly; a creation failure (usually a missing
// key) is reported on every Complete call instead of at startup.
func NewGemini(ctx context.Context, apiKey string) *Gemini {
	return newGemini(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
}

func newGemini(ctx context.Context, cfg *genai.ClientConfig) *Gemini {
	client, err := genai.NewClient(ctx, cfg)
	return &Gemini{client: client, initErr: err}
}

func (g *Gemini) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	start := time.Now()
	text, err := g.generate(ctx, req)
	return observe(providerGemini, req.Model, start, text, err)
}

func (g *Gemini) generate(ctx context.Context, req models.CompletionRequest) (string, error) {
	if g.initErr != nil {
		return "", g.initErr
	}
	if g.client == nil {
		return "", errors.New("gemini client not initialized")
	}

	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		TopP:            genai.Ptr(req.TopP),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.SystemPrompt != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("no text in response")
	}
	return text, nil
}
