package services

import (
	"context"
	"fmt"
	"time"

	"englishcoach/config"
	"englishcoach/metrics"
	"englishcoach/models"

	"github.com/rs/zerolog/log"
)

const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	defaultTopP        = 1
)

// Completer sends one prompt to the remote model and returns the text of the
// first choice. Implementations never retry and only return ErrGenerationFailed.
type Completer interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
}

// NewCompleter builds the backend selected by cfg.Completion.Provider.
func NewCompleter(cfg *config.Config) (Completer, error) {
	switch cfg.Completion.Provider {
	case config.ProviderOpenRouter, "":
		return NewOpenRouter(OpenRouterOptions{
			APIKey:  cfg.OpenRouter.APIKey,
			BaseURL: cfg.OpenRouter.BaseURL,
			Referer: cfg.OpenRouter.Referer,
			Title:   cfg.OpenRouter.Title,
		}), nil
	case config.ProviderGemini:
		return NewGemini(context.Background(), cfg.Gemini.ApiKey), nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Completion.Provider)
	}
}

// observe records the outcome of one completion and hides its cause from callers.
func observe(provider, model string, start time.Time, text string, err error) (string, error) {
	metrics.CompletionDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Completions.WithLabelValues(provider, "error").Inc()
		log.Error().Err(err).Str("provider", provider).Str("model", model).Msg("completion request failed")
		return "", ErrGenerationFailed
	}
	metrics.Completions.WithLabelValues(provider, "ok").Inc()
	log.Debug().Str("provider", provider).Str("model", model).Int("chars", len(text)).
		Dur("took", time.Since(start)).Msg("completion received")
	return text, nil
}
