package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"englishcoach/models"

	"github.com/rs/zerolog/log"
)

// FallbackModel is offered when the model mapping is absent or unreadable.
var FallbackModel = models.ModelOption{ID: "no-model", Name: "No Model"}

// Registry holds the selectable models, read once at startup.
type Registry struct {
	models []models.ModelOption
}

// NewRegistry reads a JSON object of model id to display name. It never fails:
// bad input degrades to the single FallbackModel.
func NewRegistry(raw string) *Registry {
	opts, err := parseModelMapping(raw)
	if err != nil {
		log.Warn().Err(err).Msg("model mapping unusable, offering fallback model")
		opts = []models.ModelOption{FallbackModel}
	}
	return &Registry{models: opts}
}

// ListModels returns a copy of the configured models in document order.
func (r *Registry) ListModels() []models.ModelOption {
	out := make([]models.ModelOption, len(r.models))
	copy(out, r.models)
	return out
}

// parseModelMapping walks the object token by token so key order survives.
// A repeated key keeps its first position and its last value.
func parseModelMapping(raw string) ([]models.ModelOption, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("model mapping is empty")
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read model mapping: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("model mapping must be a JSON object")
	}

	var out []models.ModelOption
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read model id: %w", err)
		}
		id := tok.(string)

		var name *string
		if err := dec.Decode(&name); err != nil {
			return nil, fmt.Errorf("model %q: display name must be a string: %w", id, err)
		}
		if name == nil {
			return nil, fmt.Errorf("model %q: display name must be a string, got null", id)
		}

		if i, seen := index[id]; seen {
			out[i].Name = *name
			continue
		}
		index[id] = len(out)
		out = append(out, models.ModelOption{ID: id, Name: *name})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read model mapping: %w", err)
	}
	if dec.More() {
		return nil, errors.New("trailing data after model mapping")
	}
	if out == nil {
		out = []models.ModelOption{}
	}
	return out, nil
}
