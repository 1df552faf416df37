package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"

	DefaultOpenRouterURL = "https://openrouter.ai/api/v1"
)

// lookupEnv is swapped out in tests.
var lookupEnv = os.LookupEnv

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Completion struct {
		Provider string `yaml:"provider"`
	} `yaml:"completion"`

	OpenRouter struct {
		APIKey  string `yaml:"apiKey"`
		BaseURL string `yaml:"baseURL"`
		Referer string `yaml:"referer"`
		Title   string `yaml:"title"`
	} `yaml:"openrouter"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
	} `yaml:"gemini"`

	// Models is a JSON object mapping model id to display name
	Models string `yaml:"models"`

	Practice struct {
		TranslationLanguage string `yaml:"translationLanguage"`
	} `yaml:"practice"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads the configuration file, applies defaults and then
// environment overrides. A missing file is not an error when path is empty.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	cfg.applyEnv(lookupEnv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = []string{"http://localhost:5173"}
	}
	if c.Completion.Provider == "" {
		c.Completion.Provider = ProviderOpenRouter
	}
	if c.OpenRouter.BaseURL == "" {
		c.OpenRouter.BaseURL = DefaultOpenRouterURL
	}
	if c.OpenRouter.Title == "" {
		c.OpenRouter.Title = "English Learning App"
	}
	if c.Practice.TranslationLanguage == "" {
		c.Practice.TranslationLanguage = "Indonesian"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("OPENROUTER_API_KEY"); ok {
		c.OpenRouter.APIKey = v
	}
	if v, ok := lookup("OPENROUTER_MODELS"); ok {
		c.Models = v
	}
	if v, ok := lookup("GEMINI_API_KEY"); ok {
		c.Gemini.ApiKey = v
	}
	if v, ok := lookup("ENGLISHCOACH_PROVIDER"); ok {
		c.Completion.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

// Validate rejects settings the server cannot start with. Missing API keys are
// allowed: completions then fail per call.
func (c *Config) Validate() error {
	switch c.Completion.Provider {
	case ProviderOpenRouter, ProviderGemini:
	default:
		return fmt.Errorf("unknown completion provider %q", c.Completion.Provider)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}
