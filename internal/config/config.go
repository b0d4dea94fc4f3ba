package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8000"`

	// DatabaseURL is a GORM DSN. A missing value is fatal at startup.
	DatabaseURL string `env:"DATABASE_URL"`
	DBDriver    string `env:"DB_DRIVER" envDefault:"mysql"`

	// Completion service (any OpenAI-compatible endpoint; Ollama by default).
	AIProvider    string `env:"AI_PROVIDER" envDefault:"openai"`
	OllamaBaseURL string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434/v1"`
	OllamaModel   string `env:"OLLAMA_MODEL" envDefault:"qwen2:0.5b"`
	OllamaAPIKey  string `env:"OLLAMA_API_KEY" envDefault:"ollama"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DatabaseURL == "" {
		return Config{}, ErrMissingDatabaseURL
	}
	return cfg, nil
}
