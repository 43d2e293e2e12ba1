package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Catalog
	CatalogSource string `env:"CATALOG_SOURCE" envDefault:"json"` // json | postgres
	CatalogPath   string `env:"CATALOG_PATH" envDefault:"database/products.json"`
	DatabaseURL   string `env:"DATABASE_URL"`

	// Response generation
	Generator       string `env:"GENERATOR" envDefault:"rules"` // openrouter | ollama | rules
	OpenRouterKey   string `env:"OPENROUTER_API_KEY"`
	OpenRouterModel string `env:"OPENROUTER_MODEL" envDefault:"openai/gpt-4o-mini"`
	OllamaURL       string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel     string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`

	// Session storage
	SessionStore string `env:"SESSION_STORE" envDefault:"memory"` // memory | redis
	RedisAddr    string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// Telegram gateway
	BotToken string `env:"BOT_TOKEN"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
