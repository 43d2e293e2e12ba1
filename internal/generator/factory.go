package generator

import "github.com/techstore/assistant/internal/config"

// FromConfig selects the generation backend once at startup. A nil result
// means rule-based replies only.
func FromConfig(cfg *config.Config) Generator {
	switch cfg.Generator {
	case "openrouter":
		return NewOpenRouter("", cfg.OpenRouterKey, cfg.OpenRouterModel)
	case "ollama":
		return NewOllama(cfg.OllamaURL, cfg.OllamaModel)
	default:
		return nil
	}
}
