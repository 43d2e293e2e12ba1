package session

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/techstore/assistant/internal/config"
)

// NewFromConfig builds the configured session store driver.
func NewFromConfig(cfg *config.Config) (Store, error) {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		return NewRedisStore(client, config.MaxHistoryTurns, config.SessionTTL), nil
	case "memory", "":
		return NewMemoryStore(config.MaxHistoryTurns), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
