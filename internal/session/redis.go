package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techstore/assistant/internal/domain"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps each session as a Redis list of JSON-encoded turns,
// trimmed to the cap on every append. Keys expire after the TTL so
// abandoned conversations age out.
type RedisStore struct {
	client   *redis.Client
	maxTurns int
	ttl      time.Duration
}

func NewRedisStore(client *redis.Client, maxTurns int, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, maxTurns: maxTurns, ttl: ttl}
}

func (s *RedisStore) key(id string) string {
	return sessionKeyPrefix + id
}

func (s *RedisStore) History(ctx context.Context, id string) ([]domain.Turn, error) {
	vals, err := s.client.LRange(ctx, s.key(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", id, err)
	}

	turns := make([]domain.Turn, 0, len(vals))
	for _, val := range vals {
		var t domain.Turn
		if err := json.Unmarshal([]byte(val), &t); err != nil {
			return nil, fmt.Errorf("decode session turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (s *RedisStore) Append(ctx context.Context, id string, turns ...domain.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	vals := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode session turn: %w", err)
		}
		vals = append(vals, data)
	}

	key := s.key(id)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, vals...)
	pipe.LTrim(ctx, key, int64(-s.maxTurns), -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append to session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("clear session %s: %w", id, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
