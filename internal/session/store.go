// Package session stores bounded per-conversation history keyed by a
// client-supplied session id.
package session

import (
	"context"

	"github.com/techstore/assistant/internal/domain"
)

// Store is the session-history abstraction injected into the chat service.
// Append enforces the turn cap by evicting the oldest entries. Clear is
// idempotent: clearing an unknown session succeeds.
type Store interface {
	History(ctx context.Context, id string) ([]domain.Turn, error)
	Append(ctx context.Context, id string, turns ...domain.Turn) error
	Clear(ctx context.Context, id string) error
	Close() error
}
