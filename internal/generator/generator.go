// Package generator abstracts natural-language response generation. The
// chat service treats any failure here as a signal to fall back to its
// rule-based replies; implementations never need to degrade gracefully
// themselves.
package generator

import (
	"context"

	"github.com/techstore/assistant/internal/domain"
)

// Request carries everything a backend needs to produce a reply: the
// system instruction, the trailing conversation history (already trimmed by
// the caller) and the new user message.
type Request struct {
	SystemPrompt string
	History      []domain.Turn
	Message      string
}

type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
