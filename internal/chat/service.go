// Package chat orchestrates the assistant: intent classification, product
// search, context assembly and response generation over per-session
// conversation history.
package chat

import (
	"context"
	"log/slog"
	"strings"

	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/domain"
	"github.com/techstore/assistant/internal/generator"
	"github.com/techstore/assistant/internal/intent"
	"github.com/techstore/assistant/internal/search"
	"github.com/techstore/assistant/internal/session"
)

type Service struct {
	engine   *search.Engine
	sessions session.Store
	gen      generator.Generator // nil selects the rule-based generator
}

func NewService(engine *search.Engine, sessions session.Store, gen generator.Generator) *Service {
	return &Service{engine: engine, sessions: sessions, gen: gen}
}

// Reply is the assistant's answer to a single message.
type Reply struct {
	Message   string
	Products  []domain.ScoredProduct
	SessionID string
}

// Respond handles one user message end to end. Generator failures degrade
// to the rule-based fallback; the only error returned to the caller is an
// empty message.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (*Reply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}

	isSearch := intent.IsProductSearch(message)

	var products []domain.ScoredProduct
	var contextBlock string
	if isSearch {
		si := intent.ExtractIntent(message)
		terms := intent.Keywords(message)

		for _, term := range terms {
			products = append(products, s.engine.Search(term, config.DefaultSearchLimit)...)
		}
		if si.Query != "" {
			products = append(products, s.engine.Search(si.Query, config.DefaultSearchLimit)...)
		}
		products = dedupeByName(products)

		if si.HasPriceFilter() {
			inRange := s.engine.ByPriceRange(si.PriceMin, si.PriceMax, config.DefaultSearchLimit)
			if len(products) > 0 {
				products = intersectByID(products, inRange)
			} else {
				products = unscored(inRange)
			}
		}

		if si.StockOnly {
			var inStock []domain.ScoredProduct
			for _, p := range products {
				if p.InStock() {
					inStock = append(inStock, p)
				}
			}
			products = inStock
		}

		// Generic availability question with no concrete match: show what
		// is in stock instead of an empty answer.
		if len(products) == 0 && containsAny(strings.ToLower(message), "stock", "available", "what do you have") {
			products = unscored(s.engine.InStock(config.DefaultSearchLimit))
		}

		searched := terms
		if si.Query != "" {
			searched = append(searched, si.Query)
		}
		contextBlock = BuildContext(products, searched, message)
	}

	history, err := s.sessions.History(ctx, sessionID)
	if err != nil {
		slog.Warn("load session history", "error", err, "session_id", sessionID)
	}

	replyText := s.generate(ctx, message, history, contextBlock, isSearch)

	if err := s.sessions.Append(ctx, sessionID,
		domain.Turn{Role: domain.RoleUser, Content: message},
		domain.Turn{Role: domain.RoleAssistant, Content: replyText},
	); err != nil {
		slog.Warn("append session history", "error", err, "session_id", sessionID)
	}

	top := products
	if len(top) > config.ResponseProductLimit {
		top = top[:config.ResponseProductLimit]
	}
	return &Reply{Message: replyText, Products: top, SessionID: sessionID}, nil
}

// ClearSession drops the session's history. Clearing an unknown session is
// not an error.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *Service) generate(ctx context.Context, message string, history []domain.Turn, contextBlock string, isSearch bool) string {
	if s.gen == nil {
		return FallbackReply(message, contextBlock, isSearch)
	}

	genCtx, cancel := context.WithTimeout(ctx, config.GeneratorTimeout)
	defer cancel()

	trailing := history
	if len(trailing) > config.TrailingHistoryTurns {
		trailing = trailing[len(trailing)-config.TrailingHistoryTurns:]
	}

	text, err := s.gen.Generate(genCtx, generator.Request{
		SystemPrompt: SystemPrompt(contextBlock, isSearch),
		History:      trailing,
		Message:      message,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		slog.Warn("generator failed, using rule-based fallback", "error", err)
		return FallbackReply(message, contextBlock, isSearch)
	}
	return text
}

// dedupeByName keeps the first occurrence of each product name, preserving
// order.
func dedupeByName(products []domain.ScoredProduct) []domain.ScoredProduct {
	seen := make(map[string]bool, len(products))
	var unique []domain.ScoredProduct
	for _, p := range products {
		if !seen[p.Name] {
			seen[p.Name] = true
			unique = append(unique, p)
		}
	}
	return unique
}

// intersectByID keeps the scored products that also appear in the filter
// result.
func intersectByID(products []domain.ScoredProduct, filter []domain.Product) []domain.ScoredProduct {
	allowed := make(map[int]bool, len(filter))
	for _, p := range filter {
		allowed[p.ID] = true
	}
	var kept []domain.ScoredProduct
	for _, p := range products {
		if allowed[p.ID] {
			kept = append(kept, p)
		}
	}
	return kept
}

func unscored(products []domain.Product) []domain.ScoredProduct {
	out := make([]domain.ScoredProduct, len(products))
	for i, p := range products {
		out[i] = domain.ScoredProduct{Product: p}
	}
	return out
}
