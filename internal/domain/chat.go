package domain

import "github.com/shopspring/decimal"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single entry in a session's conversation history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SearchIntent holds the structured search parameters extracted from a
// single user message. Created fresh per message and discarded after use.
type SearchIntent struct {
	Query     string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	StockOnly bool
}

func (si SearchIntent) HasPriceFilter() bool {
	return si.PriceMin != nil || si.PriceMax != nil
}
