package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as plain JSON numbers, matching the catalog file format.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a single catalog entry. Records are immutable after load and
// owned by the catalog store.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// ScoredProduct is a copy of a catalog entry annotated with a relevance
// score. The search engine produces these; the canonical Product is never
// mutated. A zero score means the product came from a plain filter rather
// than a scored search.
type ScoredProduct struct {
	Product
	RelevanceScore int `json:"relevance_score,omitempty"`
}
