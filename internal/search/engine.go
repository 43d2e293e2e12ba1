// Package search scores and ranks catalog entries against free-text
// queries and provides the plain category/price/stock filters.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/domain"
)

var numberRe = regexp.MustCompile(`\d+`)

type Engine struct {
	catalog *catalog.Store
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{catalog: store}
}

// Search scores every catalog entry against the query and returns up to
// limit copies ordered by descending relevance. Zero-score products are
// excluded; ties keep catalog order. An empty query or catalog yields an
// empty result, never an error.
func (e *Engine) Search(query string, limit int) []domain.ScoredProduct {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	queryWords := strings.Fields(query)
	queryNumbers := numberRe.FindAllString(query, -1)

	var results []domain.ScoredProduct
	for _, p := range e.catalog.All() {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		category := strings.ToLower(p.Category)

		score := 0
		if strings.Contains(name, query) {
			score += 10
		}

		for _, word := range queryWords {
			if strings.Contains(name, word) {
				score += 5
			}
			if strings.Contains(desc, word) {
				score += 2
			}
			if strings.Contains(category, word) {
				score += 3
			}
		}

		// Model number matching: any number shared between query and name.
		if len(queryNumbers) > 0 {
			nameNumbers := numberRe.FindAllString(name, -1)
			for _, qn := range queryNumbers {
				if containsString(nameNumbers, qn) {
					score += 7
					break
				}
			}
		}

		if score > 0 {
			results = append(results, domain.ScoredProduct{Product: p, RelevanceScore: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// ByName returns the product whose name matches exactly, ignoring case.
func (e *Engine) ByName(name string) (domain.Product, error) {
	target := strings.ToLower(name)
	for _, p := range e.catalog.All() {
		if strings.ToLower(p.Name) == target {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// ByCategory returns up to limit products whose category contains the given
// term, in catalog order.
func (e *Engine) ByCategory(category string, limit int) []domain.Product {
	target := strings.ToLower(category)
	var results []domain.Product
	for _, p := range e.catalog.All() {
		if strings.Contains(strings.ToLower(p.Category), target) {
			results = append(results, p)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// InStock returns up to limit products with positive stock, in catalog
// order.
func (e *Engine) InStock(limit int) []domain.Product {
	var results []domain.Product
	for _, p := range e.catalog.All() {
		if p.InStock() {
			results = append(results, p)
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// ByPriceRange returns up to limit products whose price falls inside the
// inclusive bounds; a nil bound is open.
func (e *Engine) ByPriceRange(min, max *decimal.Decimal, limit int) []domain.Product {
	var results []domain.Product
	for _, p := range e.catalog.All() {
		if min != nil && p.Price.LessThan(*min) {
			continue
		}
		if max != nil && p.Price.GreaterThan(*max) {
			continue
		}
		results = append(results, p)
		if len(results) == limit {
			break
		}
	}
	return results
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
