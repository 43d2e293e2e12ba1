// Package catalog holds the product catalog: loaded once at startup,
// read-only afterwards, safe to share across requests without locking.
package catalog

import (
	"github.com/techstore/assistant/internal/domain"
)

type Store struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// NewStore builds a store over the given records, preserving their order.
// When two records share an id the first one wins.
func NewStore(products []domain.Product) *Store {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		if _, ok := byID[p.ID]; !ok {
			byID[p.ID] = p
		}
	}
	return &Store{products: products, byID: byID}
}

// All returns the full catalog in load order. Callers must treat the slice
// as read-only.
func (s *Store) All() []domain.Product {
	return s.products
}

func (s *Store) Get(id int) (domain.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func (s *Store) Len() int {
	return len(s.products)
}
