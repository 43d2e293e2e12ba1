package search

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/domain"
)

func testEngine() *Engine {
	products := []domain.Product{
		{ID: 1, Name: "iPhone 13", Description: "Apple smartphone with A15 chip", Category: "Electronics", Price: decimal.NewFromInt(799), Stock: 10},
		{ID: 2, Name: "Phone Case", Description: "Protective case for iphone models", Category: "Accessories", Price: decimal.NewFromInt(19), Stock: 50},
		{ID: 3, Name: "Nike Air Max", Description: "Comfortable running shoes", Category: "Fashion", Price: decimal.NewFromInt(80), Stock: 5},
		{ID: 4, Name: "Samsung Galaxy S21", Description: "Android smartphone", Category: "Electronics", Price: decimal.NewFromInt(699), Stock: 0},
		{ID: 5, Name: "Desk Lamp", Description: "LED lamp for your desk", Category: "Home", Price: decimal.NewFromInt(35), Stock: 12},
	}
	return NewEngine(catalog.NewStore(products))
}

func TestSearchRanksNameMatchAboveDescriptionMatch(t *testing.T) {
	e := testEngine()

	results := e.Search("iphone", 5)

	require.NotEmpty(t, results)
	assert.Equal(t, "iPhone 13", results[0].Name)
	assert.GreaterOrEqual(t, results[0].RelevanceScore, 10)

	// The case mentions iphone only in its description and must rank lower.
	require.Len(t, results, 2)
	assert.Equal(t, "Phone Case", results[1].Name)
	assert.Greater(t, results[0].RelevanceScore, results[1].RelevanceScore)
}

func TestSearchModelNumberBoost(t *testing.T) {
	e := testEngine()

	with := e.Search("iphone 13", 5)
	without := e.Search("iphone", 5)

	require.NotEmpty(t, with)
	require.NotEmpty(t, without)
	assert.Equal(t, "iPhone 13", with[0].Name)
	assert.Greater(t, with[0].RelevanceScore, without[0].RelevanceScore)
}

func TestSearchExcludesZeroScores(t *testing.T) {
	e := testEngine()

	results := e.Search("trampoline", 5)
	assert.Empty(t, results)
}

func TestSearchEmptyQuery(t *testing.T) {
	e := testEngine()

	assert.Empty(t, e.Search("", 5))
	assert.Empty(t, e.Search("   ", 5))
}

func TestSearchEmptyCatalog(t *testing.T) {
	e := NewEngine(catalog.NewStore(nil))

	assert.Empty(t, e.Search("iphone", 5))
}

func TestSearchLimit(t *testing.T) {
	e := testEngine()

	results := e.Search("smartphone", 1)
	assert.Len(t, results, 1)
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "iPhone 13", Category: "Electronics", Price: decimal.NewFromInt(799), Stock: 10},
	}
	store := catalog.NewStore(products)
	e := NewEngine(store)

	results := e.Search("iphone", 5)
	require.NotEmpty(t, results)
	results[0].Name = "mutated"

	got, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", got.Name)
}

func TestByCategory(t *testing.T) {
	e := testEngine()

	results := e.ByCategory("electronics", 5)
	require.Len(t, results, 2)
	assert.Equal(t, "iPhone 13", results[0].Name)
	assert.Equal(t, "Samsung Galaxy S21", results[1].Name)
}

func TestInStock(t *testing.T) {
	e := testEngine()

	for _, p := range e.InStock(10) {
		assert.Positive(t, p.Stock)
	}
	assert.Len(t, e.InStock(10), 4)
	assert.Len(t, e.InStock(2), 2)
}

func TestByPriceRange(t *testing.T) {
	e := testEngine()

	min := decimal.NewFromInt(30)
	max := decimal.NewFromInt(100)

	results := e.ByPriceRange(&min, &max, 5)
	require.Len(t, results, 2)
	assert.Equal(t, "Nike Air Max", results[0].Name)
	assert.Equal(t, "Desk Lamp", results[1].Name)

	// Open bounds.
	under := e.ByPriceRange(nil, &max, 5)
	assert.Len(t, under, 3)
}

func TestByName(t *testing.T) {
	e := testEngine()

	p, err := e.ByName("iphone 13")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	_, err = e.ByName("nonexistent")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
