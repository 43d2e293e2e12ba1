package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techstore/assistant/internal/catalog"
	"github.com/techstore/assistant/internal/domain"
	"github.com/techstore/assistant/internal/generator"
	"github.com/techstore/assistant/internal/search"
	"github.com/techstore/assistant/internal/session"
)

type stubGenerator struct {
	reply   string
	err     error
	lastReq generator.Request
	calls   int
}

func (g *stubGenerator) Generate(ctx context.Context, req generator.Request) (string, error) {
	g.lastReq = req
	g.calls++
	return g.reply, g.err
}

func testService(products []domain.Product, gen generator.Generator) *Service {
	engine := search.NewEngine(catalog.NewStore(products))
	return NewService(engine, session.NewMemoryStore(20), gen)
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Nike Air Max", Description: "Comfortable running shoes", Category: "Fashion", Price: decimal.NewFromInt(80), Stock: 5},
		{ID: 2, Name: "iPhone 13", Description: "Apple smartphone", Category: "Electronics", Price: decimal.NewFromInt(799), Stock: 10},
		{ID: 3, Name: "Gold Watch", Description: "Luxury wristwatch", Category: "Fashion", Price: decimal.NewFromInt(450), Stock: 0},
	}
}

func TestRespondEmptyMessage(t *testing.T) {
	svc := testService(testCatalog(), nil)

	_, err := svc.Respond(t.Context(), "s1", "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestRespondProductSearchFindsMatch(t *testing.T) {
	svc := testService(testCatalog(), nil)

	reply, err := svc.Respond(t.Context(), "s1", "Do you have any Nike shoes under $100?")
	require.NoError(t, err)

	assert.Contains(t, reply.Message, "Nike Air Max")
	assert.Contains(t, reply.Message, "✅ In stock")
	require.NotEmpty(t, reply.Products)
	assert.Equal(t, "Nike Air Max", reply.Products[0].Name)
	assert.Positive(t, reply.Products[0].RelevanceScore)
}

func TestRespondEmptyCatalogInventsNothing(t *testing.T) {
	svc := testService(nil, nil)

	reply, err := svc.Respond(t.Context(), "s1", "Do you have any Nike shoes under $100?")
	require.NoError(t, err)

	assert.Empty(t, reply.Products)
	assert.NotContains(t, reply.Message, "Air Max")
	assert.Contains(t, reply.Message, "don't currently have")
}

func TestRespondPriceFilterExcludesExpensive(t *testing.T) {
	svc := testService(testCatalog(), nil)

	reply, err := svc.Respond(t.Context(), "s1", "show me fashion watches under $100")
	require.NoError(t, err)

	for _, p := range reply.Products {
		assert.True(t, p.Price.LessThanOrEqual(decimal.NewFromInt(100)), "product %s over budget", p.Name)
	}
}

func TestRespondStockOnlyFilter(t *testing.T) {
	svc := testService(testCatalog(), nil)

	reply, err := svc.Respond(t.Context(), "s1", "which watches are in stock?")
	require.NoError(t, err)

	for _, p := range reply.Products {
		assert.Positive(t, p.Stock)
	}
}

func TestRespondGreetingSkipsSearch(t *testing.T) {
	svc := testService(testCatalog(), nil)

	reply, err := svc.Respond(t.Context(), "s1", "hello")
	require.NoError(t, err)

	assert.Empty(t, reply.Products)
	assert.Contains(t, reply.Message, "welcome to TechStore")
}

func TestRespondCapsProductsAtThree(t *testing.T) {
	products := testCatalog()
	products = append(products,
		domain.Product{ID: 4, Name: "Nike Hoodie", Category: "Fashion", Price: decimal.NewFromInt(60), Stock: 3},
		domain.Product{ID: 5, Name: "Nike Backpack", Category: "Fashion", Price: decimal.NewFromInt(45), Stock: 8},
		domain.Product{ID: 6, Name: "Nike Cap", Category: "Fashion", Price: decimal.NewFromInt(25), Stock: 2},
	)
	svc := testService(products, nil)

	reply, err := svc.Respond(t.Context(), "s1", "find nike gear")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(reply.Products), 3)
}

func TestRespondRecordsHistory(t *testing.T) {
	sessions := session.NewMemoryStore(20)
	engine := search.NewEngine(catalog.NewStore(testCatalog()))
	svc := NewService(engine, sessions, nil)

	_, err := svc.Respond(t.Context(), "s1", "hello")
	require.NoError(t, err)

	history, err := sessions.History(t.Context(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
}

func TestRespondUsesGenerator(t *testing.T) {
	gen := &stubGenerator{reply: "Generated answer."}
	svc := testService(testCatalog(), gen)

	reply, err := svc.Respond(t.Context(), "s1", "find me an iphone")
	require.NoError(t, err)

	assert.Equal(t, "Generated answer.", reply.Message)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "find me an iphone", gen.lastReq.Message)
	assert.Contains(t, gen.lastReq.SystemPrompt, "FOUND PRODUCTS")
	assert.Contains(t, gen.lastReq.SystemPrompt, "Don't make up or assume products exist")
}

func TestRespondFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream timeout")}
	svc := testService(testCatalog(), gen)

	reply, err := svc.Respond(t.Context(), "s1", "find me an iphone")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, reply.Message, "iPhone 13")
	assert.NotEmpty(t, reply.Products)
}

func TestRespondTrimsGeneratorHistory(t *testing.T) {
	sessions := session.NewMemoryStore(20)
	engine := search.NewEngine(catalog.NewStore(testCatalog()))
	gen := &stubGenerator{reply: "ok"}
	svc := NewService(engine, sessions, gen)

	for i := 0; i < 6; i++ {
		_, err := svc.Respond(t.Context(), "s1", "hello")
		require.NoError(t, err)
	}

	// 10 turns stored before the final call; only the trailing 8 are sent.
	assert.Len(t, gen.lastReq.History, 8)
}

func TestClearSessionIdempotent(t *testing.T) {
	svc := testService(testCatalog(), nil)

	_, err := svc.Respond(t.Context(), "s1", "hello")
	require.NoError(t, err)

	require.NoError(t, svc.ClearSession(t.Context(), "s1"))
	require.NoError(t, svc.ClearSession(t.Context(), "s1"))
}
