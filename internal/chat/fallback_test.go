package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const foundContext = `FOUND PRODUCTS (1 results):
1. iPhone 13 - $799 (✅ In stock)
   Description: Apple smartphone

`

const notFoundContext = `NO PRODUCTS FOUND for: unicorn
Search terms tried: unicorn
Original user query: 'do you sell unicorns'
`

func TestFallbackGreeting(t *testing.T) {
	got := FallbackReply("hello", "", false)
	assert.Contains(t, got, "welcome to TechStore")
}

func TestFallbackSearchFound(t *testing.T) {
	got := FallbackReply("find me an iphone", foundContext, true)

	assert.Contains(t, got, "Here are the products I found")
	assert.Contains(t, got, "iPhone 13")
	assert.NotContains(t, got, "FOUND PRODUCTS")
}

func TestFallbackSearchNotFound(t *testing.T) {
	got := FallbackReply("find me a unicorn", notFoundContext, true)

	assert.Contains(t, got, "don't currently have unicorn")
}

func TestFallbackPriceFound(t *testing.T) {
	got := FallbackReply("how much is the iphone, what's its price?", foundContext, true)

	assert.Contains(t, got, "Here are the current prices")
}

func TestFallbackStockFound(t *testing.T) {
	got := FallbackReply("is it in stock", foundContext, true)

	assert.Contains(t, got, "Current stock status")
}

func TestFallbackStockNotFound(t *testing.T) {
	got := FallbackReply("is the unicorn in stock", notFoundContext, true)

	assert.Contains(t, got, "not currently available")
}

func TestFallbackShippingPolicies(t *testing.T) {
	got := FallbackReply("what is your return policy?", "", false)

	assert.Contains(t, got, "Free shipping on orders over $50")
	assert.Contains(t, got, "30-day return policy")
}

func TestFallbackGreetingSubstringOverlap(t *testing.T) {
	// "shipping" contains "hi", so the greeting branch wins over the
	// policies branch.
	got := FallbackReply("how long does shipping take?", "", false)

	assert.Contains(t, got, "welcome to TechStore")
	assert.NotContains(t, got, "Free shipping on orders over $50")
}

func TestFallbackThanks(t *testing.T) {
	got := FallbackReply("thanks!", "", false)
	assert.Contains(t, got, "You're welcome")
}

func TestFallbackGoodbye(t *testing.T) {
	got := FallbackReply("bye", "", false)
	assert.Contains(t, got, "Goodbye")
}

func TestFallbackDefaultHelp(t *testing.T) {
	got := FallbackReply("zzz", "", false)
	assert.Contains(t, got, "I'm here to help")
}

func TestFallbackDeterministic(t *testing.T) {
	a := FallbackReply("find me an iphone", foundContext, true)
	b := FallbackReply("find me an iphone", foundContext, true)
	assert.Equal(t, a, b)
}

func TestSearchedItemFromContext(t *testing.T) {
	assert.Equal(t, "unicorn", searchedItemFromContext(notFoundContext))
	assert.Equal(t, "those items", searchedItemFromContext("no marker here"))
}
