// Package intent classifies user messages and extracts structured search
// parameters from free text. All checks are deterministic substring
// heuristics; precedence between the phrase lists is part of the contract.
package intent

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/techstore/assistant/internal/domain"
)

// Pure greetings are never product searches, even when a search indicator
// follows ("hey find me a laptop"). The match is exact or prefix-plus-space
// only, so "hi," does not count as a greeting prefix.
var pureGreetings = []string{
	"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
	"how are you", "how's it going", "what's up", "greetings", "howdy",
}

var conversationalPhrases = []string{
	"thank you", "thanks", "goodbye", "bye", "see you later",
	"okay", "ok", "alright", "sounds good", "perfect", "great",
	"yes", "no", "maybe", "sure", "definitely", "absolutely",
	"tell me about yourself", "who are you", "what can you do",
	"help me", "i need help", "can you help",
}

var searchIndicators = []string{
	"search", "find", "look for", "looking for", "do you have", "have you got",
	"show me", "i want", "i need", "buy", "purchase", "price", "cost",
	"available", "in stock", "sell", "carry", "offer",
	"recommend", "suggest", "best", "good", "popular",
}

// IsProductSearch reports whether the message is asking about products.
// Greeting and conversational checks take precedence over the indicator
// check, in that order.
func IsProductSearch(message string) bool {
	m := strings.ToLower(strings.TrimSpace(message))

	for _, greeting := range pureGreetings {
		if m == greeting || strings.HasPrefix(m, greeting+" ") {
			return false
		}
	}

	for _, phrase := range conversationalPhrases {
		if strings.Contains(m, phrase) {
			return false
		}
	}

	for _, indicator := range searchIndicators {
		if strings.Contains(m, indicator) {
			return true
		}
	}
	return false
}

// productVocabulary lists category and brand terms matched as substrings.
var productVocabulary = []string{
	// Electronics
	"iphone", "samsung", "phone", "smartphone", "mobile",
	"laptop", "computer", "macbook", "dell", "hp", "lenovo",
	"headphones", "earbuds", "airpods", "beats", "sony",
	"tablet", "ipad", "android",
	"camera", "canon", "nikon", "gopro",
	"tv", "television", "monitor", "display",
	"keyboard", "mouse", "razer", "logitech",
	"charger", "cable", "adapter",
	"speaker", "bluetooth", "wireless",

	// Fashion
	"shirt", "pants", "dress", "shoes", "sneakers",
	"jacket", "coat", "jeans", "hoodie",
	"nike", "adidas", "puma",

	// Home
	"chair", "table", "desk", "bed", "sofa",
	"lamp", "light", "furniture",

	// General
	"watch", "bag", "backpack", "case", "cover",
	"gaming", "console", "xbox", "playstation", "nintendo",
}

var stopwords = map[string]bool{
	"have": true, "does": true, "what": true, "where": true, "when": true,
	"how": true, "can": true, "will": true, "would": true, "could": true,
	"should": true,
}

// Keywords extracts candidate product terms from the message: vocabulary
// entries found as substrings plus any token longer than three characters
// that is not a stopword. The result is deduplicated; order is not
// significant.
func Keywords(message string) []string {
	m := strings.ToLower(message)

	seen := make(map[string]bool)
	var found []string
	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			found = append(found, term)
		}
	}

	for _, keyword := range productVocabulary {
		if strings.Contains(m, keyword) {
			add(keyword)
		}
	}

	for _, word := range strings.Fields(m) {
		if len(word) > 3 && !stopwords[word] {
			add(word)
		}
	}
	return found
}

var (
	priceRe       = regexp.MustCompile(`\$?(\d+(?:\.\d{2})?)`)
	filterWordsRe = regexp.MustCompile(`(?i)\b(in stock|available|stock|under|over|above|below|less than|more than|price|cost)\b`)
)

// ExtractIntent pulls price bounds, the stock-only flag and a residual
// search query out of the message. Two or more numbers become a min/max
// range; a single number needs a direction word ("under", "over", ...) to
// bind to a bound, otherwise it is ignored.
func ExtractIntent(message string) domain.SearchIntent {
	m := strings.ToLower(message)
	intent := domain.SearchIntent{}

	var prices []decimal.Decimal
	for _, match := range priceRe.FindAllStringSubmatch(message, -1) {
		p, err := decimal.NewFromString(match[1])
		if err != nil {
			continue
		}
		prices = append(prices, p)
	}

	switch {
	case len(prices) >= 2:
		min, max := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p.LessThan(min) {
				min = p
			}
			if p.GreaterThan(max) {
				max = p
			}
		}
		intent.PriceMin = &min
		intent.PriceMax = &max
	case len(prices) == 1:
		if strings.Contains(m, "under") || strings.Contains(m, "below") || strings.Contains(m, "less than") {
			intent.PriceMax = &prices[0]
		} else if strings.Contains(m, "over") || strings.Contains(m, "above") || strings.Contains(m, "more than") {
			intent.PriceMin = &prices[0]
		}
	}

	for _, phrase := range []string{"in stock", "available", "stock"} {
		if strings.Contains(m, phrase) {
			intent.StockOnly = true
			break
		}
	}

	query := priceRe.ReplaceAllString(message, "")
	query = filterWordsRe.ReplaceAllString(query, "")
	intent.Query = strings.TrimSpace(query)

	return intent
}
