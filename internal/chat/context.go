package chat

import (
	"fmt"
	"strings"

	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/domain"
)

// Markers the fallback generator dispatches on. Their exact spelling is part
// of the contract between the context block and the response generators.
const (
	foundMarker    = "FOUND PRODUCTS"
	notFoundMarker = "NO PRODUCTS FOUND"
)

const (
	inStockStatus    = "✅ In stock"
	outOfStockStatus = "❌ Out of stock"
)

// BuildContext renders the ranked results, the searched terms and the
// original message into the deterministic text block handed to a response
// generator.
func BuildContext(products []domain.ScoredProduct, terms []string, original string) string {
	var b strings.Builder

	if len(products) > 0 {
		fmt.Fprintf(&b, "%s (%d results):\n", foundMarker, len(products))
		for i, p := range products {
			if i == config.ContextProductLimit {
				break
			}
			status := outOfStockStatus
			if p.InStock() {
				status = inStockStatus
			}
			desc := p.Description
			if desc == "" {
				desc = "No description"
			}
			fmt.Fprintf(&b, "%d. %s - $%s (%s)\n", i+1, p.Name, p.Price.String(), status)
			fmt.Fprintf(&b, "   Description: %s\n\n", desc)
		}
		return b.String()
	}

	if len(terms) > 0 {
		shown := terms
		if len(shown) > 3 {
			shown = shown[:3]
		}
		fmt.Fprintf(&b, "%s for: %s\n", notFoundMarker, strings.Join(shown, ", "))
		fmt.Fprintf(&b, "Search terms tried: %s\n", strings.Join(terms, ", "))
	} else {
		fmt.Fprintf(&b, "%s - No specific product terms detected\n", notFoundMarker)
	}
	fmt.Fprintf(&b, "Original user query: '%s'\n", original)
	b.WriteString("Available product categories: Check the complete product database to suggest alternatives\n")

	return b.String()
}
