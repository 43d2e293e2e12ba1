package chat

import (
	"fmt"
	"strings"
)

// FallbackReply synthesizes a reply from fixed rules when no external
// generator is configured or the external call failed. It is a pure function
// of its inputs. Branch order is fixed; overlapping keyword groups resolve
// to whichever branch is checked first.
func FallbackReply(message, contextBlock string, isProductSearch bool) string {
	m := strings.ToLower(message)

	// Substring matching: words containing "hi" or "hey" ("shipping",
	// "they") resolve here when the message is not a product search.
	if containsAny(m, "hello", "hi", "hey", "greetings") && !isProductSearch {
		return "Hi there, welcome to TechStore! I'm here to help you find products and answer your questions. What can I help you with today?"
	}

	hasProducts := strings.Contains(contextBlock, foundMarker)
	noProducts := strings.Contains(contextBlock, notFoundMarker)

	if isProductSearch {
		switch {
		case containsAny(m, "search", "find", "look for", "looking for", "do you have", "have you got"):
			if hasProducts {
				return fmt.Sprintf("Great! I found some products for you:\n\n%s\n\nWould you like more details about any of these?",
					strings.ReplaceAll(contextBlock, foundMarker, "Here are the products I found"))
			}
			if noProducts {
				item := searchedItemFromContext(contextBlock)
				return fmt.Sprintf("I'm sorry, but I don't currently have %s in our inventory. Let me check what similar items we do have available - would you like me to show you our current product selection?", item)
			}
			return "I'd be happy to help you find products! Could you tell me more specifically what you're looking for?"

		case containsAny(m, "do you have", "have you got", "sell", "carry"):
			if hasProducts {
				return fmt.Sprintf("Yes! Here's what I found:\n\n%s",
					strings.TrimSpace(strings.ReplaceAll(contextBlock, foundMarker, "")))
			}
			if noProducts {
				item := searchedItemFromContext(contextBlock)
				return fmt.Sprintf("No, I'm sorry - we don't currently carry %s. However, I'd be happy to show you what we do have available. What type of products are you interested in?", item)
			}
			return "I can check our inventory for you! What specific product are you looking for?"

		case containsAny(m, "price", "cost", "how much"):
			if hasProducts {
				return fmt.Sprintf("Here are the products with their prices:\n\n%s",
					strings.ReplaceAll(contextBlock, foundMarker, "Here are the current prices"))
			}
			return "I can help you with pricing! What product are you interested in?"

		case containsAny(m, "stock", "available", "in stock"):
			if hasProducts {
				return fmt.Sprintf("Here's the current availability:\n\n%s",
					strings.ReplaceAll(contextBlock, foundMarker, "Current stock status"))
			}
			if noProducts {
				return "I checked our inventory for the items you mentioned, but they're not currently available. Would you like me to show you what we do have in stock?"
			}
			return "I can check product availability for you. What items are you looking for?"
		}
	}

	if containsAny(m, "shipping", "delivery", "return", "refund") {
		return `Here's information about our policies:

🚚 **Shipping:** Free shipping on orders over $50. Standard delivery takes 3-5 business days.

↩️ **Returns:** 30-day return policy for full refund on unused items.

💳 **Payment:** We accept all major credit cards, PayPal, and Apple Pay.

Is there anything specific you'd like to know?`
	}

	if containsAny(m, "recommend", "suggest", "best") && isProductSearch {
		if hasProducts {
			return fmt.Sprintf("Based on your search, here are some great options:\n\n%s\n\nThese are popular choices among our customers!",
				strings.ReplaceAll(contextBlock, foundMarker, "I recommend these products"))
		}
		return "I'd love to recommend something perfect for you! What type of product are you interested in?"
	}

	if containsAny(m, "thank you", "thanks") {
		return "You're welcome! Is there anything else I can help you with?"
	}

	if containsAny(m, "goodbye", "bye", "see you") {
		return "Goodbye! Thanks for visiting our store. Have a great day!"
	}

	if containsAny(m, "how are you", "how's it going") {
		return "I'm doing great, thank you for asking! I'm here and ready to help you find what you're looking for. How can I assist you today?"
	}

	if isProductSearch {
		if hasProducts {
			return fmt.Sprintf("I found some relevant products for you:\n\n%s\n\nHow can I help you further?",
				strings.ReplaceAll(contextBlock, foundMarker, "Here are some options"))
		}
		if noProducts {
			return "I checked our inventory based on your message, but didn't find exact matches. Could you tell me more specifically what you're looking for so I can help you better?"
		}
		return "I'd be happy to help you find products! What are you looking for today?"
	}

	return "I'm here to help! You can ask me about:\n• Product searches and availability\n• Pricing information\n• Shipping and return policies\n• Product recommendations\n\nWhat would you like to know?"
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// searchedItemFromContext recovers the searched terms from a no-results
// context block for use in an apology.
func searchedItemFromContext(contextBlock string) string {
	const prefix = notFoundMarker + " for:"
	for _, line := range strings.Split(contextBlock, "\n") {
		if strings.Contains(line, prefix) {
			item := strings.TrimSpace(line[strings.Index(line, prefix)+len(prefix):])
			if item != "" {
				return item
			}
		}
	}
	return "those items"
}
