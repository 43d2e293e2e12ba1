package telegram

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
)

const maxMessageLen = 4096

// sendLongMessage sends a reply, splitting it when it exceeds Telegram's
// message length limit.
func sendLongMessage(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageLen) {
		if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   part,
		}); err != nil {
			slog.Warn("send message", "error", err, "chat_id", chatID)
			return
		}
	}
}

// splitMessage splits text into chunks of at most maxLen runes, preferring
// newline boundaries.
func splitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	for utf8.RuneCountInString(text) > maxLen {
		runes := []rune(text)
		splitAt := maxLen

		chunk := string(runes[:maxLen])
		if lastNewline := strings.LastIndex(chunk, "\n"); lastNewline >= 0 {
			newlineAt := utf8.RuneCountInString(chunk[:lastNewline])
			if newlineAt > maxLen/2 {
				splitAt = newlineAt + 1
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		text = string(runes[splitAt:])
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}
