// Package telegram is an alternate front end: it forwards private chat
// messages to the assistant and relays the replies.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/techstore/assistant/internal/chat"
)

type Gateway struct {
	chat *chat.Service
}

func NewGateway(chatSvc *chat.Service) *Gateway {
	return &Gateway{chat: chatSvc}
}

// sessionID derives the assistant session key for a Telegram chat.
func sessionID(chatID int64) string {
	return fmt.Sprintf("tg:%d", chatID)
}

// HandleText forwards a private text message to the assistant.
func (g *Gateway) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}

	msg := update.Message
	if strings.HasPrefix(msg.Text, "/") {
		return
	}

	reply, err := g.chat.Respond(ctx, sessionID(msg.Chat.ID), msg.Text)
	if err != nil {
		slog.Error("chat respond", "error", err, "chat_id", msg.Chat.ID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: msg.Chat.ID,
			Text:   "I apologize, but I'm experiencing technical difficulties. Please try again later.",
		})
		return
	}

	sendLongMessage(ctx, b, msg.Chat.ID, reply.Message)
}

// HandleClear handles the /clear command by dropping the chat's history.
func (g *Gateway) HandleClear(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	chatID := update.Message.Chat.ID
	if err := g.chat.ClearSession(ctx, sessionID(chatID)); err != nil {
		slog.Error("clear session", "error", err, "chat_id", chatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Failed to clear conversation history.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Conversation history cleared.",
	})
}
