package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/civil"
)

// HandleDateCallback показывает времена для даты, выбранной кнопкой под /dates
func (h *Handlers) HandleDateCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	callback := update.CallbackQuery
	if callback == nil {
		return
	}

	msg := callback.Message.Message
	if msg == nil {
		h.answerCallback(ctx, b, callback.ID, "Message is too old")
		return
	}
	chatID := msg.Chat.ID

	date := strings.TrimPrefix(callback.Data, callbackDatePrefix)
	if !civil.IsValidYmd(date) {
		h.answerCallback(ctx, b, callback.ID, "Invalid date")
		return
	}

	query, ok := h.stateManager.Get(chatID)
	if !ok {
		h.answerCallback(ctx, b, callback.ID, "Request expired, run /dates again")
		return
	}
	h.answerCallback(ctx, b, callback.ID, "")

	options, err := h.availability.Times(ctx, query.ArtistID, query.LocationID, date, query.Duration, query.Break)
	if err != nil {
		h.logger.Error("Failed to get available times from callback",
			zap.Stringer("artist_id", query.ArtistID),
			zap.String("date", date),
			zap.Error(err))
		h.sendError(ctx, b, chatID, errorText(err))
		return
	}

	h.sendMessage(ctx, b, chatID, FormatTimes(date, query.Duration, options), nil)
}
