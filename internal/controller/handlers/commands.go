package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/state"
)

const helpText = "📚 Commands:\n\n" +
	"/dates <artist_id> <location_id|-> [from] [to]\n" +
	"    bookable session dates (4 weeks from today by default)\n" +
	"/consultations <artist_id> <location_id|-> [from] [to]\n" +
	"    bookable consultation dates\n" +
	"/times <artist_id> <location_id|-> <date> [duration_min] [break_min]\n" +
	"    free start times on a date (60 min, no break by default)\n" +
	"/checkdates <artist_id> <client_id|-> <date> [date ...]\n" +
	"    check a multi-session selection against back-to-back and buffer rules\n\n" +
	"Dates are YYYY-MM-DD. Use - for the artist's main studio or for no client."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	name := ""
	if update.Message.From != nil {
		name = update.Message.From.FirstName
	}

	text := fmt.Sprintf("👋 Hi %s!\n\nThis bot shows when a tattoo artist can take a booking.\n\n%s", name, helpText)
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleDates обрабатывает команду /dates
func (h *Handlers) HandleDates(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleDates(ctx, b, update, false)
}

// HandleConsultations обрабатывает команду /consultations
func (h *Handlers) HandleConsultations(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleDates(ctx, b, update, true)
}

func (h *Handlers) handleDates(ctx context.Context, b *bot.Bot, update *models.Update, consultation bool) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	usage := usageDates
	if consultation {
		usage = usageConsult
	}

	args, err := ParseDatesArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, usageText(err, usage))
		return
	}

	from, to, err := args.Window(h.availability.Today())
	if err != nil {
		h.sendError(ctx, b, chatID, errorText(err))
		return
	}

	var dates []string
	if consultation {
		dates, err = h.availability.ConsultationDates(ctx, args.ArtistID, args.LocationID, from, to)
	} else {
		dates, err = h.availability.Dates(ctx, args.ArtistID, args.LocationID, from, to)
	}
	if err != nil {
		h.logger.Error("Failed to get available dates",
			zap.Stringer("artist_id", args.ArtistID),
			zap.Bool("consultation", consultation),
			zap.Error(err))
		h.sendError(ctx, b, chatID, errorText(err))
		return
	}

	title := fmt.Sprintf("📅 Available dates %s … %s", from, to)
	if consultation {
		title = fmt.Sprintf("💬 Consultation dates %s … %s", from, to)
		h.sendMessage(ctx, b, chatID, FormatDates(title, dates), nil)
		return
	}

	// запоминаем запрос, чтобы кнопка с датой показала времена
	h.stateManager.Set(chatID, state.Query{
		ArtistID:   args.ArtistID,
		LocationID: args.LocationID,
		Duration:   defaultDuration,
	})
	h.sendMessage(ctx, b, chatID, FormatDates(title, dates), DatesKeyboard(dates))
}

// HandleTimes обрабатывает команду /times
func (h *Handlers) HandleTimes(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args, err := ParseTimesArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, usageText(err, usageTimes))
		return
	}

	options, err := h.availability.Times(ctx, args.ArtistID, args.LocationID, args.Date, args.Duration, args.Break)
	if err != nil {
		h.logger.Error("Failed to get available times",
			zap.Stringer("artist_id", args.ArtistID),
			zap.String("date", args.Date),
			zap.Error(err))
		h.sendError(ctx, b, chatID, errorText(err))
		return
	}

	h.sendMessage(ctx, b, chatID, FormatTimes(args.Date, args.Duration, options), nil)
}

// HandleCheckDates обрабатывает команду /checkdates
func (h *Handlers) HandleCheckDates(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	args, err := ParseCheckDatesArgs(update.Message.Text)
	if err != nil {
		h.sendError(ctx, b, chatID, usageText(err, usageCheckDates))
		return
	}

	verdict := h.booking.ValidateDates(ctx, args.ArtistID, args.ClientID, args.Dates)
	h.sendMessage(ctx, b, chatID, FormatVerdict(verdict), nil)
}
