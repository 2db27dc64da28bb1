package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/handlers"
	"github.com/danielleeas/simple-tattooer-sub000/internal/controller/state"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	availability handlers.AvailabilityQuerier,
	booking handlers.DateValidator,
	stateManager *state.Manager,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:      botInstance,
		handlers: handlers.NewHandlers(availability, booking, stateManager, logger),
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)

	// Команды с аргументами
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/dates", bot.MatchTypePrefix, c.handlers.HandleDates)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/consultations", bot.MatchTypePrefix, c.handlers.HandleConsultations)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/times", bot.MatchTypePrefix, c.handlers.HandleTimes)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/checkdates", bot.MatchTypePrefix, c.handlers.HandleCheckDates)

	// Нажатие на дату под ответом /dates
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "d:", bot.MatchTypePrefix, c.handlers.HandleDateCallback)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Start"},
		{Command: "help", Description: "❓ Commands"},
		{Command: "dates", Description: "📅 Available session dates"},
		{Command: "consultations", Description: "💬 Available consultation dates"},
		{Command: "times", Description: "🕘 Free start times on a date"},
		{Command: "checkdates", Description: "✅ Check a multi-session selection"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
