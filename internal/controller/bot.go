package controller

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/vpbots/presentation_bot/internal/controller/handlers"
	"github.com/vpbots/presentation_bot/internal/controller/state"
	"github.com/vpbots/presentation_bot/internal/controller/transport"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	remote handlers.RemoteClient,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний и guard активных задач
	stateManager := state.NewManager()
	guard := state.NewGuard()

	// Транспорт поверх Telegram API
	tr := transport.NewTelegram(botInstance, logger)

	msgHandlers := handlers.NewHandlers(
		remote,
		tr,
		stateManager,
		guard,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: msgHandlers,
		logger:   logger,
	}
}

// RegisterHandlers регистрирует все обработчики сообщений
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Регистрируем команды
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.wrap(c.handlers.HandleStart))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.wrap(c.handlers.HandleHelp))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.wrap(c.handlers.HandleCancel))

	// Обработчик остальных сообщений (текст, аудио, видео, файлы) -
	// маршрутизация по стадии диалога
	c.bot.RegisterHandlerMatchFunc(isDialogMessage, c.wrap(c.handlers.HandleMessage))

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// isDialogMessage отбирает все сообщения кроме команд
func isDialogMessage(update *models.Update) bool {
	return update.Message != nil && !strings.HasPrefix(update.Message.Text, "/")
}

// wrap адаптирует обработчик к сигнатуре go-telegram/bot
func (c *BotController) wrap(f func(ctx context.Context, update *models.Update)) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		f(ctx, update)
	}
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "help", Description: "❓ Справка"},
		{Command: "cancel", Description: "🚫 Отменить текущую операцию"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
