package handlers

import (
	"context"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/vpbots/presentation_bot/internal/controller/state"
	"github.com/vpbots/presentation_bot/internal/metrics"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendText(ctx, update.Message.Chat.ID,
		"Пришлите ссылку на аудио/видео или файл.\n⚠️ Только один запрос за раз!")
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Как пользоваться ботом:\n\n" +
		"1. Пришлите ссылку на аудио/видео (http/https) или загрузите файл\n" +
		"2. Бот расшифрует запись и пришлёт транскрипт с резюме\n" +
		"3. Ответьте, сколько слайдов сделать (по умолчанию 5)\n" +
		"4. Укажите язык презентации (по умолчанию Russian)\n" +
		"5. Получите ссылки на скачивание и редактирование\n\n" +
		"⚠️ Только один запрос за раз!\n" +
		"Отменить текущую операцию: /cancel"

	h.sendText(ctx, update.Message.Chat.ID, helpText)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога.
// Уже отправленный во внешний сервис запрос команда не прерывает,
// но флаг занятости и состояние сбрасываются всегда.
func (h *Handlers) HandleCancel(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID

	h.logger.Info("Cancelling conversation",
		zap.Int64("telegram_id", telegramID),
		zap.String("stage", string(h.stateManager.Stage(telegramID))))

	// Считаем отменой только реально идущую задачу или начатый диалог
	if h.guard.Busy(telegramID) || h.stateManager.Stage(telegramID) != state.StageIdle {
		metrics.JobsCancelled.Inc()
	}

	h.guard.Release(telegramID)
	h.stateManager.Reset(telegramID)

	h.sendText(ctx, update.Message.Chat.ID, "🚫 Отменено")
}
