package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vpbots/presentation_bot/internal/controller/state"
	"github.com/vpbots/presentation_bot/internal/metrics"
)

// HandleMessage обрабатывает входящие сообщения в зависимости от стадии диалога
func (h *Handlers) HandleMessage(ctx context.Context, update *models.Update) {
	if update.Message == nil {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	stage := h.stateManager.Stage(telegramID)

	h.logger.Info("HandleMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("stage", string(stage)))

	switch stage {
	case state.StageIdle:
		h.handleNewJob(ctx, update)
	case state.StageAwaitingSlideCount:
		h.handleSlideCountStep(ctx, update)
	case state.StageAwaitingLanguage:
		h.handleLanguageStep(ctx, update)
	default:
		h.logger.Warn("Unknown stage", zap.String("stage", string(stage)))
	}
}

// handleNewJob начинает новую задачу: классифицирует источник,
// занимает пользователя и отправляет медиа на транскрибацию
func (h *Handlers) handleNewJob(ctx context.Context, update *models.Update) {
	msg := update.Message
	telegramID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// Классифицируем вход до захвата guard: на отказ из-за
	// отсутствия медиа флаг занятости ставиться не должен
	var sourceURL, fileID string
	if strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		sourceURL = text
	} else {
		fileID = mediaFileID(msg)
		if fileID == "" {
			h.sendText(ctx, chatID, "Пришлите ссылку или файл (audio/video/voice/document).")
			return
		}
	}

	token, admitted := h.guard.TryAdmit(telegramID)
	if !admitted {
		metrics.BusyRejections.Inc()
		h.sendText(ctx, chatID, "⏳ Подождите, предыдущая задача ещё выполняется!")
		return
	}
	metrics.JobsStarted.Inc()

	jobID := uuid.NewString()
	h.logger.Info("Job admitted",
		zap.String("job_id", jobID),
		zap.Int64("telegram_id", telegramID))

	h.transport.SendTyping(ctx, chatID)

	if fileID != "" {
		url, err := h.transport.ResolveFileURL(ctx, fileID)
		if err != nil {
			h.logger.Error("Failed to resolve file URL",
				zap.String("job_id", jobID),
				zap.Error(err))
			metrics.JobsFailed.WithLabelValues("transport").Inc()
			h.sendText(ctx, chatID, "💥 Ошибка: не удалось получить файл. Попробуйте ещё раз.")
			h.guard.Release(telegramID)
			h.stateManager.Reset(telegramID)
			return
		}
		sourceURL = url
		h.sendText(ctx, chatID, "➡️ Отправляю файл на сервер…")
	} else {
		h.sendText(ctx, chatID, "➡️ Отправляю на сервер…")
	}

	// Детерминированный идентификатор для дедупликации на стороне сервиса
	sessionID := fmt.Sprintf("%d_%d", telegramID, msg.ID)

	res, err := h.remote.SubmitIngestJob(ctx, sourceURL, sessionID)

	// Пока запрос был в полёте, пользователь мог отменить задачу
	// (или уже начать новую). Тогда токен недействителен и результат
	// выбрасывается - диалог воскрешать нельзя.
	if !h.guard.Holds(telegramID, token) {
		h.logger.Info("Job cancelled while in flight, discarding result",
			zap.String("job_id", jobID),
			zap.Int64("telegram_id", telegramID))
		return
	}

	if err != nil {
		h.logger.Warn("Ingest job failed",
			zap.String("job_id", jobID),
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		h.notifyJobFailure(ctx, chatID, err)
		h.guard.Release(telegramID)
		h.stateManager.Reset(telegramID)
		return
	}

	h.deliverText(ctx, chatID, "Транскрипт", res.Text)
	h.deliverText(ctx, chatID, "Резюме", res.Summary)

	h.stateManager.StoreIngestResult(telegramID, res.Text, res.Summary)

	// Отмена могла проскочить между проверкой токена и записью
	// состояния - тогда запись откатываем
	if !h.guard.Holds(telegramID, token) {
		h.stateManager.Reset(telegramID)
		return
	}

	h.sendText(ctx, chatID, "Сколько слайдов сделать? (по умолчанию 5)")
}

// handleSlideCountStep обрабатывает ввод количества слайдов.
// Нечисловой ввод молча заменяется дефолтом - пользователю не отказываем.
func (h *Handlers) handleSlideCountStep(ctx context.Context, update *models.Update) {
	msg := update.Message
	if msg.Text == "" {
		return
	}

	telegramID := msg.From.ID

	slideCount, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil {
		slideCount = state.DefaultSlideCount
	}

	h.stateManager.StoreSlideCount(telegramID, slideCount)

	h.logger.Info("Slide count saved",
		zap.Int64("telegram_id", telegramID),
		zap.Int("slide_count", slideCount))

	h.sendText(ctx, msg.Chat.ID, "На каком языке презентация? (например: Russian, English)")
}

// handleLanguageStep обрабатывает ввод языка и запускает генерацию презентации.
// Это терминальная стадия: guard и состояние сбрасываются на любом исходе.
func (h *Handlers) handleLanguageStep(ctx context.Context, update *models.Update) {
	msg := update.Message
	if msg.Text == "" {
		return
	}

	telegramID := msg.From.ID
	chatID := msg.Chat.ID

	language := strings.TrimSpace(msg.Text)
	if language == "" {
		language = state.DefaultLanguage
	}
	h.stateManager.StoreLanguage(telegramID, language)

	conv := h.stateManager.Snapshot(telegramID)

	h.sendText(ctx, chatID, fmt.Sprintf(
		"🚀 Приступаем к созданию презентации!\n\n📊 Слайдов: %d\n🌍 Язык: %s",
		conv.SlideCount, conv.Language))

	content := fmt.Sprintf("Транскрипт:\n%s\n\nРезюме:\n%s", conv.Transcript, conv.Summary)

	ppt, err := h.remote.SubmitPresentationJob(ctx, content, conv.SlideCount, conv.Language)
	if err != nil {
		h.logger.Warn("Presentation job failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err))
		metrics.JobsFailed.WithLabelValues(failureClass(err)).Inc()
		h.sendText(ctx, chatID, fmt.Sprintf("💥 Ошибка при генерации презентации: %v", err))
	} else {
		metrics.JobsCompleted.Inc()
		h.sendText(ctx, chatID, fmt.Sprintf(
			"🎉 Презентация готова!\n\n📥 Скачать PPTX: %s\n✏️ Редактировать онлайн: %s",
			ppt.Path, ppt.EditPath))
	}

	h.guard.Release(telegramID)
	h.stateManager.Reset(telegramID)
}

// mediaFileID достаёт идентификатор приложенного медиа из сообщения
func mediaFileID(msg *models.Message) string {
	switch {
	case msg.Audio != nil:
		return msg.Audio.FileID
	case msg.Voice != nil:
		return msg.Voice.FileID
	case msg.Video != nil:
		return msg.Video.FileID
	case msg.Document != nil:
		return msg.Document.FileID
	}
	return ""
}
