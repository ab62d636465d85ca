package transport

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// TelegramTransport реализует Transport поверх go-telegram/bot
type TelegramTransport struct {
	bot    *bot.Bot
	logger *zap.Logger
}

// NewTelegram создаёт транспорт поверх запущенного бота
func NewTelegram(b *bot.Bot, logger *zap.Logger) *TelegramTransport {
	return &TelegramTransport{
		bot:    b,
		logger: logger,
	}
}

// SendText отправляет текстовое сообщение
func (t *TelegramTransport) SendText(ctx context.Context, chatID int64, text string) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		t.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return err
	}
	return nil
}

// SendFile отправляет документ с подписью
func (t *TelegramTransport) SendFile(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	_, err := t.bot.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: chatID,
		Document: &models.InputFileUpload{
			Filename: filename,
			Data:     bytes.NewReader(data),
		},
		Caption: caption,
	})
	if err != nil {
		t.logger.Error("Failed to send document",
			zap.Int64("chat_id", chatID),
			zap.String("filename", filename),
			zap.Error(err))
		return err
	}
	return nil
}

// SendTyping показывает индикатор набора текста. Ошибка не критична,
// поэтому только логируется.
func (t *TelegramTransport) SendTyping(ctx context.Context, chatID int64) {
	_, err := t.bot.SendChatAction(ctx, &bot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatActionTyping,
	})
	if err != nil {
		t.logger.Debug("Failed to send chat action", zap.Error(err))
	}
}

// ResolveFileURL получает прямую ссылку на загруженный пользователем файл.
// Telegram иногда возвращает в FilePath уже готовый URL - тогда берём его как есть.
func (t *TelegramTransport) ResolveFileURL(ctx context.Context, fileID string) (string, error) {
	file, err := t.bot.GetFile(ctx, &bot.GetFileParams{FileID: fileID})
	if err != nil {
		return "", fmt.Errorf("get file %s: %w", fileID, err)
	}

	if strings.HasPrefix(file.FilePath, "http") {
		return file.FilePath, nil
	}

	return t.bot.FileDownloadLink(file), nil
}
