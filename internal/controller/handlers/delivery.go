package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vpbots/presentation_bot/internal/metrics"
)

// inlineLimit - максимальная длина текста (в символах) для отправки
// одним сообщением. Более длинный текст Telegram отклоняет, поэтому
// он уходит файлом.
const inlineLimit = 3500

// deliverText отправляет длинный текст: коротким сообщением или файлом
func (h *Handlers) deliverText(ctx context.Context, chatID int64, title, text string) {
	if text == "" {
		h.sendText(ctx, chatID, fmt.Sprintf("%s: (пусто)", title))
		return
	}

	if utf8.RuneCountInString(text) <= inlineLimit {
		metrics.Deliveries.WithLabelValues("inline").Inc()
		h.sendText(ctx, chatID, fmt.Sprintf("%s:\n%s", title, text))
		return
	}

	metrics.Deliveries.WithLabelValues("document").Inc()
	_ = h.transport.SendFile(ctx, chatID, attachmentName(title), []byte(text), title)
}

// attachmentName строит имя файла из заголовка: нижний регистр,
// пробелы заменены подчёркиваниями
func attachmentName(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".txt"
}
