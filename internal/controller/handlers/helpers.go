package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/vpbots/presentation_bot/internal/client"
	"github.com/vpbots/presentation_bot/internal/metrics"
)

// sendText отправляет текст в чат, ошибку транспорт логирует сам
func (h *Handlers) sendText(ctx context.Context, chatID int64, text string) {
	_ = h.transport.SendText(ctx, chatID, text)
}

// notifyJobFailure сообщает пользователю об ошибке внешнего вызова.
// Дальше handler ошибка не уходит - каждый диалог независим.
func (h *Handlers) notifyJobFailure(ctx context.Context, chatID int64, err error) {
	metrics.JobsFailed.WithLabelValues(failureClass(err)).Inc()

	var timeoutErr *client.TimeoutError
	if errors.As(err, &timeoutErr) {
		h.sendText(ctx, chatID, "⏱ Сервер не ответил вовремя. Попробуйте позже.")
		return
	}

	h.sendText(ctx, chatID, fmt.Sprintf("💥 Ошибка: %v", err))
}

// failureClass возвращает метку класса ошибки для метрик
func failureClass(err error) string {
	var remoteErr *client.RemoteServiceError
	var timeoutErr *client.TimeoutError

	switch {
	case errors.As(err, &timeoutErr):
		return "timeout"
	case errors.As(err, &remoteErr):
		return "remote_error"
	default:
		return "transport"
	}
}
