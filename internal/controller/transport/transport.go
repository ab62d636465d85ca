package transport

import (
	"context"
)

// Transport - операции чат-платформы, нужные обработчикам диалога.
// Вынесен в интерфейс, чтобы логику диалога можно было тестировать
// без живого бота.
type Transport interface {
	// SendText отправляет текстовое сообщение в чат
	SendText(ctx context.Context, chatID int64, text string) error

	// SendFile отправляет файл с подписью
	SendFile(ctx context.Context, chatID int64, filename string, data []byte, caption string) error

	// SendTyping показывает индикатор "печатает..."
	SendTyping(ctx context.Context, chatID int64)

	// ResolveFileURL превращает файловый идентификатор платформы
	// в URL, который сможет скачать внешний сервис
	ResolveFileURL(ctx context.Context, fileID string) (string, error)
}
