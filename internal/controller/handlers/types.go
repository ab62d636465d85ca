package handlers

import (
	"context"

	"go.uber.org/zap"

	"github.com/vpbots/presentation_bot/internal/client"
	"github.com/vpbots/presentation_bot/internal/controller/state"
	"github.com/vpbots/presentation_bot/internal/controller/transport"
)

// RemoteClient - вызовы двух внешних сервисов (транскрибация и Presenton).
// Реализуется client.Client, в тестах подменяется фейком.
type RemoteClient interface {
	SubmitIngestJob(ctx context.Context, sourceURL, sessionID string) (*client.IngestResult, error)
	SubmitPresentationJob(ctx context.Context, content string, nSlides int, language string) (*client.Presentation, error)
}

// Handlers содержит все зависимости для обработки сообщений
type Handlers struct {
	remote       RemoteClient
	transport    transport.Transport
	stateManager *state.Manager
	guard        *state.Guard
	logger       *zap.Logger
}

// NewHandlers создаёт новый обработчик сообщений
func NewHandlers(
	remote RemoteClient,
	tr transport.Transport,
	stateManager *state.Manager,
	guard *state.Guard,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		remote:       remote,
		transport:    tr,
		stateManager: stateManager,
		guard:        guard,
		logger:       logger,
	}
}
