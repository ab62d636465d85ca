package handlers

import (
	"context"
	"sync"
	"testing"

	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/vpbots/presentation_bot/internal/client"
	"github.com/vpbots/presentation_bot/internal/controller/state"
)

// fakeTransport записывает всё отправленное в чат
type fakeTransport struct {
	mu    sync.Mutex
	texts []sentText
	files []sentFile

	resolvedURL string
	resolveErr  error
}

type sentText struct {
	chatID int64
	text   string
}

type sentFile struct {
	chatID   int64
	filename string
	data     []byte
	caption  string
}

func (f *fakeTransport) SendText(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, sentText{chatID: chatID, text: text})
	return nil
}

func (f *fakeTransport) SendFile(_ context.Context, chatID int64, filename string, data []byte, caption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files = append(f.files, sentFile{chatID: chatID, filename: filename, data: data, caption: caption})
	return nil
}

func (f *fakeTransport) SendTyping(context.Context, int64) {}

func (f *fakeTransport) ResolveFileURL(context.Context, string) (string, error) {
	return f.resolvedURL, f.resolveErr
}

func (f *fakeTransport) sentTexts() []sentText {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentText(nil), f.texts...)
}

func (f *fakeTransport) lastText() string {
	texts := f.sentTexts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1].text
}

// fakeRemote подменяет оба внешних сервиса
type fakeRemote struct {
	mu sync.Mutex

	ingestResult *client.IngestResult
	ingestErr    error
	ingestCalls  []ingestCall

	pptResult *client.Presentation
	pptErr    error
	pptCalls  []pptCall

	// Для имитации долгого запроса: ingestStarted закрывается при входе,
	// ответ не возвращается до закрытия ingestRelease
	ingestStarted chan struct{}
	ingestRelease chan struct{}
}

type ingestCall struct {
	sourceURL string
	sessionID string
}

type pptCall struct {
	content  string
	nSlides  int
	language string
}

func (f *fakeRemote) SubmitIngestJob(_ context.Context, sourceURL, sessionID string) (*client.IngestResult, error) {
	f.mu.Lock()
	f.ingestCalls = append(f.ingestCalls, ingestCall{sourceURL: sourceURL, sessionID: sessionID})
	f.mu.Unlock()

	if f.ingestStarted != nil {
		close(f.ingestStarted)
		<-f.ingestRelease
	}
	return f.ingestResult, f.ingestErr
}

func (f *fakeRemote) SubmitPresentationJob(_ context.Context, content string, nSlides int, language string) (*client.Presentation, error) {
	f.mu.Lock()
	f.pptCalls = append(f.pptCalls, pptCall{content: content, nSlides: nSlides, language: language})
	f.mu.Unlock()
	return f.pptResult, f.pptErr
}

// testEnv собирает Handlers на фейках с реальными Manager и Guard
type testEnv struct {
	handlers  *Handlers
	transport *fakeTransport
	remote    *fakeRemote
	manager   *state.Manager
	guard     *state.Guard
}

func newTestEnv(t *testing.T, remote *fakeRemote) *testEnv {
	t.Helper()

	tr := &fakeTransport{}
	manager := state.NewManager()
	guard := state.NewGuard()

	return &testEnv{
		handlers:  NewHandlers(remote, tr, manager, guard, zap.NewNop()),
		transport: tr,
		remote:    remote,
		manager:   manager,
		guard:     guard,
	}
}

// canStartNewJob проверяет, свободен ли пользователь, не оставляя
// guard захваченным
func canStartNewJob(g *state.Guard, telegramID int64) bool {
	_, ok := g.TryAdmit(telegramID)
	if ok {
		g.Release(telegramID)
	}
	return ok
}

func textUpdate(userID int64, messageID int, text string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:   messageID,
			From: &models.User{ID: userID},
			Chat: models.Chat{ID: userID},
			Text: text,
		},
	}
}

func audioUpdate(userID int64, messageID int, fileID string) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID:    messageID,
			From:  &models.User{ID: userID},
			Chat:  models.Chat{ID: userID},
			Audio: &models.Audio{FileID: fileID},
		},
	}
}
