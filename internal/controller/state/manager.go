package state

import (
	"sync"
)

// Manager управляет состояниями диалогов пользователей.
// Все изменения идут через методы-переходы, снаружи состояние только читается.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*Conversation // telegramID -> Conversation
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*Conversation),
	}
}

// Stage получает текущую стадию диалога пользователя
func (sm *Manager) Stage(telegramID int64) Stage {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if conv, exists := sm.states[telegramID]; exists {
		return conv.Stage
	}
	return StageIdle
}

// Snapshot возвращает копию состояния пользователя
func (sm *Manager) Snapshot(telegramID int64) Conversation {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if conv, exists := sm.states[telegramID]; exists {
		return *conv
	}
	return Conversation{SlideCount: DefaultSlideCount, Language: DefaultLanguage}
}

// StoreIngestResult сохраняет транскрипт и резюме и переводит диалог
// на стадию выбора количества слайдов
func (sm *Manager) StoreIngestResult(telegramID int64, transcript, summary string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[telegramID] = &Conversation{
		Stage:      StageAwaitingSlideCount,
		Transcript: transcript,
		Summary:    summary,
		SlideCount: DefaultSlideCount,
		Language:   DefaultLanguage,
	}
}

// StoreSlideCount сохраняет количество слайдов и переводит диалог
// на стадию выбора языка. Без транскрипта переход невозможен.
func (sm *Manager) StoreSlideCount(telegramID int64, slideCount int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	conv, exists := sm.states[telegramID]
	if !exists {
		return
	}
	conv.SlideCount = slideCount
	conv.Stage = StageAwaitingLanguage
}

// StoreLanguage сохраняет язык презентации
func (sm *Manager) StoreLanguage(telegramID int64, language string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	conv, exists := sm.states[telegramID]
	if !exists {
		return
	}
	conv.Language = language
}

// Reset очищает состояние пользователя, диалог возвращается в StageIdle
func (sm *Manager) Reset(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}
