package state

import (
	"sync"
)

// Guard не допускает больше одной активной задачи на пользователя.
// Проверка и установка флага атомарны под одним мьютексом.
// Каждой допущенной задаче выдаётся токен: после /cancel токен
// перестаёт действовать, и завершившийся после отмены запрос
// узнаёт об этом через Holds и выбрасывает свой результат.
type Guard struct {
	mu   sync.Mutex
	seq  uint64
	busy map[int64]uint64 // telegramID -> токен активной задачи
}

// NewGuard создаёт новый guard
func NewGuard() *Guard {
	return &Guard{
		busy: make(map[int64]uint64),
	}
}

// TryAdmit пытается занять пользователя новой задачей.
// При успехе возвращает токен задачи, иначе false без изменений.
func (g *Guard) TryAdmit(telegramID int64) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.busy[telegramID]; exists {
		return 0, false
	}
	g.seq++
	g.busy[telegramID] = g.seq
	return g.seq, true
}

// Holds проверяет, что задача с этим токеном всё ещё активна.
// После Release (в том числе по отмене) токен недействителен.
func (g *Guard) Holds(telegramID int64, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return token != 0 && g.busy[telegramID] == token
}

// Busy проверяет, выполняется ли у пользователя задача
func (g *Guard) Busy(telegramID int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, exists := g.busy[telegramID]
	return exists
}

// Release снимает флаг занятости. Идемпотентна: повторный вызов
// или вызов для свободного пользователя безопасны.
func (g *Guard) Release(telegramID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.busy, telegramID)
}
