package state

// Stage представляет текущий шаг диалога с пользователем
type Stage string

const (
	// StageIdle - нет активного диалога
	StageIdle Stage = ""

	// StageAwaitingSlideCount - транскрипт получен, ждём количество слайдов
	StageAwaitingSlideCount Stage = "awaiting_slide_count"

	// StageAwaitingLanguage - количество слайдов получено, ждём язык
	StageAwaitingLanguage Stage = "awaiting_language"
)

// Дефолтные параметры презентации
const (
	DefaultSlideCount = 5
	DefaultLanguage   = "Russian"
)

// Conversation хранит данные пользователя между сообщениями диалога.
// Поля Transcript/Summary заполнены для любой стадии кроме StageIdle,
// SlideCount дополнительно заполнен для StageAwaitingLanguage.
type Conversation struct {
	Stage      Stage
	Transcript string
	Summary    string
	SlideCount int
	Language   string
}
