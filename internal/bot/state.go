package bot

import (
	"sync"

	"github.com/nonmagicfly/bot-ai-cursor/internal/models"
)

// Step — шаг диалога.
type Step int

const (
	StepAwaitingProgramName Step = iota + 1
	StepAwaitingProgramBody
	StepAwaitingWeight
)

// Session — состояние диалога одного чата. Живёт от старта потока до его
// завершения или сброса; вне потока записи в хранилище нет.
type Session struct {
	Step        Step
	ProgramName string // черновик названия при создании программы

	// Поля тренировки
	ProgramID    uint
	ProgramTitle string
	Exercises    []*models.Exercise
	ExerciseIdx  int // индекс текущего упражнения, с нуля
	CurrentSet   int // номер текущего подхода, с единицы
}

// Current возвращает текущее упражнение тренировки.
func (s *Session) Current() *models.Exercise {
	return s.Exercises[s.ExerciseIdx]
}

// Valid сообщает, хватает ли в сессии данных для продолжения тренировки.
func (s *Session) Valid() bool {
	return len(s.Exercises) > 0 &&
		s.ExerciseIdx >= 0 && s.ExerciseIdx < len(s.Exercises) &&
		s.CurrentSet >= 1
}

// Advance переходит к следующему подходу, а после последнего подхода — к
// следующему упражнению. Возвращает true, когда упражнения закончились.
func (s *Session) Advance() bool {
	if s.CurrentSet < s.Current().Sets {
		s.CurrentSet++
		return false
	}
	s.ExerciseIdx++
	s.CurrentSet = 1
	return s.ExerciseIdx >= len(s.Exercises)
}

// SessionStore хранит состояния всех диалогов по ключу чата. Состояния
// разных чатов полностью независимы.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Получить состояние
func (s *SessionStore) Get(chatID int64) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[chatID]
	return session, exists
}

// Установить состояние
func (s *SessionStore) Set(chatID int64, session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Сбросить состояние
func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
