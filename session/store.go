package session

import (
	"errors"
	"sync"

	"github.com/IT-Nick/quizbot/quiz"
)

// ErrUnknownTopic возвращается при попытке начать викторину по теме,
// которой нет в банке вопросов.
var ErrUnknownTopic = errors.New("такой темы нет в банке вопросов")

// Store — общепроцессный реестр активных сессий: один пользователь — одна сессия.
// Мьютекс защищает только саму карту (создание, замена, удаление записи);
// поля конкретной сессии изменяет ровно один обработчик текущего действия
// пользователя, поэтому дополнительной синхронизации им не требуется.
type Store struct {
	mu       sync.RWMutex
	bank     *quiz.Bank
	sessions map[int64]*Session
}

// NewStore создаёт хранилище сессий поверх загруженного банка вопросов.
func NewStore(bank *quiz.Bank) *Store {
	return &Store{
		bank:     bank,
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает активную сессию пользователя без побочных эффектов.
func (st *Store) Get(userID int64) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

// Start создаёт новую сессию по теме, заменяя прежнюю сессию пользователя,
// если она была: выбор новой темы всегда сбрасывает прогресс. Это осознанная
// политика, а не упущение.
func (st *Store) Start(userID int64, topic string) (*Session, error) {
	questions, ok := st.bank.Questions(topic)
	if !ok {
		return nil, ErrUnknownTopic
	}
	s := newSession(userID, topic, questions)
	st.mu.Lock()
	st.sessions[userID] = s
	st.mu.Unlock()
	return s, nil
}

// Remove удаляет сессию пользователя. Повторные вызовы безвредны.
func (st *Store) Remove(userID int64) {
	st.mu.Lock()
	delete(st.sessions, userID)
	st.mu.Unlock()
}
