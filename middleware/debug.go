package middleware

import (
	"fmt"
	"log"

	tele "gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/session"
)

// DebugUserActions возвращает middleware, которое при включённом режиме
// отладки логирует действие пользователя вместе с фазой его сессии:
// тема, номер текущего вопроса и счёт. Помогает разбирать жалобы вида
// "нажал на кнопку, а бот не отвечает".
func DebugUserActions(store *session.Store) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			err := next(c)

			user := c.Sender()
			if user == nil {
				return err
			}
			state := "нет сессии"
			if s, ok := store.Get(user.ID); ok {
				state = fmt.Sprintf("тема=%q вопрос=%d счёт=%d фаза=%d",
					s.Topic, s.Current, s.Score, s.Phase)
			}
			var action string
			if msg := c.Message(); msg != nil && msg.Text != "" {
				action = "Message: " + msg.Text
			} else if cb := c.Callback(); cb != nil {
				action = "Callback: " + cb.Data
			} else {
				action = "Unknown action"
			}
			log.Printf("DEBUG: user=%d (%s), %s, действие: %s", user.ID, user.FirstName, state, action)
			return err
		}
	}
}
