package middleware

import (
	tele "gopkg.in/telebot.v3"
)

// AutoRespond возвращает middleware, которое гарантированно отвечает на каждый
// callback после работы обработчика: иначе у пользователя навсегда остаются
// "часики" на нажатой кнопке. Если обработчик уже ответил сам (например,
// всплывающим уведомлением), повторный ответ Telegram молча отклонит.
func AutoRespond() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Callback() != nil {
				defer func() {
					_ = c.Respond()
				}()
			}
			return next(c)
		}
	}
}
