package middleware

import (
	"errors"
	"log"

	tele "gopkg.in/telebot.v3"
)

// Recover возвращает middleware, которое перехватывает панику в обработчике
// и передаёт её заданной функции. Без аргументов паника просто логируется:
// одна упавшая сессия не должна ронять бота целиком.
func Recover(onError ...func(error, tele.Context)) tele.MiddlewareFunc {
	var handleError func(error, tele.Context)
	if len(onError) > 0 {
		handleError = onError[0]
	} else {
		handleError = func(err error, c tele.Context) {
			log.Printf("Паника в обработчике: %v", err)
		}
	}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					var e error
					switch x := r.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					handleError(e, c)
					err = e
				}
			}()
			return next(c)
		}
	}
}
