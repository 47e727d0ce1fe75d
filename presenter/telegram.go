package presenter

import (
	"path/filepath"

	"gopkg.in/telebot.v3"
)

// Telegram реализует Presenter поверх telebot-контекста текущего обновления.
// Адаптер привязан к пользователю, чьё действие обрабатывается.
type Telegram struct {
	c telebot.Context
}

// NewTelegram создаёт адаптер для контекста обновления.
func NewTelegram(c telebot.Context) *Telegram {
	return &Telegram{c: c}
}

// ShowChoices отправляет сообщение с inline-клавиатурой: одна кнопка в строке.
// Если указана картинка, текст уходит подписью к фото.
func (t *Telegram) ShowChoices(text string, buttons []Button, imagePath string) error {
	rm := &telebot.ReplyMarkup{}
	rows := make([][]telebot.InlineButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []telebot.InlineButton{{
			Text:   b.Label,
			Unique: string(b.Action),
			Data:   b.Data,
		}})
	}
	rm.InlineKeyboard = rows

	if imagePath != "" {
		photo := &telebot.Photo{File: telebot.FromDisk(imagePath), Caption: text}
		return t.c.Send(photo, rm)
	}
	return t.c.Send(text, rm)
}

func (t *Telegram) ShowText(text string) error {
	return t.c.Send(text)
}

func (t *Telegram) ShowDocument(path, caption string) error {
	doc := &telebot.Document{
		File:     telebot.FromDisk(path),
		FileName: filepath.Base(path),
		Caption:  caption,
	}
	return t.c.Send(doc)
}

// Notify отвечает на callback всплывающим уведомлением; для обычных сообщений
// откатывается к короткому текстовому ответу.
func (t *Telegram) Notify(short string) error {
	if t.c.Callback() != nil {
		return t.c.Respond(&telebot.CallbackResponse{Text: short})
	}
	return t.c.Send(short)
}
