package handlers

import (
	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/messages"
	"github.com/IT-Nick/quizbot/presenter"
)

// startHandler обрабатывает команду /start: приветствует пользователя
// и показывает клавиатуру с темами викторины.
func startHandler() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return showTopics(presenter.NewTelegram(c))
	}
}

// textHandler отвечает на произвольные текстовые сообщения подсказкой:
// викторина управляется кнопками.
func textHandler() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return presenter.NewTelegram(c).ShowText(messages.TextHint)
	}
}

// showTopics показывает клавиатуру выбора темы из банка вопросов.
func showTopics(p presenter.Presenter) error {
	topics := bank.Topics()
	buttons := make([]presenter.Button, 0, len(topics))
	for _, topic := range topics {
		buttons = append(buttons, presenter.Button{
			Label:  topic,
			Action: presenter.ActionTopic,
			Data:   topic,
		})
	}
	return p.ShowChoices(messages.Welcome, buttons, "")
}
