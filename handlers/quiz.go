package handlers

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/messages"
	"github.com/IT-Nick/quizbot/presenter"
	"github.com/IT-Nick/quizbot/session"
)

// topicHandler обрабатывает выбор темы: нагрузка кнопки — имя темы.
func topicHandler() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		p := presenter.NewTelegram(c)
		topic := strings.TrimSpace(c.Callback().Data)
		return startTopic(p, c.Sender().ID, topic)
	}
}

// answerHandler обрабатывает выбор варианта ответа: нагрузка кнопки — индекс
// варианта. Некорректная нагрузка игнорируется, сессия остаётся нетронутой.
func answerHandler() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		p := presenter.NewTelegram(c)
		data := strings.TrimSpace(c.Callback().Data)
		choice, err := strconv.Atoi(data)
		if err != nil {
			log.Printf("Некорректная нагрузка callback'а ответа: %q", data)
			return nil
		}
		return submitAnswer(p, c.Sender().ID, choice)
	}
}

// startTopic создаёт пользователю свежую сессию по теме (прежняя, если была,
// сбрасывается) и отправляет первый вопрос. Неизвестная тема отклоняется,
// состояние пользователя не меняется.
func startTopic(p presenter.Presenter, userID int64, topic string) error {
	s, err := store.Start(userID, topic)
	if errors.Is(err, session.ErrUnknownTopic) {
		log.Printf("Пользователь %d выбрал неизвестную тему %q", userID, topic)
		return p.ShowText(messages.UnknownTopic)
	}
	if err != nil {
		return err
	}
	return askQuestion(p, s)
}

// askQuestion отправляет текущий вопрос сессии: заголовок с номером,
// кнопки вариантов и, если файл существует, картинку.
func askQuestion(p presenter.Presenter, s *session.Session) error {
	q, err := s.CurrentQuestion()
	if err != nil {
		return err
	}
	text := fmt.Sprintf(messages.QuestionFmt, s.Current+1, s.Total(), q.Text)
	buttons := make([]presenter.Button, 0, len(q.Options))
	for i, opt := range q.Options {
		buttons = append(buttons, presenter.Button{
			Label:  opt,
			Action: presenter.ActionAnswer,
			Data:   strconv.Itoa(i),
		})
	}
	return p.ShowChoices(text, buttons, resolveImage(q.ImageFile))
}

// resolveImage возвращает путь к картинке вопроса или пустую строку,
// если картинка не указана или файла нет. Отсутствие файла не фатально.
func resolveImage(name string) string {
	if name == "" {
		return ""
	}
	path := filepath.Join(cfg.Quiz.ImagesDir, name)
	if _, err := os.Stat(path); err != nil {
		log.Printf("Картинка не найдена: %s", path)
		return ""
	}
	return path
}

// submitAnswer проводит ответ через конечный автомат сессии: всплывающее
// уведомление о верности, затем следующий вопрос либо итог с выбором формата
// отчёта. Ответ вне фазы AwaitingAnswer отклоняется без изменения состояния —
// дубль callback'а не приносит вторых очков.
func submitAnswer(p presenter.Presenter, userID int64, choice int) error {
	s, ok := store.Get(userID)
	if !ok {
		return p.Notify(messages.NoSession)
	}
	correct, last, err := s.SubmitAnswer(choice)
	if errors.Is(err, session.ErrInvalidState) {
		log.Printf("Ответ пользователя %d отклонён: действие вне фазы вопросов", userID)
		return p.Notify(messages.WrongState)
	}
	if err != nil {
		return err
	}

	toast := messages.WrongToast
	if correct {
		toast = messages.CorrectToast
	}
	// Потеря уведомления не критична: сессия уже продвинулась.
	if err := p.Notify(toast); err != nil {
		log.Printf("Не удалось отправить уведомление пользователю %d: %v", userID, err)
	}

	if !last {
		return askQuestion(p, s)
	}
	return offerReport(p, s)
}

// offerReport показывает итог викторины и клавиатуру выбора формата отчёта.
func offerReport(p presenter.Presenter, s *session.Session) error {
	text := fmt.Sprintf(messages.FinishedFmt, s.Score, s.Total())
	buttons := []presenter.Button{
		{Label: messages.TextReportButton, Action: presenter.ActionReport, Data: FormatText},
		{Label: messages.PDFReportButton, Action: presenter.ActionReport, Data: FormatPDF},
	}
	return p.ShowChoices(text, buttons, "")
}
