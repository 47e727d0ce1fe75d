package handlers

import (
	"errors"
	"log"
	"os"
	"strings"

	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/messages"
	"github.com/IT-Nick/quizbot/presenter"
	"github.com/IT-Nick/quizbot/report"
	"github.com/IT-Nick/quizbot/session"
)

// Форматы отчёта, которые несут кнопки выбора.
const (
	FormatText = "text"
	FormatPDF  = "pdf"
)

// reportHandler обрабатывает выбор формата отчёта: нагрузка кнопки —
// "text" или "pdf".
func reportHandler() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		p := presenter.NewTelegram(c)
		format := strings.TrimSpace(c.Callback().Data)
		return deliverReport(p, c.Sender().ID, format)
	}
}

// deliverReport завершает сессию и доставляет отчёт в выбранном формате.
// После успешного перехода в Closed сессия удаляется из реестра независимо
// от исхода доставки: потерянное сообщение пользователь компенсирует новым
// выбором темы. Повторное нажатие кнопки формата получает вежливый отказ.
func deliverReport(p presenter.Presenter, userID int64, format string) error {
	if format != FormatText && format != FormatPDF {
		log.Printf("Неизвестный формат отчёта %q от пользователя %d", format, userID)
		return nil
	}
	s, ok := store.Get(userID)
	if !ok {
		return p.Notify(messages.NoSession)
	}
	res, err := s.Result()
	if errors.Is(err, session.ErrInvalidState) {
		log.Printf("Запрос отчёта пользователя %d отклонён: вопросы ещё не закончились", userID)
		return p.Notify(messages.WrongState)
	}
	if err != nil {
		return err
	}
	store.Remove(userID)

	if format == FormatText {
		return sendTextReport(p, res)
	}
	return sendPDFReport(p, res)
}

// sendTextReport отправляет текстовый отчёт по частям, не превышающим лимит
// сообщения. Ошибка доставки отдельной части логируется и не прерывает
// отправку остальных.
func sendTextReport(p presenter.Presenter, res session.Result) error {
	for _, chunk := range report.TextChunks(res, cfg.Quiz.MessageLimit) {
		if err := p.ShowText(chunk); err != nil {
			log.Printf("Не удалось отправить часть текстового отчёта: %v", err)
		}
	}
	return nil
}

// sendPDFReport строит PDF во временном файле, отправляет его документом
// и удаляет файл на любом исходе доставки.
func sendPDFReport(p presenter.Presenter, res session.Result) error {
	path, err := reports.Build(res)
	if err != nil {
		log.Printf("Ошибка генерации отчёта: %v", err)
		return p.ShowText(messages.PDFFailed)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			log.Printf("Не удалось удалить временный файл %s: %v", path, err)
		}
	}()

	if err := p.ShowDocument(path, messages.PDFCaption); err != nil {
		log.Printf("Ошибка отправки отчёта: %v", err)
	}
	return nil
}
