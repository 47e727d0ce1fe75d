// Package messages собирает все строки, которые бот показывает пользователю.
package messages

const (
	// Welcome — приветствие с предложением выбрать тему.
	Welcome = "Привет!\nВыбери тему викторины:"

	// QuestionFmt — заголовок вопроса: номер, всего вопросов, текст.
	QuestionFmt = "❓ Вопрос %d из %d\n\n%s"

	// CorrectToast и WrongToast — мгновенная реакция на ответ.
	CorrectToast = "✅ Верно!"
	WrongToast   = "❌ Неверно"

	// FinishedFmt — итог викторины с предложением выбрать формат отчёта.
	FinishedFmt = "🏁 Конец!\nПравильных ответов: %d из %d\n\nВыберите формат отчёта:"

	// TextReportButton и PDFReportButton — кнопки выбора формата отчёта.
	TextReportButton = "📝 Показать отчёт"
	PDFReportButton  = "📄 PDF с картинками"

	// UnknownTopic — пользователь выбрал тему, которой нет в банке.
	UnknownTopic = "Такой темы нет. Нажмите /start и выберите тему из списка."

	// WrongState — действие пришло в фазе, которая его не поддерживает.
	WrongState = "Вы не можете выполнить это действие на данном этапе."

	// NoSession — действие пришло без активной сессии.
	NoSession = "Викторина ещё не начата. Нажмите /start и выберите тему."

	// TextHint — подсказка на произвольное текстовое сообщение.
	TextHint = "Для прохождения викторины пользуйтесь кнопками. Нажмите /start, чтобы выбрать тему."

	// PDFCaption — подпись к отправляемому PDF-файлу.
	PDFCaption = "PDF-отчёт"

	// PDFFailed — PDF не собрался; предлагаем текстовый формат.
	PDFFailed = "Не удалось сформировать PDF-отчёт. Попробуйте текстовый формат."
)
