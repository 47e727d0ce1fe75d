package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/IT-Nick/quizbot/session"
)

// Separator разделяет группы строк в текстовом отчёте.
const Separator = "\n\n"

// lineGroup форматирует одну запись отчёта: маркер, номер вопроса,
// текст вопроса и правильный ответ.
func lineGroup(num int, rec session.AnswerRecord) string {
	mark := "❌"
	if rec.Correct {
		mark = "✅"
	}
	return fmt.Sprintf("%s Вопрос %d: %s\nВерный ответ: %s", mark, num, rec.Question, rec.CorrectAnswer)
}

// TextChunks строит текстовый отчёт по итогам сессии и режет его на части,
// каждая из которых не длиннее limit символов (лимит сообщения транспорта
// за вычетом запаса). Группы строк склеиваются жадно: новая часть начинается
// только тогда, когда следующая группа уже не помещается. Пустых частей
// в результате не бывает; каждый вызов строит отчёт заново.
func TextChunks(res session.Result, limit int) []string {
	var chunks []string
	var b strings.Builder
	length := 0

	sepLen := utf8.RuneCountInString(Separator)
	for i, rec := range res.Records {
		group := lineGroup(i+1, rec)
		groupLen := utf8.RuneCountInString(group)
		if length > 0 && length+sepLen+groupLen > limit {
			chunks = append(chunks, b.String())
			b.Reset()
			length = 0
		}
		if length > 0 {
			b.WriteString(Separator)
			length += sepLen
		}
		b.WriteString(group)
		length += groupLen
	}
	if length > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}
