package report

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/IT-Nick/quizbot/session"
)

// sampleResult строит итог из n записей с чередующейся верностью ответов.
func sampleResult(n int) session.Result {
	res := session.Result{Topic: "наука"}
	for i := 0; i < n; i++ {
		correct := i%2 == 0
		if correct {
			res.Score++
		}
		res.Records = append(res.Records, session.AnswerRecord{
			Index:         i,
			Question:      fmt.Sprintf("Текст вопроса номер %d с некоторыми подробностями", i+1),
			CorrectAnswer: fmt.Sprintf("Ответ %d", i+1),
			Correct:       correct,
		})
	}
	return res
}

// TestTextChunks_ConcatLaw проверяет главный закон разбиения: склейка всех
// частей с восстановленным разделителем совпадает с неразбитым отчётом.
func TestTextChunks_ConcatLaw(t *testing.T) {
	res := sampleResult(20)

	single := TextChunks(res, 1<<20)
	if len(single) != 1 {
		t.Fatalf("С огромным лимитом ожидалась одна часть, получено %d", len(single))
	}

	for _, limit := range []int{120, 200, 350, 1000} {
		chunks := TextChunks(res, limit)
		if len(chunks) < 2 {
			t.Fatalf("Лимит %d: ожидалось несколько частей, получено %d", limit, len(chunks))
		}
		joined := strings.Join(chunks, Separator)
		if joined != single[0] {
			t.Errorf("Лимит %d: склейка частей не совпадает с неразбитым отчётом", limit)
		}
		for i, chunk := range chunks {
			if chunk == "" {
				t.Errorf("Лимит %d: часть %d пустая", limit, i)
			}
			if n := utf8.RuneCountInString(chunk); n > limit {
				t.Errorf("Лимит %d: часть %d длиной %d символов превышает лимит", limit, i, n)
			}
		}
	}
}

// TestTextChunks_Restartable проверяет, что повторный вызов строит тот же отчёт.
func TestTextChunks_Restartable(t *testing.T) {
	res := sampleResult(7)
	first := TextChunks(res, 200)
	second := TextChunks(res, 200)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Повторный вызов вернул другой результат")
	}
}

// TestTextChunks_MarkersAndOrder проверяет содержимое отчёта для сценария
// "верно, неверно, верно": маркеры и номера вопросов идут по порядку.
func TestTextChunks_MarkersAndOrder(t *testing.T) {
	res := session.Result{
		Topic: "наука",
		Score: 2,
		Records: []session.AnswerRecord{
			{Index: 0, Question: "Первый вопрос", CorrectAnswer: "Да", Correct: true},
			{Index: 1, Question: "Второй вопрос", CorrectAnswer: "Нет", Correct: false},
			{Index: 2, Question: "Третий вопрос", CorrectAnswer: "Да", Correct: true},
		},
	}

	chunks := TextChunks(res, 3500)
	if len(chunks) != 1 {
		t.Fatalf("Ожидалась одна часть, получено %d", len(chunks))
	}
	text := chunks[0]

	wantLines := []string{
		"✅ Вопрос 1: Первый вопрос",
		"❌ Вопрос 2: Второй вопрос",
		"✅ Вопрос 3: Третий вопрос",
	}
	pos := -1
	for _, line := range wantLines {
		idx := strings.Index(text, line)
		if idx < 0 {
			t.Fatalf("В отчёте нет строки %q:\n%s", line, text)
		}
		if idx < pos {
			t.Errorf("Строка %q идёт не по порядку", line)
		}
		pos = idx
	}
	if !strings.Contains(text, "Верный ответ: Нет") {
		t.Errorf("В отчёте нет верного ответа на второй вопрос:\n%s", text)
	}
}

// TestTextChunks_Empty проверяет, что пустой итог не порождает пустых частей.
func TestTextChunks_Empty(t *testing.T) {
	if chunks := TextChunks(session.Result{Topic: "наука"}, 100); len(chunks) != 0 {
		t.Errorf("Для пустого итога ожидалось 0 частей, получено %d", len(chunks))
	}
}
