/*
MIT License

Copyright (c) 2025 Первый Бит

Данная лицензия разрешает использование, копирование, изменение, слияние, публикацию, распространение,
лицензирование и/или продажу копий программного обеспечения при соблюдении следующих условий:

В вышеуказанном уведомлении об авторских правах и данном уведомлении о разрешении должны быть включены все копии
или значимые части программного обеспечения.

ПРОГРАММНОЕ ОБЕСПЕЧЕНИЕ ПРЕДОСТАВЛЯЕТСЯ "КАК ЕСТЬ", БЕЗ ГАРАНТИЙ ЛЮБОГО РОДА, ЯВНЫХ ИЛИ ПОДРАЗУМЕВАЕМЫХ,
ВКЛЮЧАЯ, НО НЕ ОГРАНИЧИВАЯСЬ, ГАРАНТИЯМИ КОММЕРЧЕСКОЙ ПРИГОДНОСТИ, СООТВЕТСТВИЯ ДЛЯ ОПРЕДЕЛЕННОЙ ЦЕЛИ И
НЕНАРУШЕНИЯ ПРАВ. НИ В КОЕМ СЛУЧАЕ АВТОРЫ ИЛИ ПРАВООБЛАДАТЕЛИ НЕ НЕСУТ ОТВЕТСТВЕННОСТИ ПО ИСКАМ,
УСЛОВИЯМ, ДАМГЕ или другим обязательствам, возникающим из, или в связи с использованием, или иным образом
связанным с данным программным обеспечением.
*/

package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Question описывает один вопрос викторины.
type Question struct {
	Text      string   `json:"question"`   // Текст вопроса.
	Options   []string `json:"options"`    // Варианты ответа (минимум два).
	Correct   int      `json:"correct"`    // Индекс правильного варианта.
	ImageFile string   `json:"image_file"` // Имя файла картинки в каталоге изображений (опционально).
}

// MalformedError описывает некорректную запись в файле с вопросами.
// Ошибка указывает тему и номер вопроса, чтобы файл было легко поправить.
type MalformedError struct {
	Topic  string
	Index  int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Topic == "" {
		return fmt.Sprintf("некорректный файл вопросов: %s", e.Reason)
	}
	return fmt.Sprintf("некорректный вопрос %d в теме %q: %s", e.Index+1, e.Topic, e.Reason)
}

// Bank хранит вопросы викторины, сгруппированные по темам.
// Банк загружается один раз при старте процесса и после этого не изменяется,
// поэтому читать его из нескольких горутин можно без синхронизации.
type Bank struct {
	topics map[string][]Question
	names  []string
}

// Load загружает банк вопросов из JSON-файла вида
// {"тема": [{"question": ..., "options": [...], "correct": 0, "image_file": "..."}]}.
// Отсутствующий файл возвращается как есть (os.IsNotExist), некорректное
// содержимое — как *MalformedError.
func Load(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл с вопросами: %w", err)
	}
	var topics map[string][]Question
	if err := json.Unmarshal(data, &topics); err != nil {
		return nil, &MalformedError{Reason: fmt.Sprintf("не удалось разобрать JSON: %v", err)}
	}
	if len(topics) == 0 {
		return nil, &MalformedError{Reason: "в файле нет ни одной темы"}
	}
	for topic, questions := range topics {
		if len(questions) == 0 {
			return nil, &MalformedError{Topic: topic, Reason: "тема не содержит вопросов"}
		}
		for i, q := range questions {
			if err := validate(topic, i, q); err != nil {
				return nil, err
			}
		}
	}

	names := make([]string, 0, len(topics))
	for topic := range topics {
		names = append(names, topic)
	}
	// Темы сортируются, чтобы клавиатура выбора темы была стабильной от запуска к запуску.
	sort.Strings(names)

	return &Bank{topics: topics, names: names}, nil
}

// validate проверяет инварианты одного вопроса.
func validate(topic string, i int, q Question) error {
	switch {
	case q.Text == "":
		return &MalformedError{Topic: topic, Index: i, Reason: "пустой текст вопроса"}
	case len(q.Options) < 2:
		return &MalformedError{Topic: topic, Index: i, Reason: "нужно минимум два варианта ответа"}
	case q.Correct < 0 || q.Correct >= len(q.Options):
		return &MalformedError{Topic: topic, Index: i,
			Reason: fmt.Sprintf("индекс правильного ответа %d вне диапазона [0, %d)", q.Correct, len(q.Options))}
	}
	return nil
}

// Topics возвращает отсортированный список тем.
func (b *Bank) Topics() []string {
	return b.names
}

// Questions возвращает вопросы темы в исходном порядке.
func (b *Bank) Questions(topic string) ([]Question, bool) {
	qs, ok := b.topics[topic]
	return qs, ok
}
