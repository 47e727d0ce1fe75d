package session

import (
	"errors"

	"github.com/IT-Nick/quizbot/quiz"
)

// ErrInvalidState возвращается, когда действие пользователя приходит в фазе,
// которая его не поддерживает (например, повторное нажатие на вариант ответа
// после завершения вопросов). Состояние сессии при этом не меняется.
var ErrInvalidState = errors.New("действие недоступно на данном этапе")

// Phase описывает фазу прохождения викторины.
type Phase int

const (
	// AwaitingAnswer — пользователь отвечает на вопросы темы.
	AwaitingAnswer Phase = iota
	// AwaitingReportChoice — вопросы закончились, ожидается выбор формата отчёта.
	AwaitingReportChoice
	// Closed — отчёт выдан, сессия подлежит удалению из хранилища.
	Closed
)

// AnswerRecord — снимок одного отвеченного вопроса. Текст вопроса и правильного
// ответа фиксируются в момент ответа, чтобы отчёт не зависел от банка вопросов.
type AnswerRecord struct {
	Index         int    // Индекс вопроса в теме.
	Question      string // Текст вопроса на момент ответа.
	CorrectAnswer string // Текст правильного варианта на момент ответа.
	ImageFile     string // Имя файла картинки (может быть пустым).
	Correct       bool   // Верно ли ответил пользователь.
}

// Result — итог завершённой сессии, потребляется построителем отчётов.
type Result struct {
	Topic   string
	Score   int
	Records []AnswerRecord
}

// Session хранит прохождение одним пользователем одной темы.
// Сессия принадлежит хранилищу и изменяется только переходами конечного
// автомата: CurrentQuestion -> SubmitAnswer -> ... -> Result.
type Session struct {
	UserID    int64
	Topic     string
	questions []quiz.Question
	Current   int
	Score     int
	Records   []AnswerRecord
	Phase     Phase
}

// newSession создаёт свежую сессию в фазе AwaitingAnswer.
func newSession(userID int64, topic string, questions []quiz.Question) *Session {
	return &Session{
		UserID:    userID,
		Topic:     topic,
		questions: questions,
		Phase:     AwaitingAnswer,
	}
}

// Total возвращает число вопросов в теме.
func (s *Session) Total() int {
	return len(s.questions)
}

// CurrentQuestion возвращает текущий вопрос. Допустимо только в фазе AwaitingAnswer.
func (s *Session) CurrentQuestion() (quiz.Question, error) {
	if s.Phase != AwaitingAnswer {
		return quiz.Question{}, ErrInvalidState
	}
	return s.questions[s.Current], nil
}

// SubmitAnswer фиксирует выбранный вариант ответа на текущий вопрос.
// Возвращает, был ли ответ верным и был ли вопрос последним. Повторные вызовы
// после окончания вопросов отклоняются с ErrInvalidState и не меняют ни счёт,
// ни записи — это защита от двойного начисления очков при дублях callback'ов.
func (s *Session) SubmitAnswer(choice int) (correct bool, last bool, err error) {
	if s.Phase != AwaitingAnswer {
		return false, false, ErrInvalidState
	}
	q := s.questions[s.Current]
	correct = choice == q.Correct
	s.Records = append(s.Records, AnswerRecord{
		Index:         s.Current,
		Question:      q.Text,
		CorrectAnswer: q.Options[q.Correct],
		ImageFile:     q.ImageFile,
		Correct:       correct,
	})
	if correct {
		s.Score++
	}
	s.Current++
	if s.Current == len(s.questions) {
		s.Phase = AwaitingReportChoice
		return correct, true, nil
	}
	return correct, false, nil
}

// Result завершает сессию и возвращает её итог для построения отчёта.
// Допустимо только в фазе AwaitingReportChoice; после вызова сессия переходит
// в Closed, и вызывающая сторона обязана удалить её из хранилища.
func (s *Session) Result() (Result, error) {
	if s.Phase != AwaitingReportChoice {
		return Result{}, ErrInvalidState
	}
	s.Phase = Closed
	return Result{Topic: s.Topic, Score: s.Score, Records: s.Records}, nil
}
