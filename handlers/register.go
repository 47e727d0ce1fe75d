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

package handlers

import (
	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/config"
	"github.com/IT-Nick/quizbot/presenter"
	"github.com/IT-Nick/quizbot/quiz"
	"github.com/IT-Nick/quizbot/report"
	"github.com/IT-Nick/quizbot/session"
)

// Глобальные зависимости обработчиков. Инициализируются один раз
// в RegisterHandlers и после этого только читаются.
var (
	cfg     *config.Config  // Конфигурация приложения.
	bank    *quiz.Bank      // Банк вопросов, неизменяемый после загрузки.
	store   *session.Store  // Реестр активных сессий.
	reports *report.Builder // Построитель PDF-отчётов.
)

// RegisterHandlers инициализирует зависимости и регистрирует обработчики
// команд и callback'ов. Каждая inline-кнопка несёт метку шага (тема, ответ,
// формат отчёта) и полезную нагрузку; обработчик расшифровывает нагрузку
// один раз и дальше работает с типизированными значениями.
func RegisterHandlers(bot *telebot.Bot, c *config.Config, b *quiz.Bank, st *session.Store) {
	cfg = c
	bank = b
	store = st
	reports = &report.Builder{
		ImagesDir: c.Quiz.ImagesDir,
		FontPaths: c.Quiz.FontPaths,
		PerPage:   c.Quiz.PerPage,
	}

	// Команды /start и /topics: приветствие и клавиатура выбора темы.
	bot.Handle("/start", startHandler())
	bot.Handle("/topics", startHandler())

	// Произвольный текст: подсказка пользоваться кнопками.
	bot.Handle(telebot.OnText, textHandler())

	// Выбор темы, выбор варианта ответа, выбор формата отчёта.
	bot.Handle(&telebot.InlineButton{Unique: string(presenter.ActionTopic)}, topicHandler())
	bot.Handle(&telebot.InlineButton{Unique: string(presenter.ActionAnswer)}, answerHandler())
	bot.Handle(&telebot.InlineButton{Unique: string(presenter.ActionReport)}, reportHandler())
}
