package main

import (
	"log"
	"os"

	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/config"
	"github.com/IT-Nick/quizbot/handlers"
	"github.com/IT-Nick/quizbot/middleware"
	"github.com/IT-Nick/quizbot/poller"
	"github.com/IT-Nick/quizbot/quiz"
	"github.com/IT-Nick/quizbot/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Банк вопросов загружается один раз; отсутствующий или некорректный файл
	// фатален на старте, дальше банк только читается.
	bank, err := quiz.Load(cfg.Quiz.QuizzesPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить вопросы: %v", err)
	}

	settings := telebot.Settings{
		Token:  cfg.Token,
		Poller: poller.NewPoller(cfg),
	}
	bot, err := telebot.NewBot(settings)
	if err != nil {
		log.Fatalf("Не удалось создать бота: %v", err)
	}

	store := session.NewStore(bank)

	customLogger := log.New(os.Stdout, "[bot] ", log.LstdFlags)
	if cfg.Debug {
		bot.Use(middleware.Logger(customLogger))
		bot.Use(middleware.DebugUserActions(store))
	}
	bot.Use(
		middleware.AutoRespond(),
		middleware.Recover(),
	)

	handlers.RegisterHandlers(bot, cfg, bank, store)

	log.Printf("Запуск бота в режиме %s, тем в банке: %d", cfg.Mode, len(bank.Topics()))
	bot.Start()
}
