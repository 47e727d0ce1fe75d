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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config содержит параметры конфигурации приложения.
// Секреты и режим работы берутся из переменных окружения (и файла .env),
// настройки ресурсов викторины — из необязательного YAML-файла.
type Config struct {
	Token        string        // Telegram-бот токен, обязательный параметр.
	Mode         string        // Режим работы: "webhook" или "polling".
	WebhookURL   string        // Публичный URL для вебхуков (Mode == "webhook").
	ListenAddr   string        // Адрес и порт для прослушивания вебхуков.
	PollInterval time.Duration // Интервал лонгпуллинга (Mode == "polling").
	Debug        bool          // Подробное логирование обновлений.

	Quiz QuizConfig // Настройки викторины и отчётов.
}

// QuizConfig описывает ресурсы викторины: банк вопросов, картинки, шрифты
// и параметры отчётов.
type QuizConfig struct {
	QuizzesPath  string   `yaml:"quizzes_path"`       // Файл банка вопросов (JSON по темам).
	ImagesDir    string   `yaml:"images_dir"`         // Каталог картинок к вопросам.
	FontPaths    []string `yaml:"font_paths"`         // Кандидаты на Unicode-шрифт для PDF.
	PerPage      int      `yaml:"questions_per_page"` // Вопросов на страницу PDF-отчёта.
	MessageLimit int      `yaml:"message_limit"`      // Лимит длины одного текстового сообщения.
}

// defaultQuizConfig возвращает настройки викторины по умолчанию.
func defaultQuizConfig() QuizConfig {
	return QuizConfig{
		QuizzesPath: "data/quizzes.json",
		ImagesDir:   "images",
		FontPaths: []string{
			"fonts/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/TTF/DejaVuSans.ttf",
		},
		PerPage: 5,
		// Лимит сообщения Telegram — 4096 символов, оставляем запас.
		MessageLimit: 3500,
	}
}

// LoadConfig загружает конфигурацию из файла .env (если он существует),
// переменных окружения и необязательного YAML-файла (путь — CONFIG_PATH,
// по умолчанию "config.yaml").
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("переменная TELEGRAM_BOT_TOKEN не задана")
	}

	mode := os.Getenv("BOT_MODE")
	if mode == "" {
		mode = "polling"
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8443"
	}

	pollInterval := 2 * time.Second
	if piStr := os.Getenv("POLL_INTERVAL"); piStr != "" {
		if pi, err := strconv.Atoi(piStr); err == nil {
			pollInterval = time.Duration(pi) * time.Second
		}
	}

	debug := false
	if debugStr := os.Getenv("DEBUG"); debugStr == "true" || debugStr == "1" {
		debug = true
	}

	quiz := defaultQuizConfig()
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	if err := loadQuizYAML(configPath, &quiz); err != nil {
		return nil, err
	}

	return &Config{
		Token:        token,
		Mode:         mode,
		WebhookURL:   os.Getenv("WEBHOOK_URL"),
		ListenAddr:   listenAddr,
		PollInterval: pollInterval,
		Debug:        debug,
		Quiz:         quiz,
	}, nil
}

// loadQuizYAML дополняет настройки викторины значениями из YAML-файла.
// Отсутствие файла не ошибка: действуют значения по умолчанию.
func loadQuizYAML(filename string, quiz *QuizConfig) error {
	f, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("не удалось открыть файл конфигурации %s: %w", filename, err)
	}
	defer f.Close()

	loaded := *quiz
	if err := yaml.NewDecoder(f).Decode(&loaded); err != nil {
		return fmt.Errorf("не удалось разобрать файл конфигурации %s: %w", filename, err)
	}
	// Пустые поля YAML не затирают значения по умолчанию.
	if loaded.QuizzesPath == "" {
		loaded.QuizzesPath = quiz.QuizzesPath
	}
	if loaded.ImagesDir == "" {
		loaded.ImagesDir = quiz.ImagesDir
	}
	if len(loaded.FontPaths) == 0 {
		loaded.FontPaths = quiz.FontPaths
	}
	if loaded.PerPage <= 0 {
		loaded.PerPage = quiz.PerPage
	}
	if loaded.MessageLimit <= 0 {
		loaded.MessageLimit = quiz.MessageLimit
	}
	*quiz = loaded
	return nil
}
