package poller

import (
	"log"

	"gopkg.in/telebot.v3"

	"github.com/IT-Nick/quizbot/config"
)

// NewPoller создаёт Poller в зависимости от режима работы бота:
// вебхук или лонгпуллинг (по умолчанию).
func NewPoller(cfg *config.Config) telebot.Poller {
	if cfg.Mode == "webhook" {
		if cfg.WebhookURL == "" {
			log.Fatalf("В режиме webhook переменная WEBHOOK_URL должна быть задана")
		}
		return &telebot.Webhook{
			Listen: cfg.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: cfg.PollInterval}
}
