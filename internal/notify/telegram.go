package notify

import (
	"fmt"
	"log/slog"

	"eventsCrawler/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram posts crawl summaries to the admin chat so moderators know when
// new records await review.
type Telegram struct {
	logger *slog.Logger
	bot    *tgbotapi.BotAPI
	chatID int64
}

func New(logger *slog.Logger, cfg *config.Config) (*Telegram, error) {
	op := "notify.New()"
	log := logger.With(slog.String("op", op))

	bot, err := tgbotapi.NewBotAPI(cfg.Notify.TgbotApiToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("telegram notifier ready", slog.String("bot", bot.Self.UserName))

	return &Telegram{
		logger: logger,
		bot:    bot,
		chatID: cfg.Notify.AdminChatID,
	}, nil
}

// CrawlFinished reports how many records a crawl staged for moderation.
func (t *Telegram) CrawlFinished(sourceURL string, staged int) error {
	op := "Telegram.CrawlFinished()"

	text := fmt.Sprintf("Crawl finished: %d new events from %s await review", staged, sourceURL)
	msg := tgbotapi.NewMessage(t.chatID, text)

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
