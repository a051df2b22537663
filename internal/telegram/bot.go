package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegramBotSummary/internal/storage"
	"telegramBotSummary/internal/summarizer"
)

type Bot struct {
	api *tgbotapi.BotAPI
	h   *Handlers
}

func NewBot(token string, store *storage.Store, sum summarizer.Summarizer) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Printf("telegram: authorized as @%s", api.Self.UserName)
	return &Bot{api: api, h: NewHandlers(api, store, sum)}, nil
}

// Run consumes the long-polling update stream until it closes. Updates are
// handled one at a time so multi-chunk replies never interleave.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	log.Println("telegram: polling started")
	for update := range updates {
		if update.Message != nil {
			b.h.HandleMessage(update.Message)
		}
	}
}
