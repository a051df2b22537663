package telegram

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegramBotSummary/internal/stats"
	"telegramBotSummary/internal/storage"
	"telegramBotSummary/internal/summarizer"
)

const (
	// Telegram rejects messages over 4096 chars; stay under with headroom.
	maxMessageLen = 4000

	ackText      = "Got the link — fetching summary from Gemini..."
	apiErrorText = "Error: failed to contact Gemini API."
)

var (
	// /stats [days]
	reStats = regexp.MustCompile(`^/stats(?:@[\w_]+)?(?:\s+(\d+))?$`)
	// /help, /start
	reHelp = regexp.MustCompile(`^/(help|start)(?:@[\w_]+)?$`)
)

// api is the slice of tgbotapi.BotAPI the handlers need. Keeping it an
// interface allows a recording fake in tests.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// requestLog is the slice of storage.Store the handlers need.
type requestLog interface {
	SaveRequest(chatID, userID int64, url, outcome string, ts int64) error
	DailyCounts(since int64) ([]storage.DailyCount, error)
}

type Handlers struct {
	api       api
	store     requestLog
	summarize summarizer.Summarizer
	timeout   time.Duration
}

func NewHandlers(api api, store requestLog, sum summarizer.Summarizer) *Handlers {
	return &Handlers{
		api:       api,
		store:     store,
		summarize: sum,
		timeout:   60 * time.Second,
	}
}

func (h *Handlers) HandleMessage(m *tgbotapi.Message) {
	txt := strings.TrimSpace(m.Text)
	if txt == "" {
		return
	}

	// Commands never enter the summary flow; unknown ones stay silent so
	// the bot doesn't spam shared chats.
	if m.IsCommand() {
		switch {
		case reHelp.MatchString(txt):
			h.handleHelp(m.Chat.ID)
		case reStats.MatchString(txt):
			days := 7
			if g := reStats.FindStringSubmatch(txt); len(g) == 2 && g[1] != "" {
				fmt.Sscanf(g[1], "%d", &days)
				if days < 1 {
					days = 1
				}
				if days > 90 {
					days = 90
				}
			}
			h.handleStats(m.Chat.ID, days)
		}
		return
	}

	link := summarizer.ExtractVideoLink(txt)
	if link == "" {
		return
	}
	log.Printf("telegram: link in chat %d: %s", m.Chat.ID, link)

	var userID int64
	if m.From != nil {
		userID = m.From.ID
	}
	h.handleLink(m.Chat.ID, userID, link)
}

func (h *Handlers) handleLink(chatID, userID int64, link string) {
	ack, ackErr := h.api.Send(tgbotapi.NewMessage(chatID, ackText))
	if ackErr == nil {
		defer func() {
			// Best effort: a vanished ack must not break the reply path.
			_, _ = h.api.Request(tgbotapi.NewDeleteMessage(chatID, ack.MessageID))
		}()
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	summary, err := h.summarize.Summarize(ctx, link)
	if err != nil {
		log.Printf("telegram: summarize failed: %v", err)
		_ = h.store.SaveRequest(chatID, userID, link, storage.OutcomeError, time.Now().Unix())
		h.reply(chatID, apiErrorText)
		return
	}

	outcome := storage.OutcomeOK
	if summary == summarizer.FallbackSummary {
		outcome = storage.OutcomeFallback
	}
	_ = h.store.SaveRequest(chatID, userID, link, outcome, time.Now().Unix())

	for _, chunk := range splitSummary(summary, maxMessageLen) {
		h.reply(chatID, chunk)
	}
}

// splitSummary cuts text into consecutive slices of at most max runes, in
// original order. Concatenating the slices reproduces the input; only the
// last slice may be shorter than max.
func splitSummary(text string, max int) []string {
	runes := []rune(text)
	if len(runes) <= max {
		return []string{text}
	}
	var chunks []string
	for start := 0; start < len(runes); start += max {
		end := start + max
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func (h *Handlers) handleStats(chatID int64, days int) {
	since := time.Now().AddDate(0, 0, -days).Unix()
	counts, err := h.store.DailyCounts(since)
	if err != nil {
		h.reply(chatID, "Stats failed: "+err.Error())
		return
	}
	if len(counts) == 0 {
		h.reply(chatID, "No summaries requested in the selected period.")
		return
	}
	img, err := stats.MakeUsageChart(counts, days)
	if err != nil {
		h.reply(chatID, "Stats chart failed: "+err.Error())
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("usage_%dd.png", days),
		Bytes: img,
	})
	photo.Caption = fmt.Sprintf("Summary requests • last %d days", days)
	h.api.Send(photo)
}

func (h *Handlers) handleHelp(chatID int64) {
	help := "Paste a YouTube link (youtube.com or youtu.be) and I'll reply with a bullet-point summary of the video.\n\n" +
		"Commands\n\n" +
		"- /stats [days] - Chart of summary requests per day (default: 7, max: 90)\n" +
		"- /help - Show this message"
	h.reply(chatID, help)
}

func (h *Handlers) reply(chatID int64, text string) {
	h.api.Send(tgbotapi.NewMessage(chatID, text))
}
