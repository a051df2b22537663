package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegramBotSummary/internal/storage"
	"telegramBotSummary/internal/summarizer"
)

type fakeAPI struct {
	sent       []tgbotapi.Chattable
	requests   []tgbotapi.Chattable
	requestErr error
	nextID     int
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	f.nextID++
	return tgbotapi.Message{MessageID: f.nextID}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	if f.requestErr != nil {
		return nil, f.requestErr
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// sentTexts returns the Text of every plain message sent, in order.
func (f *fakeAPI) sentTexts() []string {
	var out []string
	for _, c := range f.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, msg.Text)
		}
	}
	return out
}

type savedRequest struct {
	chatID, userID int64
	url, outcome   string
}

type fakeStore struct {
	saved  []savedRequest
	counts []storage.DailyCount
}

func (f *fakeStore) SaveRequest(chatID, userID int64, url, outcome string, _ int64) error {
	f.saved = append(f.saved, savedRequest{chatID, userID, url, outcome})
	return nil
}

func (f *fakeStore) DailyCounts(_ int64) ([]storage.DailyCount, error) {
	return f.counts, nil
}

type stubSummarizer struct {
	out string
	err error
}

func (s stubSummarizer) Summarize(context.Context, string) (string, error) {
	return s.out, s.err
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 100,
		From:      &tgbotapi.User{ID: 42},
		Chat:      &tgbotapi.Chat{ID: 99},
		Text:      text,
	}
}

func commandMessage(text string) *tgbotapi.Message {
	m := textMessage(text)
	m.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: len(strings.Fields(text)[0])},
	}
	return m
}

func TestHandleMessageNoLink(t *testing.T) {
	api := &fakeAPI{}
	store := &fakeStore{}
	h := NewHandlers(api, store, stubSummarizer{out: "unused"})

	for _, text := range []string{"", "   ", "hello", "see https://example.com"} {
		h.HandleMessage(textMessage(text))
	}

	assert.Empty(t, api.sent, "no reply for messages without a link")
	assert.Empty(t, api.requests)
	assert.Empty(t, store.saved)
}

func TestHandleMessageSingleReply(t *testing.T) {
	api := &fakeAPI{}
	store := &fakeStore{}
	h := NewHandlers(api, store, stubSummarizer{out: "- point one\n- point two"})

	h.HandleMessage(textMessage("check this out https://youtu.be/abc123 thanks"))

	texts := api.sentTexts()
	require.Len(t, texts, 2)
	assert.Equal(t, ackText, texts[0])
	assert.Equal(t, "- point one\n- point two", texts[1])

	// ack (first send) is deleted afterwards
	require.Len(t, api.requests, 1)
	del, ok := api.requests[0].(tgbotapi.DeleteMessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(99), del.ChatID)
	assert.Equal(t, 1, del.MessageID)

	require.Len(t, store.saved, 1)
	assert.Equal(t, savedRequest{99, 42, "https://youtu.be/abc123", storage.OutcomeOK}, store.saved[0])
}

func TestHandleMessageLongSummary(t *testing.T) {
	long := strings.Repeat("x", 8500)
	api := &fakeAPI{}
	h := NewHandlers(api, &fakeStore{}, stubSummarizer{out: long})

	h.HandleMessage(textMessage("https://youtu.be/abc123"))

	texts := api.sentTexts()
	require.Len(t, texts, 4, "ack plus three chunks")
	assert.Equal(t, ackText, texts[0])
	assert.Len(t, texts[1], 4000)
	assert.Len(t, texts[2], 4000)
	assert.Len(t, texts[3], 500)
	assert.Equal(t, long, texts[1]+texts[2]+texts[3])
	require.Len(t, api.requests, 1, "ack deleted after multi-chunk reply")
}

func TestHandleMessageSummarizerError(t *testing.T) {
	api := &fakeAPI{}
	store := &fakeStore{}
	h := NewHandlers(api, store, stubSummarizer{err: errors.New("boom")})

	h.HandleMessage(textMessage("https://youtu.be/abc123"))

	texts := api.sentTexts()
	require.Len(t, texts, 2)
	assert.Equal(t, ackText, texts[0])
	assert.Equal(t, apiErrorText, texts[1])

	require.Len(t, api.requests, 1, "ack deletion still attempted on error")
	require.Len(t, store.saved, 1)
	assert.Equal(t, storage.OutcomeError, store.saved[0].outcome)
}

func TestHandleMessageDeleteFailureSwallowed(t *testing.T) {
	api := &fakeAPI{requestErr: errors.New("message to delete not found")}
	h := NewHandlers(api, &fakeStore{}, stubSummarizer{out: "short summary"})

	assert.NotPanics(t, func() {
		h.HandleMessage(textMessage("https://youtu.be/abc123"))
	})

	texts := api.sentTexts()
	require.Len(t, texts, 2, "delete failure never reaches the user")
	assert.Equal(t, "short summary", texts[1])
}

func TestHandleMessageFallbackOutcome(t *testing.T) {
	store := &fakeStore{}
	h := NewHandlers(&fakeAPI{}, store, stubSummarizer{out: summarizer.FallbackSummary})

	h.HandleMessage(textMessage("https://youtu.be/abc123"))

	require.Len(t, store.saved, 1)
	assert.Equal(t, storage.OutcomeFallback, store.saved[0].outcome)
}

func TestHandleMessageCommands(t *testing.T) {
	api := &fakeAPI{}
	h := NewHandlers(api, &fakeStore{}, stubSummarizer{out: "unused"})

	h.HandleMessage(commandMessage("/help"))
	texts := api.sentTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "YouTube link")

	// unknown commands are silent, even with a link in the arguments
	api.sent = nil
	h.HandleMessage(commandMessage("/summarize https://youtu.be/abc123"))
	assert.Empty(t, api.sent)
}

func TestHandleStats(t *testing.T) {
	api := &fakeAPI{}
	store := &fakeStore{counts: []storage.DailyCount{
		{Day: "2026-08-29", Count: 3},
		{Day: "2026-08-30", Count: 1},
	}}
	h := NewHandlers(api, store, stubSummarizer{})

	h.HandleMessage(commandMessage("/stats 7"))

	require.Len(t, api.sent, 1)
	photo, ok := api.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok, "stats reply is a chart photo")
	assert.Contains(t, photo.Caption, "7 days")
}

func TestHandleStatsNoData(t *testing.T) {
	api := &fakeAPI{}
	h := NewHandlers(api, &fakeStore{}, stubSummarizer{})

	h.HandleMessage(commandMessage("/stats"))

	texts := api.sentTexts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "No summaries")
}

func TestSplitSummary(t *testing.T) {
	tests := []struct {
		name     string
		len      int
		wantLens []int
	}{
		{name: "empty", len: 0, wantLens: []int{0}},
		{name: "short", len: 55, wantLens: []int{55}},
		{name: "exactly max", len: 4000, wantLens: []int{4000}},
		{name: "one over", len: 4001, wantLens: []int{4000, 1}},
		{name: "two full plus remainder", len: 8500, wantLens: []int{4000, 4000, 500}},
		{name: "exact multiple", len: 8000, wantLens: []int{4000, 4000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.Repeat("a", tt.len)
			chunks := splitSummary(in, maxMessageLen)
			require.Len(t, chunks, len(tt.wantLens))
			for i, want := range tt.wantLens {
				assert.Len(t, chunks[i], want)
			}
			assert.Equal(t, in, strings.Join(chunks, ""), "concatenation reproduces input")
		})
	}
}

func TestSplitSummaryMultibyte(t *testing.T) {
	in := strings.Repeat("é", 4500)
	chunks := splitSummary(in, maxMessageLen)
	require.Len(t, chunks, 2)
	assert.Equal(t, 4000, len([]rune(chunks[0])))
	assert.Equal(t, 500, len([]rune(chunks[1])))
	assert.Equal(t, in, strings.Join(chunks, ""))
}
