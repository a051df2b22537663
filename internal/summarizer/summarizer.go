// Package summarizer turns a YouTube link into summary text via a
// generative-AI provider.
package summarizer

import (
	"context"

	"telegramBotSummary/internal/config"
)

// FallbackSummary is returned when the provider answers successfully but
// with a body no summary can be pulled out of.
const FallbackSummary = "Sorry, something went wrong processing the summary."

// Summarizer produces a summary for a single video link. This is an
// interface so handlers can be tested against a mock.
type Summarizer interface {
	Summarize(ctx context.Context, videoURL string) (string, error)
}

// FromConfig selects the provider implementation. Gemini is the default.
func FromConfig(cfg config.Config) Summarizer {
	if cfg.Provider == "openai" {
		return NewOpenAI(cfg.OpenAIKey, cfg.Model)
	}
	return NewGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.Model)
}
