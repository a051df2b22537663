package config

import (
	"log"
	"os"
)

type Config struct {
	TelegramToken string
	Provider      string // "gemini" (default) or "openai"
	GeminiAPIKey  string
	GeminiBaseURL string
	OpenAIKey     string
	Model         string
	Port          string
	DBPath        string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	cfg := Config{
		TelegramToken: mustEnv("TELEGRAM_BOT_TOKEN"),
		Provider:      envOr("SUMMARIZER_PROVIDER", "gemini"),
		Port:          envOr("PORT", "9095"),
		DBPath:        envOr("DB_PATH", "/app/data/bot.db"),
	}
	switch cfg.Provider {
	case "gemini":
		cfg.GeminiAPIKey = mustEnv("GEMINI_API_KEY")
		cfg.GeminiBaseURL = envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
		cfg.Model = envOr("GEMINI_MODEL", "gemini-pro")
	case "openai":
		cfg.OpenAIKey = mustEnv("OPENAI_API_KEY")
		cfg.Model = envOr("OPENAI_MODEL", "gpt-4")
	default:
		log.Fatalf("unknown SUMMARIZER_PROVIDER %q (want gemini or openai)", cfg.Provider)
	}
	return cfg
}
