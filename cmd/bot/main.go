package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"telegramBotSummary/internal/config"
	"telegramBotSummary/internal/server"
	"telegramBotSummary/internal/storage"
	"telegramBotSummary/internal/summarizer"
	"telegramBotSummary/internal/telegram"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// Ensure parent directory for the DB exists
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	db, err := storage.OpenSQLite("file:" + cfg.DBPath + "?_fk=1")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	log.Printf("db: opened sqlite at %s", cfg.DBPath)
	if err := storage.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	log.Println("db: schema ensured (requests table)")

	sum := summarizer.FromConfig(cfg)
	log.Printf("summarizer: provider %s, model %s", cfg.Provider, cfg.Model)

	tg, err := telegram.NewBot(cfg.TelegramToken, storage.NewStore(db), sum)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		addr := ":" + cfg.Port
		log.Println("http: health endpoint on", addr)
		if err := server.ListenAndServe(addr, server.NewHTTPMux()); err != nil {
			log.Println("server error:", err)
		}
	}()

	tg.Run()
}
