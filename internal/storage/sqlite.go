package storage

import (
	"database/sql"
	// Register sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// Request outcomes recorded per handled link.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

type DB interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	Close() error
}

type Store struct{ db DB }

func OpenSQLite(dsn string) (DB, error) {
	return sql.Open("sqlite3", dsn)
}

func InitSchema(db DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS requests(
		chat_id INTEGER, user_id INTEGER, url TEXT, outcome TEXT, ts INTEGER
	)`)
	return err
}

func NewStore(db DB) *Store { return &Store{db: db} }

func (s *Store) SaveRequest(chatID, userID int64, url, outcome string, ts int64) error {
	_, err := s.db.Exec(`INSERT INTO requests(chat_id,user_id,url,outcome,ts) VALUES(?,?,?,?,?)`,
		chatID, userID, url, outcome, ts)
	return err
}

// DailyCount is one day's worth of summary requests.
type DailyCount struct {
	Day   string // YYYY-MM-DD
	Count int
}

func (s *Store) DailyCounts(since int64) ([]DailyCount, error) {
	rows, err := s.db.Query(`SELECT date(ts,'unixepoch') AS day, COUNT(*) FROM requests
		WHERE ts>=? GROUP BY day ORDER BY day ASC`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DailyCount
	for rows.Next() {
		var dc DailyCount
		if err := rows.Scan(&dc.Day, &dc.Count); err == nil {
			out = append(out, dc)
		}
	}
	return out, nil
}
