package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SignalBoard/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the history command read while watch mode writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			symbol      TEXT NOT NULL,
			provider    TEXT,
			range_key   TEXT,
			horizon     INTEGER,
			bar_date    TEXT,
			close       REAL,
			rsi14       REAL,
			macd        REAL,
			macd_signal REAL,
			sma20       REAL,
			buy_count   INTEGER,
			sell_count  INTEGER,
			signal      TEXT,
			complete_rows INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_symbol_ts ON predictions(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS failures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT,
			provider  TEXT,
			range_key TEXT,
			kind      TEXT,
			message   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_ts ON failures(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPrediction(report *model.Report) error {
	if report == nil || report.Prediction == nil {
		return fmt.Errorf("record prediction: empty report")
	}
	rec := NewPredictionRecord(report)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO predictions
		(timestamp, symbol, provider, range_key, horizon, bar_date,
		 close, rsi14, macd, macd_signal, sma20,
		 buy_count, sell_count, signal, complete_rows)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.Timestamp.Unix(), rec.Symbol, rec.Provider, rec.Range, rec.Horizon, rec.BarDate.Format(model.DateLayout),
		rec.Close, rec.RSI14, rec.MACD, rec.MACDSignal, rec.SMA20,
		rec.BuyCount, rec.SellCount, string(rec.Signal), rec.Rows,
	)
	return err
}

func (r *SQLiteRecorder) RecordFailure(evt *FailureEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO failures
		(timestamp, symbol, provider, range_key, kind, message)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Symbol, evt.Provider, evt.Range, evt.Kind, evt.Message,
	)
	return err
}

// RecentPredictions returns up to limit predictions for symbol, newest first.
func (r *SQLiteRecorder) RecentPredictions(symbol string, limit int) ([]PredictionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, symbol, provider, range_key, horizon, bar_date,
			close, rsi14, macd, macd_signal, sma20, buy_count, sell_count, signal, complete_rows
		FROM predictions WHERE symbol = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var out []PredictionRecord
	for rows.Next() {
		var (
			rec     PredictionRecord
			ts      int64
			barDate string
			signal  string
		)
		if err := rows.Scan(&rec.ID, &ts, &rec.Symbol, &rec.Provider, &rec.Range, &rec.Horizon, &barDate,
			&rec.Close, &rec.RSI14, &rec.MACD, &rec.MACDSignal, &rec.SMA20,
			&rec.BuyCount, &rec.SellCount, &signal, &rec.Rows); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		rec.Timestamp = time.Unix(ts, 0)
		rec.Signal = model.Signal(signal)
		if t, err := time.Parse(model.DateLayout, barDate); err == nil {
			rec.BarDate = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
