package progress

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// storeKey is the single-row key the record is persisted under.
const storeKey = "safepath-game-store"

// SQLitePersister stores the progress record as one JSON row in a
// SQLite database.
type SQLitePersister struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the progress database at path
// and ensures the schema exists.
func OpenSQLite(path string) (*SQLitePersister, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(time.Minute)

	const schema = `
	CREATE TABLE IF NOT EXISTS progress (
		key        TEXT PRIMARY KEY,
		data       TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLitePersister{db: db}, nil
}

// Load reads the stored record. ok is false when no record exists yet.
func (p *SQLitePersister) Load() (Record, bool, error) {
	var data string
	err := p.db.QueryRow(`SELECT data FROM progress WHERE key = ?`, storeKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to load progress: %w", err)
	}
	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return Record{}, false, fmt.Errorf("failed to decode progress: %w", err)
	}
	return rec, true, nil
}

// Save upserts the record.
func (p *SQLitePersister) Save(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	_, err = p.db.Exec(`
		INSERT INTO progress (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		storeKey, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}
