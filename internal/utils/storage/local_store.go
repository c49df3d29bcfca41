package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Storage keys, one record per collection.
const (
	KeyProducts     = "despensa_products"
	KeyPantry       = "despensa_pantry"
	KeyShoppingList = "despensa_shopping_list"
)

// LocalStore is a durable key-value store backed by a single sqlite file.
// Each key holds the JSON-serialized form of one collection.
type LocalStore struct {
	db *sql.DB
}

func NewLocalStore(path string) (*LocalStore, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS storage (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage table: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Get returns the raw value for key. The second return is false when the key
// has never been written.
func (s *LocalStore) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

// Put writes value under key, replacing any previous value.
func (s *LocalStore) Put(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	return s.db.Close()
}
