package internal

import (
	"database/sql"
)

// KeyValueStore is the persistence surface the history store writes
// through to. Implementations must treat a missing key as (value "",
// ok false) rather than an error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// SQLiteKV stores key-value pairs in a single chatStore table.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV creates the chatStore table if it does not exist and returns
// a store over it.
func NewSQLiteKV(db *sql.DB) (*SQLiteKV, error) {
	const schema = `
	CREATE TABLE IF NOT EXISTS chatStore (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return nil, &StorageError{Op: "init", Key: "chatStore", Err: err}
	}
	return &SQLiteKV{db: db}, nil
}

// Get returns the value stored under key, if any.
func (s *SQLiteKV) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM chatStore WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "get", Key: key, Err: err}
	}
	return value, true, nil
}

// Set writes value under key, replacing any previous value.
func (s *SQLiteKV) Set(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO chatStore (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SQLiteKV) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM chatStore WHERE key = ?", key); err != nil {
		return &StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
