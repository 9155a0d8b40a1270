package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the chatStore
// key-value table for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS chatStore (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create chatStore table: %v", err)
	}

	return db
}

// SetKV writes a raw key-value pair directly into the chatStore table
func SetKV(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	_, err := db.Exec(
		"INSERT INTO chatStore (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		t.Fatalf("Failed to insert %q: %v", key, err)
	}
}

// GetKV reads a value from the chatStore table; missing keys return ""
func GetKV(t *testing.T, db *sql.DB, key string) string {
	t.Helper()
	var value string
	err := db.QueryRow("SELECT value FROM chatStore WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return ""
	}
	if err != nil {
		t.Fatalf("Failed to read %q: %v", key, err)
	}
	return value
}
