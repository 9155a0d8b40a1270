package testutil

import (
	"database/sql"
	"testing"
)

// Fixture history as it would sit in storage: two sessions, most recent
// first, with the second one holding a referral message.
const (
	HistoryKey        = "chatbot-history"
	CurrentSessionKey = "chatbot-current-session"

	FixtureHistoryJSON = `[
	  {
	    "id": "chat_b2",
	    "title": "Eviction notice help",
	    "messages": [
	      {"id": "1", "content": "Hello! How can I help you with your legal questions today?", "isUser": false, "timestamp": "10:00"},
	      {"id": "2", "content": "Eviction notice help", "isUser": true, "timestamp": "10:01"},
	      {"id": "3", "content": "Try lawyer: Jane Doe (Colombo) - https://x/jane", "isUser": false, "timestamp": "10:01",
	       "lawyers": [{"name": "Jane Doe", "place": "Colombo", "link": "https://x/jane"}]}
	    ],
	    "createdAt": "2026-08-02T10:00:00Z",
	    "updatedAt": "2026-08-02T10:01:00Z"
	  },
	  {
	    "id": "chat_a1",
	    "title": "New Chat",
	    "messages": [
	      {"id": "1", "content": "Hello! How can I help you with your legal questions today?", "isUser": false, "timestamp": "09:00"}
	    ],
	    "createdAt": "2026-08-01T09:00:00Z",
	    "updatedAt": "2026-08-01T09:00:00Z"
	  }
	]`

	FixtureCurrentSession = "chat_b2"
)

// SeedHistory loads the fixture history into the chatStore table
func SeedHistory(t *testing.T, db *sql.DB) {
	t.Helper()
	SetKV(t, db, HistoryKey, FixtureHistoryJSON)
	SetKV(t, db, CurrentSessionKey, FixtureCurrentSession)
}

// SeedCorruptHistory loads an unparseable history value so loading has to
// fall back to a fresh first session
func SeedCorruptHistory(t *testing.T, db *sql.DB) {
	t.Helper()
	SetKV(t, db, HistoryKey, "{not json")
	SetKV(t, db, CurrentSessionKey, "chat_gone")
}
