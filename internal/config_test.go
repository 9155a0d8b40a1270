package internal

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LEGALCHAT_ANSWER_URL", "")
	t.Setenv("LEGALCHAT_TIMEOUT_SECONDS", "")
	t.Setenv("LEGALCHAT_RESPONSE_DELAY_MS", "")
	t.Setenv("LEGALCHAT_DB", "")

	cfg := LoadConfig()

	if cfg.AnswerURL != "http://localhost:3000/api/chat" {
		t.Errorf("AnswerURL = %q", cfg.AnswerURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.ResponseDelay != 800*time.Millisecond {
		t.Errorf("ResponseDelay = %v", cfg.ResponseDelay)
	}
	if cfg.DatabasePath == "" {
		t.Error("DatabasePath must have a default")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LEGALCHAT_ANSWER_URL", "http://example.test/chat")
	t.Setenv("LEGALCHAT_TIMEOUT_SECONDS", "5")
	t.Setenv("LEGALCHAT_RESPONSE_DELAY_MS", "0")
	t.Setenv("LEGALCHAT_DB", "/tmp/history.db")

	cfg := LoadConfig()

	if cfg.AnswerURL != "http://example.test/chat" {
		t.Errorf("AnswerURL = %q", cfg.AnswerURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.ResponseDelay != 0 {
		t.Errorf("ResponseDelay = %v, want 0", cfg.ResponseDelay)
	}
	if cfg.DatabasePath != "/tmp/history.db" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LEGALCHAT_TIMEOUT_SECONDS", "soon")
	t.Setenv("LEGALCHAT_RESPONSE_DELAY_MS", "-5")

	cfg := LoadConfig()

	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v, want default", cfg.RequestTimeout)
	}
	if cfg.ResponseDelay != 800*time.Millisecond {
		t.Errorf("ResponseDelay = %v, want default", cfg.ResponseDelay)
	}
}
