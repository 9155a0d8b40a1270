package internal

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven settings of the chat core.
type Config struct {
	AnswerURL      string
	RequestTimeout time.Duration
	ResponseDelay  time.Duration
	DatabasePath   string
}

// LoadConfig reads configuration from the environment, taking a local .env
// file into account when present.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	return Config{
		AnswerURL:      getEnv("LEGALCHAT_ANSWER_URL", "http://localhost:3000/api/chat"),
		RequestTimeout: getEnvSeconds("LEGALCHAT_TIMEOUT_SECONDS", 30*time.Second),
		ResponseDelay:  getEnvMillis("LEGALCHAT_RESPONSE_DELAY_MS", 800*time.Millisecond),
		DatabasePath:   getEnv("LEGALCHAT_DB", defaultDatabasePath()),
	}
}

func defaultDatabasePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "legalchat.db"
	}
	return filepath.Join(homeDir, ".legalchat", "history.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSeconds(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		LogWarn("Ignoring invalid %s=%q", key, value)
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

func getEnvMillis(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	millis, err := strconv.Atoi(value)
	if err != nil || millis < 0 {
		LogWarn("Ignoring invalid %s=%q", key, value)
		return fallback
	}
	return time.Duration(millis) * time.Millisecond
}
