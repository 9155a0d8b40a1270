package internal

import (
	"time"
)

// CreateTestSession creates a session with a short user/assistant exchange
func CreateTestSession(id, title string) *ChatSession {
	now := time.Now().UTC().Format(time.RFC3339)
	return &ChatSession{
		ID:    id,
		Title: title,
		Messages: []Message{
			{
				ID:        "1",
				Content:   WelcomeText,
				IsUser:    false,
				Timestamp: "09:00",
			},
			{
				ID:        "2",
				Content:   "What are my tenant rights?",
				IsUser:    true,
				Timestamp: "09:01",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestSessionWithMessages creates a session with custom messages
func CreateTestSessionWithMessages(id string, messages []Message) *ChatSession {
	now := time.Now().UTC().Format(time.RFC3339)
	return &ChatSession{
		ID:        id,
		Title:     DefaultTitle,
		Messages:  messages,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
