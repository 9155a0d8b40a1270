package internal

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is the sentinel title a session carries until the first
	// user message names it (or the user renames it).
	DefaultTitle = "New Chat"

	// WelcomeText opens every freshly created session.
	WelcomeText = "Hello! How can I help you with your legal questions today?"

	// titleMaxLen is the longest auto-derived title; longer first messages
	// are cut to titleTruncLen runes plus an ellipsis marker.
	titleMaxLen   = 50
	titleTruncLen = 47
)

// Lawyer is a professional referral extracted from assistant text.
// Two referrals are considered the same when their names match exactly.
type Lawyer struct {
	Name  string `json:"name"`
	Place string `json:"place"`
	Link  string `json:"link"`
}

// Message is a single chat bubble. Immutable once created; Lawyers is nil
// for messages that carry no referrals, so the field is absent from the
// serialized form rather than an empty list.
type Message struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	IsUser    bool     `json:"isUser"`
	Timestamp string   `json:"timestamp"`
	Error     bool     `json:"error,omitempty"`
	Lawyers   []Lawyer `json:"lawyers,omitempty"`
}

// NewMessage describes a message to append to a session. ID and Timestamp
// are assigned by the store at append time.
type NewMessage struct {
	Content string
	IsUser  bool
	Error   bool
	Lawyers []Lawyer
}

// ChatSession is one persisted conversation thread.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// NewChatSession creates a session carrying the welcome message.
func NewChatSession() *ChatSession {
	now := time.Now().UTC().Format(time.RFC3339)
	return &ChatSession{
		ID:    newSessionID(),
		Title: DefaultTitle,
		Messages: []Message{
			{
				ID:        newMessageID(),
				Content:   WelcomeText,
				IsUser:    false,
				Timestamp: displayTime(),
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// newSessionID returns an opaque session identifier.
func newSessionID() string {
	return "chat_" + uuid.NewString()
}

// newMessageID returns a time-ordered message identifier so that ids within
// a session increase with creation order.
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// displayTime formats the current wall clock the way the UI renders
// message timestamps.
func displayTime() string {
	return time.Now().Format("15:04")
}

// deriveTitle turns the first user message into a session title,
// truncating long messages with an ellipsis marker.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleMaxLen {
		return content
	}
	return string(runes[:titleTruncLen]) + "..."
}
