package internal

import (
	"encoding/json"
	"sync"
	"time"
)

// Storage keys for the two persisted values: the serialized session list
// (most-recent-first) and the bare current-session id.
const (
	historyKey        = "chatbot-history"
	currentSessionKey = "chatbot-current-session"
)

// HistoryStore owns every chat session and the current-session pointer.
// Each mutation is written through to the key-value surface immediately and
// announced to subscribers. The store never ends up empty: deleting the
// last session, or failing to decode persisted state, reinitializes a fresh
// session with a welcome message.
//
// All methods are safe for concurrent use, though the intended caller is a
// single UI loop.
type HistoryStore struct {
	mu        sync.Mutex
	kv        KeyValueStore
	sessions  []*ChatSession
	currentID string
	loading   bool

	subs    map[int]func()
	nextSub int
}

// NewHistoryStore loads previously persisted sessions from kv, or starts
// with a single fresh session when nothing (or something unreadable) is
// stored. Construction never fails; corrupt local state is non-fatal.
func NewHistoryStore(kv KeyValueStore) *HistoryStore {
	h := &HistoryStore{
		kv:   kv,
		subs: make(map[int]func()),
	}
	h.mu.Lock()
	h.loadLocked()
	h.mu.Unlock()
	return h
}

// loadLocked restores persisted state, falling back to the first-session
// initialization path on any failure.
func (h *HistoryStore) loadLocked() {
	raw, ok, err := h.kv.Get(historyKey)
	if err != nil {
		LogWarn("Failed to read persisted history: %v", err)
	}
	if !ok || raw == "" {
		h.initFirstSessionLocked()
		return
	}

	var sessions []*ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		LogWarn("Discarding corrupt history: %v", &ParseError{Key: historyKey, Err: err})
		h.initFirstSessionLocked()
		return
	}
	if len(sessions) == 0 {
		h.initFirstSessionLocked()
		return
	}

	h.sessions = sessions
	currentID, ok, err := h.kv.Get(currentSessionKey)
	if err != nil {
		LogWarn("Failed to read current session pointer: %v", err)
	}
	if !ok || h.findLocked(currentID) == nil {
		// Pointer must reference an existing session.
		currentID = sessions[0].ID
	}
	h.currentID = currentID
}

// initFirstSessionLocked replaces all state with a single new session and
// persists the result.
func (h *HistoryStore) initFirstSessionLocked() {
	session := NewChatSession()
	h.sessions = []*ChatSession{session}
	h.currentID = session.ID
	h.persistLocked()
}

// persistLocked writes both storage keys. Persistence failures are logged
// and swallowed; in-memory state stays authoritative for this process.
func (h *HistoryStore) persistLocked() {
	raw, err := json.Marshal(h.sessions)
	if err != nil {
		LogError("Failed to serialize history: %v", err)
		return
	}
	if err := h.kv.Set(historyKey, string(raw)); err != nil {
		LogError("Failed to persist history: %v", err)
	}
	if err := h.kv.Set(currentSessionKey, h.currentID); err != nil {
		LogError("Failed to persist current session pointer: %v", err)
	}
}

func (h *HistoryStore) findLocked(sessionID string) *ChatSession {
	for _, s := range h.sessions {
		if s.ID == sessionID {
			return s
		}
	}
	return nil
}

// CreateSession builds a new session with a welcome message, places it
// first in the list, makes it current, and returns its id.
func (h *HistoryStore) CreateSession() string {
	h.mu.Lock()
	session := NewChatSession()
	h.sessions = append([]*ChatSession{session}, h.sessions...)
	h.currentID = session.ID
	h.persistLocked()
	h.mu.Unlock()

	h.notify()
	return session.ID
}

// SwitchTo repoints the current session. Unknown ids are ignored.
func (h *HistoryStore) SwitchTo(sessionID string) {
	h.mu.Lock()
	if h.findLocked(sessionID) == nil {
		h.mu.Unlock()
		return
	}
	h.currentID = sessionID
	h.persistLocked()
	h.mu.Unlock()

	h.notify()
}

// AppendMessage appends a message to the current session and returns the
// new message id, or "" when there is no current session.
func (h *HistoryStore) AppendMessage(msg NewMessage) string {
	h.mu.Lock()
	id := h.appendLocked(h.currentID, msg)
	h.mu.Unlock()

	if id != "" {
		h.notify()
	}
	return id
}

// AppendMessageTo appends a message to a specific session, which need not
// be current. The chat controller uses this so that a response lands in
// the session that was current when its request was sent, even if the user
// has switched sessions since. Unknown ids are ignored.
func (h *HistoryStore) AppendMessageTo(sessionID string, msg NewMessage) string {
	h.mu.Lock()
	id := h.appendLocked(sessionID, msg)
	h.mu.Unlock()

	if id != "" {
		h.notify()
	}
	return id
}

func (h *HistoryStore) appendLocked(sessionID string, msg NewMessage) string {
	session := h.findLocked(sessionID)
	if session == nil {
		return ""
	}

	message := Message{
		ID:        newMessageID(),
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		Timestamp: displayTime(),
		Error:     msg.Error,
		Lawyers:   msg.Lawyers,
	}
	session.Messages = append(session.Messages, message)
	session.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	// Auto-title fires only while the title still equals the sentinel, so a
	// user-issued rename is terminal.
	if msg.IsUser && session.Title == DefaultTitle {
		session.Title = deriveTitle(msg.Content)
	}

	h.persistLocked()
	return message.ID
}

// RenameSession overwrites a session's title. Unknown ids are ignored.
func (h *HistoryStore) RenameSession(sessionID, newTitle string) {
	h.mu.Lock()
	session := h.findLocked(sessionID)
	if session == nil {
		h.mu.Unlock()
		return
	}
	session.Title = newTitle
	session.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	h.persistLocked()
	h.mu.Unlock()

	h.notify()
}

// DeleteSession removes a session. When the current session is deleted the
// pointer moves to the next session in most-recent-first order; deleting
// the last remaining session synthesizes a fresh replacement.
func (h *HistoryStore) DeleteSession(sessionID string) {
	h.mu.Lock()
	if h.findLocked(sessionID) == nil {
		h.mu.Unlock()
		return
	}

	remaining := h.sessions[:0]
	for _, s := range h.sessions {
		if s.ID != sessionID {
			remaining = append(remaining, s)
		}
	}
	h.sessions = remaining

	if h.currentID == sessionID {
		if len(h.sessions) > 0 {
			h.currentID = h.sessions[0].ID
		} else {
			h.initFirstSessionLocked()
			h.mu.Unlock()
			h.notify()
			return
		}
	}
	h.persistLocked()
	h.mu.Unlock()

	h.notify()
}

// ClearAll wipes persisted state and reinitializes with one fresh session.
func (h *HistoryStore) ClearAll() {
	h.mu.Lock()
	if err := h.kv.Delete(historyKey); err != nil {
		LogWarn("Failed to clear history: %v", err)
	}
	if err := h.kv.Delete(currentSessionKey); err != nil {
		LogWarn("Failed to clear current session pointer: %v", err)
	}
	h.initFirstSessionLocked()
	h.mu.Unlock()

	h.notify()
}

// SetLoading flips the transient in-flight flag. It is never persisted.
func (h *HistoryStore) SetLoading(loading bool) {
	h.mu.Lock()
	h.loading = loading
	h.mu.Unlock()

	h.notify()
}

// tryBeginLoading atomically sets the loading flag, reporting false when a
// request is already in flight. This is the controller's re-entrancy guard.
func (h *HistoryStore) tryBeginLoading() bool {
	h.mu.Lock()
	if h.loading {
		h.mu.Unlock()
		return false
	}
	h.loading = true
	h.mu.Unlock()

	h.notify()
	return true
}

// IsLoading reports whether a remote call is in flight.
func (h *HistoryStore) IsLoading() bool {
	h.mu.Lock()
	loading := h.loading
	h.mu.Unlock()
	return loading
}

// Sessions returns the session list in most-recent-first order. The slice
// is a copy; the sessions themselves are shared and must not be mutated by
// callers.
func (h *HistoryStore) Sessions() []*ChatSession {
	h.mu.Lock()
	sessions := make([]*ChatSession, len(h.sessions))
	copy(sessions, h.sessions)
	h.mu.Unlock()
	return sessions
}

// CurrentSessionID returns the current session id, or "" when the store
// holds no sessions.
func (h *HistoryStore) CurrentSessionID() string {
	h.mu.Lock()
	id := h.currentID
	h.mu.Unlock()
	return id
}

// CurrentSession returns the current session, or nil when there is none.
func (h *HistoryStore) CurrentSession() *ChatSession {
	h.mu.Lock()
	session := h.findLocked(h.currentID)
	h.mu.Unlock()
	return session
}

// Session returns the session with the given id, or nil.
func (h *HistoryStore) Session(sessionID string) *ChatSession {
	h.mu.Lock()
	session := h.findLocked(sessionID)
	h.mu.Unlock()
	return session
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function. Callbacks run outside the store's lock, in no
// particular order.
func (h *HistoryStore) Subscribe(fn func()) func() {
	h.mu.Lock()
	id := h.nextSub
	h.nextSub++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

func (h *HistoryStore) notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
