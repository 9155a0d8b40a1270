package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// StubAnswerServer stands in for the remote answer endpoint. It records the
// last request body it saw so tests can assert on the wire format.
type StubAnswerServer struct {
	*httptest.Server

	LastChatID string
	LastQuery  string
}

// NewStubAnswerServer returns a server answering every POST with the given
// answer text.
func NewStubAnswerServer(t *testing.T, answer string) *StubAnswerServer {
	t.Helper()
	return newStub(t, func(w http.ResponseWriter, chatID string) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"chat_id": chatID,
			"answer":  answer,
		})
	})
}

// NewEmptyAnswerServer returns a server whose responses carry no answer
// field at all.
func NewEmptyAnswerServer(t *testing.T) *StubAnswerServer {
	t.Helper()
	return newStub(t, func(w http.ResponseWriter, chatID string) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"chat_id": chatID,
		})
	})
}

// NewFailingAnswerServer returns a server that always responds with the
// given HTTP status and an empty body.
func NewFailingAnswerServer(t *testing.T, status int) *StubAnswerServer {
	t.Helper()
	stub := &StubAnswerServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(stub.Close)
	return stub
}

func newStub(t *testing.T, respond func(w http.ResponseWriter, chatID string)) *StubAnswerServer {
	t.Helper()
	stub := &StubAnswerServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			ChatID string `json:"chat_id"`
			Query  string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		stub.LastChatID = body.ChatID
		stub.LastQuery = body.Query

		w.Header().Set("Content-Type", "application/json")
		respond(w, body.ChatID)
	}))
	t.Cleanup(stub.Close)
	return stub
}
