package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/iksnae/legalchat/internal"
)

func TestJSONExporter_Export(t *testing.T) {
	tests := []struct {
		name    string
		session *internal.ChatSession
	}{
		{
			name:    "basic session",
			session: internal.CreateTestSession("chat_1", "Tenant rights"),
		},
		{
			name:    "empty message list",
			session: internal.CreateTestSessionWithMessages("chat_2", []internal.Message{}),
		},
		{
			name: "session with referrals and error bubble",
			session: internal.CreateTestSessionWithMessages("chat_3", []internal.Message{
				{
					ID:        "1",
					Content:   "Try lawyer: Jane Doe (Colombo) - https://x/jane",
					Timestamp: "10:00",
					Lawyers: []internal.Lawyer{
						{Name: "Jane Doe", Place: "Colombo", Link: "https://x/jane"},
					},
				},
				{
					ID:        "2",
					Content:   "Sorry, I encountered an error connecting to the server. Please check your connection and try again.",
					Timestamp: "10:01",
					Error:     true,
				},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			exporter := &JSONExporter{}

			if err := exporter.Export(tt.session, &buf); err != nil {
				t.Fatalf("JSONExporter.Export() error = %v", err)
			}

			// Verify the output round-trips
			var session internal.ChatSession
			if err := json.Unmarshal(buf.Bytes(), &session); err != nil {
				t.Fatalf("Output is not valid JSON: %v\nOutput: %s", err, buf.String())
			}
			if session.ID != tt.session.ID {
				t.Errorf("round-tripped id = %q, want %q", session.ID, tt.session.ID)
			}
			if len(session.Messages) != len(tt.session.Messages) {
				t.Errorf("round-tripped %d messages, want %d", len(session.Messages), len(tt.session.Messages))
			}
		})
	}
}
