package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/legalchat/internal"
)

// JSONLExporter exports sessions in JSONL format (one message per line)
type JSONLExporter struct{}

// Export exports a session to JSONL format
func (e *JSONLExporter) Export(session *internal.ChatSession, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, msg := range session.Messages {
		actor := "assistant"
		if msg.IsUser {
			actor = "user"
		}

		// Create message object
		obj := map[string]interface{}{
			"actor":   actor,
			"content": msg.Content,
		}

		if msg.Timestamp != "" {
			obj["timestamp"] = msg.Timestamp
		}
		if msg.Error {
			obj["error"] = true
		}
		if len(msg.Lawyers) > 0 {
			obj["lawyers"] = msg.Lawyers
		}

		// Encode to single line
		if err := enc.Encode(obj); err != nil {
			return fmt.Errorf("failed to encode message: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
