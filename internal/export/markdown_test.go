package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/legalchat/internal"
)

func TestMarkdownExporter_Export(t *testing.T) {
	session := internal.CreateTestSessionWithMessages("chat_1", []internal.Message{
		{ID: "1", Content: "Hello! How can I help you with your legal questions today?", Timestamp: "09:00"},
		{ID: "2", Content: "Can you recommend a lawyer?", IsUser: true, Timestamp: "09:01"},
		{
			ID:        "3",
			Content:   "Try lawyer: Jane Doe (Colombo) - https://x/jane",
			Timestamp: "09:01",
			Lawyers:   []internal.Lawyer{{Name: "Jane Doe", Place: "Colombo", Link: "https://x/jane"}},
		},
	})
	session.Title = "Finding a lawyer"

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(session, &buf); err != nil {
		t.Fatalf("MarkdownExporter.Export() error = %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"# Finding a lawyer",
		"**Session:** chat_1",
		"**You:** (09:01)",
		"**Assistant:** (09:00)",
		"Suggested lawyers:",
		"[Jane Doe](https://x/jane)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold escaped",
			in:   "this is **bold**",
			want: "this is \\*\\*bold\\*\\*",
		},
		{
			name: "code fences preserved",
			in:   "```\n**not escaped**\n```",
			want: "```\n**not escaped**\n```",
		},
		{
			name: "plain text unchanged",
			in:   "nothing special",
			want: "nothing special",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeMarkdown(tt.in); got != tt.want {
				t.Errorf("escapeMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}
