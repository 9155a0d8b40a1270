package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iksnae/legalchat/internal"
)

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  internal.Message
		want []string
	}{
		{
			name: "user message",
			msg:  internal.Message{Content: "Can you recommend a lawyer?", IsUser: true, Timestamp: "09:01"},
			want: []string{"You", "Can you recommend a lawyer?", "09:01"},
		},
		{
			name: "assistant message",
			msg:  internal.Message{Content: "Of course.", Timestamp: "09:02"},
			want: []string{"Assistant", "Of course."},
		},
		{
			name: "error bubble",
			msg:  internal.Message{Content: "Sorry, I encountered an error connecting to the server. Please check your connection and try again.", Error: true},
			want: []string{"Assistant", "error connecting to the server"},
		},
		{
			name: "message with referrals",
			msg: internal.Message{
				Content: "Try lawyer: Jane Doe (Colombo) - https://x/jane",
				Lawyers: []internal.Lawyer{{Name: "Jane Doe", Place: "Colombo", Link: "https://x/jane"}},
			},
			want: []string{"Suggested lawyers:", "Jane Doe", "Colombo", "https://x/jane"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderMessage(buf, tt.msg)

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}
