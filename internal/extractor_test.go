package internal

import (
	"reflect"
	"testing"
)

func TestExtractLawyers_BraceFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Lawyer
	}{
		{
			name: "single match",
			text: "lawyers{name: Sarah Johnson, place: New York NY, link: https://x/sarah}",
			want: []Lawyer{
				{Name: "Sarah Johnson", Place: "New York NY", Link: "https://x/sarah"},
			},
		},
		{
			name: "singular keyword",
			text: "lawyer{name: John Doe, place: Boston, link: https://x/john}",
			want: []Lawyer{
				{Name: "John Doe", Place: "Boston", Link: "https://x/john"},
			},
		},
		{
			name: "case-insensitive keyword",
			text: "LAWYERS{name: Sarah Johnson, place: New York NY, link: https://x/sarah}",
			want: []Lawyer{
				{Name: "Sarah Johnson", Place: "New York NY", Link: "https://x/sarah"},
			},
		},
		{
			name: "embedded in prose",
			text: "Based on your issue I suggest lawyers{name: Ann Lee, place: Kandy, link: https://x/ann} for tenancy matters.",
			want: []Lawyer{
				{Name: "Ann Lee", Place: "Kandy", Link: "https://x/ann"},
			},
		},
		{
			name: "multiple matches in order of appearance",
			text: "lawyers{name: A One, place: X, link: https://x/a} and lawyers{name: B Two, place: Y, link: https://x/b}",
			want: []Lawyer{
				{Name: "A One", Place: "X", Link: "https://x/a"},
				{Name: "B Two", Place: "Y", Link: "https://x/b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLawyers(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLawyers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractLawyers_ProseFormat(t *testing.T) {
	got := ExtractLawyers("lawyer: Emily Rodriguez (Chicago IL) - https://x/emily")
	want := []Lawyer{
		{Name: "Emily Rodriguez", Place: "Chicago IL", Link: "https://x/emily"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLawyers() = %v, want %v", got, want)
	}
}

func TestExtractLawyers_LooseJSONFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Lawyer
	}{
		{
			name: "quoted keys and values",
			text: `{"name": "Priya Perera", "place": "Colombo", "link": "https://x/priya"}`,
			want: []Lawyer{
				{Name: "Priya Perera", Place: "Colombo", Link: "https://x/priya"},
			},
		},
		{
			name: "unquoted keys",
			text: "{name: Priya Perera, place: Colombo, link: https://x/priya}",
			want: []Lawyer{
				{Name: "Priya Perera", Place: "Colombo", Link: "https://x/priya"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLawyers(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLawyers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractLawyers_FormatPriority(t *testing.T) {
	// When the brace format matches, later formats must not contribute,
	// even though the prose record here is well formed.
	text := "lawyers{name: A One, place: X, link: https://x/a} also lawyer: B Two (Y) - https://x/b"
	got := ExtractLawyers(text)
	want := []Lawyer{
		{Name: "A One", Place: "X", Link: "https://x/a"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLawyers() = %v, want %v", got, want)
	}
}

func TestExtractLawyers_Dedup(t *testing.T) {
	// Same name, different place and link: only the first occurrence stays.
	text := "lawyers{name: Jane Doe, place: Colombo, link: https://x/jane1} " +
		"lawyers{name: Jane Doe, place: Galle, link: https://x/jane2}"
	got := ExtractLawyers(text)
	want := []Lawyer{
		{Name: "Jane Doe", Place: "Colombo", Link: "https://x/jane1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLawyers() = %v, want %v", got, want)
	}
}

func TestExtractLawyers_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain prose", text: "Please consult a qualified attorney."},
		{name: "empty input", text: ""},
		{name: "keyword without record", text: "You may need a lawyer for this."},
		{name: "braces without fields", text: "lawyers{--}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLawyers(tt.text); got != nil {
				t.Errorf("ExtractLawyers() = %v, want nil", got)
			}
		})
	}
}

func TestExtractLawyers_Idempotent(t *testing.T) {
	text := "Try lawyer: Jane Doe (Colombo) - https://x/jane"
	first := ExtractLawyers(text)
	second := ExtractLawyers(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ExtractLawyers() not idempotent: %v vs %v", first, second)
	}
}
