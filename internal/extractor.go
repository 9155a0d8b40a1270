package internal

import (
	"regexp"
	"strings"
)

// lawyerMatcher is one recognized referral micro-format. Each pattern
// captures exactly three groups: name, place, link.
type lawyerMatcher struct {
	name string
	re   *regexp.Regexp
}

// lawyerMatchers are tried in order; the first matcher that yields at least
// one referral wins and later formats are not attempted. The formats are
// mutually exclusive per call, never merged.
var lawyerMatchers = []lawyerMatcher{
	{
		// lawyers{name: John Doe, place: New York, link: https://example.com}
		name: "brace",
		re:   regexp.MustCompile(`(?i)lawyers?\s*\{\s*name[:\s]*([^,]+),\s*place[:\s]*([^,]+),\s*link[:\s]*([^}\s]+)\s*\}`),
	},
	{
		// lawyer: John Doe (New York) - https://example.com
		name: "prose",
		re:   regexp.MustCompile(`(?i)lawyer[:\s]*([^(]+)\(([^)]+)\)\s*[-–]\s*(https?://[^\s]+)`),
	},
	{
		// {"name": "John Doe", "place": "New York", "link": "https://example.com"}
		name: "json",
		re:   regexp.MustCompile(`(?i)\{\s*"?name"?[:\s]*"?([^",]+)"?,\s*"?place"?[:\s]*"?([^",]+)"?,\s*"?link"?[:\s]*"?([^"}\s]+)"?\s*\}`),
	},
}

// ExtractLawyers scans assistant text for embedded referral records.
// Matches are collected in order of appearance and deduplicated by name,
// keeping the first occurrence. Text matching no format yields nil, so a
// message without referrals serializes without a lawyers field.
func ExtractLawyers(text string) []Lawyer {
	for _, m := range lawyerMatchers {
		if lawyers := m.scan(text); len(lawyers) > 0 {
			return dedupeLawyers(lawyers)
		}
	}
	return nil
}

func (m lawyerMatcher) scan(text string) []Lawyer {
	matches := m.re.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	lawyers := make([]Lawyer, 0, len(matches))
	for _, groups := range matches {
		lawyers = append(lawyers, Lawyer{
			Name:  strings.TrimSpace(groups[1]),
			Place: strings.TrimSpace(groups[2]),
			Link:  strings.TrimSpace(groups[3]),
		})
	}
	return lawyers
}

// dedupeLawyers removes referrals whose name was already seen.
func dedupeLawyers(lawyers []Lawyer) []Lawyer {
	seen := make(map[string]bool, len(lawyers))
	unique := make([]Lawyer, 0, len(lawyers))
	for _, l := range lawyers {
		if seen[l.Name] {
			continue
		}
		seen[l.Name] = true
		unique = append(unique, l)
	}
	return unique
}
