package orchestrator

import (
	"strings"
	"unicode/utf8"

	"token-promo-lab/internal/brief"
)

// Tagline acceptance window (exclusive lower, inclusive upper), in characters.
const (
	taglineMinLen = 10
	taglineMaxLen = 80
)

// Call-to-action acceptance window (exclusive lower, inclusive upper).
const (
	ctaMinLen = 5
	ctaMaxLen = 50
)

// extractTagline takes the first sentence of the first generated post as the
// banner tagline when its length is in (10,80], else a templated fallback.
func extractTagline(posts []string, ticker string) string {
	if len(posts) > 0 {
		sentence := brief.FirstSentence(posts[0])
		if n := utf8.RuneCountInString(sentence); n > taglineMinLen && n <= taglineMaxLen {
			return sentence
		}
	}
	return "$" + ticker + " — The Next Chapter"
}

// extractCallToAction takes the first line-like fragment of the first post
// with length in (5,50], else the bare ticker tag.
func extractCallToAction(posts []string, ticker string) string {
	if len(posts) > 0 {
		for _, line := range strings.Split(posts[0], "\n") {
			line = strings.TrimSpace(line)
			if n := utf8.RuneCountInString(line); n > ctaMinLen && n <= ctaMaxLen {
				return line
			}
		}
	}
	return "$" + ticker
}
