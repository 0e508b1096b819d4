// Package classify derives a token's utility class from its text.
package classify

import (
	"strings"

	"token-promo-lab/internal/domain"
)

// Keyword sets for classification. Matching is case-insensitive substring
// search over the concatenated project name and description.
var (
	protocolKeywords = []string{
		"protocol", "defi", "infrastructure", "layer", "chain",
		"bridge", "staking", "oracle", "rollup", "validator",
		"liquidity", "lending", "scaling", "zero-knowledge", "interoperab",
	}
	cultureKeywords = []string{
		"meme", "community", "moon", "doge", "pepe",
		"vibes", "frog", "inu", "degen", "mascot",
		"fun", "viral", "cult", "lol", "wagmi",
	}
)

// Utility classifies a token from its description and project name.
// Tie-break and "no signal" both resolve to hybrid; this is a deliberate
// simplification, not an oversight.
func Utility(description, projectName string) domain.UtilityClass {
	text := strings.ToLower(projectName + " " + description)

	protocolHits := countHits(text, protocolKeywords)
	cultureHits := countHits(text, cultureKeywords)

	switch {
	case protocolHits > 0 && cultureHits == 0:
		return domain.UtilityProtocol
	case cultureHits > 0 && protocolHits == 0:
		return domain.UtilityCulture
	default:
		return domain.UtilityHybrid
	}
}

func countHits(text string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits++
		}
	}
	return hits
}
