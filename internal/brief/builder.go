// Package brief builds the creative brief: the denormalized context object
// every generation stage reads from.
package brief

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"token-promo-lab/internal/domain"
)

// One-liner acceptance window, in characters.
const (
	minOneLinerLen = 11
	maxOneLinerLen = 120
)

// Build assembles the creative brief from already-resolved data. Pure
// transform: no remote calls, no retries.
func Build(token domain.TokenResolution, website domain.WebsiteScrapeResult, logo domain.LogoResult, utility domain.UtilityClass, ticker string, now time.Time) domain.CreativeBrief {
	return domain.CreativeBrief{
		ProjectName:     token.ProjectName,
		Ticker:          ticker,
		Utility:         utility,
		OneLiner:        oneLiner(website.Text, token.ProjectName, utility),
		LogoURL:         logo.FinalLogoURL,
		Colors:          logo.Colors,
		TokenAgeSeconds: tokenAge(token.PairCreatedAt, now),
		SocialLinks:     token.SocialLinks,
	}
}

// oneLiner takes the first sentence of scraped website text when its length
// is within [11,120] characters, else a templated description.
func oneLiner(websiteText, projectName string, utility domain.UtilityClass) string {
	sentence := FirstSentence(websiteText)
	if n := utf8.RuneCountInString(sentence); n >= minOneLinerLen && n <= maxOneLinerLen {
		return sentence
	}
	name := projectName
	if name == "" {
		name = "This project"
	}
	return fmt.Sprintf("%s — a %s token", name, utility)
}

// tokenAge computes the token age in seconds, nil when unknown.
func tokenAge(pairCreatedAt *time.Time, now time.Time) *int64 {
	if pairCreatedAt == nil {
		return nil
	}
	age := int64(now.Sub(*pairCreatedAt).Seconds())
	if age < 0 {
		age = 0
	}
	return &age
}

// FirstSentence returns the first sentence of text, splitting on the
// terminators ".!?". The terminator itself is dropped.
func FirstSentence(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return text
}
