package scrape

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors tried in order for hero/about content. The first one yielding
// usable text wins; the meta description is appended when present.
var contentSelectors = []string{
	"main",
	"#hero", ".hero",
	"#about", ".about",
	"section",
	"body",
}

// ExtractText parses HTML and extracts the most prominent hero/about text,
// bounded to maxChars characters.
func ExtractText(html []byte, maxChars int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	var parts []string
	if desc := metaDescription(doc); desc != "" {
		parts = append(parts, desc)
	}

	for _, selector := range contentSelectors {
		text := collapseWhitespace(doc.Find(selector).First().Text())
		if len(text) >= minUsableChars {
			parts = append(parts, text)
			break
		}
	}

	text := strings.Join(parts, " ")
	if len(text) > maxChars {
		text = text[:maxChars]
	}
	return strings.TrimSpace(text), nil
}

// metaDescription extracts the description meta tag, preferring the plain
// tag then the og:description fallback.
func metaDescription(doc *goquery.Document) string {
	if desc, exists := doc.Find("meta[name='description']").Attr("content"); exists {
		return strings.TrimSpace(desc)
	}
	if ogDesc, exists := doc.Find("meta[property='og:description']").Attr("content"); exists {
		return strings.TrimSpace(ogDesc)
	}
	return ""
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
