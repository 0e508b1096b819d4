package generation

import (
	"fmt"
	"strings"

	"token-promo-lab/internal/domain"
)

// FallbackPosts builds a templated post set when the model is unavailable
// or returns garbage. Output is deterministic for a given brief and tone.
func FallbackPosts(brief domain.CreativeBrief, tone domain.ToneProfile) domain.PostsResult {
	name := brief.ProjectName
	if name == "" {
		name = brief.Ticker
	}
	ticker := strings.ToUpper(brief.Ticker)
	if ticker == "" {
		ticker = "TOKEN"
	}

	posts := []string{
		fmt.Sprintf("%s is here. %s $%s", name, brief.OneLiner, ticker),
		fmt.Sprintf("Meet %s, %s in motion. Follow along as the story unfolds. $%s", name, tone.ProfileName, ticker),
		fmt.Sprintf("The next chapter for $%s starts now. %s", ticker, name),
	}
	for i, post := range posts {
		runes := []rune(post)
		if len(runes) > maxPostRunes {
			posts[i] = string(runes[:maxPostRunes])
		}
	}

	return domain.PostsResult{
		Posts:        posts,
		VisualThemes: fallbackThemes(tone.Theme),
		Degraded:     true,
	}
}

// fallbackThemes maps a visual theme to stock imagery prompts used when the
// model supplies none.
func fallbackThemes(theme string) []string {
	switch theme {
	case "minimalist":
		return []string{"clean geometry on white", "single accent color", "negative space"}
	case "retro-arcade":
		return []string{"pixel art skyline", "CRT scanlines", "neon coin sprites"}
	case "cyberpunk":
		return []string{"neon cityscape at night", "glitch typography", "chrome and rain"}
	default:
		return []string{"abstract gradient", "bold typography"}
	}
}
