// Package tone resolves the tone profile: intent, theme, and archetype name
// for a classified token. Pure, side-effect-free mapping.
package tone

import (
	"fmt"
	"strings"

	"token-promo-lab/internal/domain"
)

// launchWindowSeconds is the token age below which the auto-resolved intent
// is "launch" rather than "hype".
const launchWindowSeconds = 86_400

// Default themes per utility class.
var defaultThemes = map[domain.UtilityClass]string{
	domain.UtilityProtocol: "minimalist",
	domain.UtilityCulture:  "retro-arcade",
	domain.UtilityHybrid:   "cyberpunk",
}

// Resolve produces the tone profile for a job. User-supplied intent/theme
// always win; otherwise intent derives from token age and theme from the
// utility class. Identical inputs always yield the identical profile.
func Resolve(utility domain.UtilityClass, userIntent, userTheme string, tokenAgeSeconds *int64) domain.ToneProfile {
	intent := resolveIntent(userIntent, tokenAgeSeconds)
	theme := resolveTheme(userTheme, utility)

	return domain.ToneProfile{
		Utility:     utility,
		Intent:      intent,
		Theme:       theme,
		ProfileName: profileName(utility, intent, theme),
	}
}

func resolveIntent(userIntent string, tokenAgeSeconds *int64) string {
	if userIntent != "" {
		return userIntent
	}
	if tokenAgeSeconds != nil && *tokenAgeSeconds < launchWindowSeconds {
		return "launch"
	}
	return "hype"
}

func resolveTheme(userTheme string, utility domain.UtilityClass) string {
	if userTheme != "" {
		return userTheme
	}
	if theme, ok := defaultThemes[utility]; ok {
		return theme
	}
	return defaultThemes[domain.UtilityHybrid]
}

// profileName looks the triple up in the archetype table, synthesizing
// "The {Utility} {Intent}" when no entry exists.
func profileName(utility domain.UtilityClass, intent, theme string) string {
	if name, ok := archetypes[archetypeKey{utility, intent, theme}]; ok {
		return name
	}
	return fmt.Sprintf("The %s %s", capitalize(utility.String()), capitalize(intent))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
