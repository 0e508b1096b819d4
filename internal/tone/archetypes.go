package tone

import "token-promo-lab/internal/domain"

// archetypeKey identifies one named archetype in the profile table.
type archetypeKey struct {
	Utility domain.UtilityClass
	Intent  string
	Theme   string
}

// archetypes is the static profile-name table. Purely declarative: new
// archetypes are added here, never in resolution logic.
var archetypes = map[archetypeKey]string{
	{domain.UtilityProtocol, "launch", "minimalist"}:   "The Architect",
	{domain.UtilityProtocol, "launch", "cyberpunk"}:    "The Genesis Node",
	{domain.UtilityProtocol, "launch", "retro-arcade"}: "The First Block",
	{domain.UtilityProtocol, "hype", "minimalist"}:     "The Quiet Flex",
	{domain.UtilityProtocol, "hype", "cyberpunk"}:      "The Signal Runner",
	{domain.UtilityProtocol, "hype", "retro-arcade"}:   "The Power-Up",
	{domain.UtilityProtocol, "trust", "minimalist"}:    "The Auditor",
	{domain.UtilityProtocol, "trust", "cyberpunk"}:     "The Firewall",

	{domain.UtilityCulture, "launch", "retro-arcade"}: "The Insert Coin",
	{domain.UtilityCulture, "launch", "minimalist"}:   "The Clean Meme",
	{domain.UtilityCulture, "launch", "cyberpunk"}:    "The Neon Mascot",
	{domain.UtilityCulture, "hype", "retro-arcade"}:   "The High Score",
	{domain.UtilityCulture, "hype", "minimalist"}:     "The Deadpan",
	{domain.UtilityCulture, "hype", "cyberpunk"}:      "The Glitch Lord",
	{domain.UtilityCulture, "trust", "retro-arcade"}:  "The Fair Play",

	{domain.UtilityHybrid, "launch", "cyberpunk"}:    "The Neon Genesis",
	{domain.UtilityHybrid, "launch", "minimalist"}:   "The Blank Slate",
	{domain.UtilityHybrid, "launch", "retro-arcade"}: "The New Game",
	{domain.UtilityHybrid, "hype", "cyberpunk"}:      "The Chrome Prophet",
	{domain.UtilityHybrid, "hype", "minimalist"}:     "The Understatement",
	{domain.UtilityHybrid, "hype", "retro-arcade"}:   "The Combo Breaker",
	{domain.UtilityHybrid, "trust", "cyberpunk"}:     "The Night Watch",
}
