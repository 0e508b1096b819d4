package domain

// UtilityClass is the classification of a token derived from its text.
type UtilityClass string

const (
	UtilityProtocol UtilityClass = "protocol"
	UtilityCulture  UtilityClass = "culture"
	UtilityHybrid   UtilityClass = "hybrid"
)

// String returns the string representation of UtilityClass.
func (u UtilityClass) String() string {
	return string(u)
}

// IsValid checks if the utility class is a valid value.
func (u UtilityClass) IsValid() bool {
	return u == UtilityProtocol || u == UtilityCulture || u == UtilityHybrid
}

// ToneProfile is the resolved (utility, intent, theme) triple plus its
// archetype name, driving generation prompts.
type ToneProfile struct {
	Utility     UtilityClass
	Intent      string
	Theme       string
	ProfileName string
}
