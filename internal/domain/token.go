package domain

import "time"

// ResolutionSource tags where a token resolution came from.
type ResolutionSource string

const (
	SourcePrimary      ResolutionSource = "primary-source"
	SourceAddress      ResolutionSource = "address-source"
	SourceUserProvided ResolutionSource = "user-provided"
	SourceFallback     ResolutionSource = "fallback"
)

// String returns the string representation of ResolutionSource.
func (s ResolutionSource) String() string {
	return string(s)
}

// Official reports whether the resolution came from a real metadata lookup
// rather than user input or the fallback default.
func (s ResolutionSource) Official() bool {
	return s == SourcePrimary || s == SourceAddress
}

// TokenResolution is the resolved metadata for a token. Produced once per
// job by the token-resolution stage and immutable afterward.
type TokenResolution struct {
	ProjectName     string
	Description     string
	LogoURL         string
	ContractAddress string
	WebsiteURL      string
	SocialLinks     map[string]string
	PairCreatedAt   *time.Time
	Source          ResolutionSource
}

// WebsiteScrapeResult is the outcome of the website-scrape stage.
// Found is false whenever extraction yields no usable text, regardless of
// whether the fetch itself succeeded.
type WebsiteScrapeResult struct {
	Text  string
	Found bool
}
