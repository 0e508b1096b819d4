package domain

// LogoResult is the outcome of the logo/color-management stage.
type LogoResult struct {
	FinalLogoURL string
	Colors       BrandColors
	Placeholder  bool // true when the synthesized placeholder was used
}

// PostsResult is the outcome of the text-generation stage.
// Posts always holds exactly three strings, each at most 280 characters.
type PostsResult struct {
	Posts        []string
	VisualThemes []string
	Degraded     bool // true when the templated fallback was used
}

// BannerRequest carries everything the banner generator needs.
type BannerRequest struct {
	Ticker       string
	VisualThemes []string
	LogoURL      string
	Tagline      string
	Brief        CreativeBrief
	Tone         ToneProfile
}

// BannerResult is the outcome of the banner-generation stage.
type BannerResult struct {
	HeroBannerURL string
}

// VideoRequest carries everything the video generator needs.
type VideoRequest struct {
	Ticker       string
	VisualThemes []string
	LogoURL      string
	BannerURL    string
	Brief        CreativeBrief
	Tone         ToneProfile
	CallToAction string
}

// VideoResult is the outcome of the video-generation stage.
// ClipsSucceeded is in [0, ClipsAttempted].
type VideoResult struct {
	LaunchVideoURL string
	ClipsSucceeded int
	ClipsAttempted int
}
