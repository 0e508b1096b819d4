package stub

import (
	"strings"
	"time"

	"token-promo-lab/internal/domain"
)

// Set bundles one stub per stage contract.
type Set struct {
	Tokens  *TokenResolver
	Scraper *WebsiteScraper
	Logos   *LogoManager
	Posts   *PostGenerator
	Banners *BannerGenerator
	Videos  *VideoGenerator
}

// HealthySet returns a stage set simulating a fully successful run for the
// given ticker: primary-source resolution, website found, official logo,
// all clips succeeded. Useful for offline runs and end-to-end tests.
func HealthySet(ticker string) *Set {
	created := time.Now().Add(-48 * time.Hour)
	name := strings.ToUpper(ticker)

	return &Set{
		Tokens: &TokenResolver{Resolution: domain.TokenResolution{
			ProjectName:   name + " Protocol",
			Description:   "A staking protocol with community vibes",
			LogoURL:       "https://cdn.example.com/" + strings.ToLower(ticker) + ".png",
			WebsiteURL:    "https://" + strings.ToLower(ticker) + ".example.com",
			SocialLinks:   map[string]string{"twitter": "https://x.com/" + strings.ToLower(ticker)},
			PairCreatedAt: &created,
			Source:        domain.SourcePrimary,
		}},
		Scraper: &WebsiteScraper{Result: domain.WebsiteScrapeResult{
			Text:  name + " is the settlement layer for everything. Build on it today.",
			Found: true,
		}},
		Logos: &LogoManager{Result: domain.LogoResult{
			FinalLogoURL: "https://cdn.example.com/" + strings.ToLower(ticker) + ".png",
			Colors:       domain.BrandColors{Primary: "#7b2ff7", Secondary: "#00e5ff"},
		}},
		Posts: &PostGenerator{Result: domain.PostsResult{
			Posts: []string{
				name + " changes the game for good. Join the movement today.\n$" + name + " is live.",
				"Why settle for less when " + name + " exists?",
				"The future arrived early. $" + name,
			},
			VisualThemes: []string{"neon grid skyline", "chrome token close-up", "crowd of holders"},
		}},
		Banners: &BannerGenerator{Result: domain.BannerResult{
			HeroBannerURL: "https://assets.example.com/banners/" + strings.ToLower(ticker) + ".png",
		}},
		Videos: &VideoGenerator{Result: domain.VideoResult{
			LaunchVideoURL: "https://assets.example.com/videos/" + strings.ToLower(ticker) + ".mp4",
			ClipsSucceeded: 2,
			ClipsAttempted: 2,
		}},
	}
}

// DegradedSet returns a stage set where every collaborator takes its
// degraded path: fallback resolution, no website, placeholder logo,
// templated posts, no clips.
func DegradedSet() *Set {
	return &Set{
		Tokens: &TokenResolver{Resolution: domain.TokenResolution{
			Source: domain.SourceFallback,
		}},
		Scraper: &WebsiteScraper{Result: domain.WebsiteScrapeResult{Found: false}},
		Logos: &LogoManager{Result: domain.LogoResult{
			FinalLogoURL: "data:image/png;base64,",
			Colors:       domain.BrandColors{Primary: "#6c5ce7", Secondary: "#00cec9"},
			Placeholder:  true,
		}},
		Posts: &PostGenerator{Result: domain.PostsResult{
			Posts:        []string{"Something new is coming.", "Stay tuned.", "Watch this space."},
			VisualThemes: []string{"abstract gradient"},
			Degraded:     true,
		}},
		Banners: &BannerGenerator{Result: domain.BannerResult{HeroBannerURL: "data:image/png;base64,"}},
		Videos:  &VideoGenerator{Result: domain.VideoResult{ClipsSucceeded: 0, ClipsAttempted: 2}},
	}
}
