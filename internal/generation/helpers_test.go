package generation

import (
	"time"

	"token-promo-lab/internal/domain"
	"token-promo-lab/internal/retry"
)

// fastPolicy keeps retry backoff out of the test critical path.
var fastPolicy = retry.Policy{MaxRetries: 1, BaseDelay: time.Millisecond, Label: "test"}

func testColors() domain.BrandColors {
	return domain.BrandColors{Primary: "#6c5ce7", Secondary: "#00cec9"}
}

func testBrief() domain.CreativeBrief {
	return domain.CreativeBrief{
		ProjectName: "Request Network",
		Ticker:      "REQ",
		Utility:     domain.UtilityProtocol,
		OneLiner:    "Payments infrastructure for the open web.",
		Colors:      testColors(),
	}
}

func testTone() domain.ToneProfile {
	return domain.ToneProfile{
		Utility:     domain.UtilityProtocol,
		Intent:      "hype",
		Theme:       "minimalist",
		ProfileName: "The Architect",
	}
}
