// Package domain contains the core data model for promo jobs.
package domain

// JobInput is the request for a single promo generation job.
// At least one of Ticker/ContractAddress must be present; that invariant
// is enforced by the request boundary, not here.
type JobInput struct {
	Ticker          string `json:"ticker,omitempty"`
	ContractAddress string `json:"contract_address,omitempty"`
	Intent          string `json:"intent,omitempty"`
	Theme           string `json:"theme,omitempty"`
}

// DataSource tags how much of the final content was grounded in real
// token/website data versus generic thematic content.
type DataSource string

const (
	DataSourceWebsite      DataSource = "website"
	DataSourceThematicOnly DataSource = "thematic_only"
	DataSourceMixed        DataSource = "mixed"
)

// String returns the string representation of DataSource.
func (d DataSource) String() string {
	return string(d)
}

// BrandColors is the two-color palette used across all generated assets.
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// JobOutput is the final report for a promo job. It is always complete:
// internal failures surface only through ConfidenceLevel and DataSource.
type JobOutput struct {
	BannerURL       string      `json:"banner_url"`
	VideoURL        string      `json:"video_url"`
	Posts           []string    `json:"posts"`
	BrandColors     BrandColors `json:"brand_colors"`
	ToneProfileName string      `json:"tone_profile_name"`
	ConfidenceLevel int         `json:"confidence_level"`
	ElapsedSeconds  float64     `json:"elapsed_seconds"`
	DataSource      DataSource  `json:"data_source"`
}

// ConfidenceFactors are the boolean success signals collected at the end
// of a job. Each true factor adds one confidence point.
type ConfidenceFactors struct {
	WebsiteFound bool
	OfficialLogo bool
	AllClipsOK   bool
	NoFallbacks  bool
}
