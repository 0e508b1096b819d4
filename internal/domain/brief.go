package domain

// CreativeBrief is the single denormalized context object assembled after
// data resolution. Built once, passed read-only into every generation stage.
type CreativeBrief struct {
	ProjectName     string
	Ticker          string
	Utility         UtilityClass
	OneLiner        string
	LogoURL         string
	Colors          BrandColors
	TokenAgeSeconds *int64 // nil when pair creation time is unknown
	SocialLinks     map[string]string
}
