package domain

// SiteConfig holds the site-wide display values injected into the landing
// page template. It is built once at process start and never mutated.
type SiteConfig struct {
	SiteName        string
	SiteVersion     string
	CurrentYear     int
	MetaDescription string
	MetaKeywords    string
	SocialLinks     SocialLinks
}

type SocialLinks struct {
	Discord   string
	Telegram  string
	Instagram string
	YouTube   string
	Twitter   string
	Facebook  string
}
