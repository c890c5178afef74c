package views

// Site holds the presentational site-wide settings passed to every template.
type Site struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL, canonical base
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR, the practitioner's name
	Phone       string // SITE_PHONE
	Email       string // SITE_EMAIL
	Address     string // SITE_ADDRESS
	MapEmbedURL string // SITE_MAP_EMBED_URL, Google Maps embed src
	CalendlyURL string // SITE_CALENDLY_URL, booking widget; empty disables it
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Flash is a transient notification shown after a form submission.
type Flash struct {
	Message string
	Error   bool
}

// Ctx bundles what every page render needs: the site settings, the resolved
// locale, a translator bound to that locale, and the session state the
// header uses to show the admin entry.
type Ctx struct {
	Site    Site
	Locale  string
	T       func(key string) string
	IsAdmin bool
	CSRF    string
}

// Path prefixes p with the current locale segment.
func (v Ctx) Path(p string) string {
	if p == "" || p == "/" {
		return "/" + v.Locale
	}
	return "/" + v.Locale + p
}
