package praxis

import (
	"log"
	"os"
	"time"

	"github.com/edelenyi/praxis/views"
)

// SiteConfig holds all configuration for the site. Presentation settings
// live in the embedded views.Site; the rest is server wiring.
type SiteConfig struct {
	Site views.Site

	Addr          string // listen address (default ":3000")
	DefaultLocale string // locale "/" redirects to (default "hu")

	MongoURI string // required: content store connection string
	MongoDB  string // database name (default "praxis")

	AnalyticsEnabled      bool
	AnalyticsDatabasePath string // SQLite path (default "data/analytics.db")

	// EmailJS service/template/public-key triple for the contact form.
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	AdminPassword string // required: admin login password
	SessionSecret string // required: session encryption secret
	CookieSecure  bool   // set true for HTTPS

	PostCacheTTL time.Duration // published-post cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Site.Name == "" {
		c.Site.Name = "Praxis"
	}
	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = "hu"
	}
	if c.MongoDB == "" {
		c.MongoDB = "praxis"
	}
	if c.AnalyticsDatabasePath == "" {
		c.AnalyticsDatabasePath = "data/analytics.db"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithStore injects a ContentStore, replacing the MongoDB store that Start
// would otherwise connect. Used by tests.
func WithStore(s ContentStore) Option {
	return func(a *App) {
		a.Store = s
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("praxis: required environment variable %s is not set", key)
	}
	return v
}
