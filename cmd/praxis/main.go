// Command praxis runs the practice website. All configuration comes from
// environment variables; a local .env file is loaded when present.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/edelenyi/praxis"
	"github.com/edelenyi/praxis/views"
)

func main() {
	_ = godotenv.Load()

	cfg := praxis.SiteConfig{
		Site: views.Site{
			Name:        praxis.EnvOr("SITE_NAME", "Praxis"),
			URL:         praxis.EnvOr("SITE_URL", "http://localhost:3000"),
			Description: os.Getenv("SITE_DESCRIPTION"),
			Author:      os.Getenv("SITE_AUTHOR"),
			Phone:       os.Getenv("SITE_PHONE"),
			Email:       os.Getenv("SITE_EMAIL"),
			Address:     os.Getenv("SITE_ADDRESS"),
			MapEmbedURL: os.Getenv("SITE_MAP_EMBED_URL"),
			CalendlyURL: os.Getenv("SITE_CALENDLY_URL"),
		},

		Addr:          praxis.EnvOr("ADDR", ":3000"),
		DefaultLocale: praxis.EnvOr("DEFAULT_LOCALE", "hu"),

		MongoURI: praxis.MustEnv("MONGO_URI"),
		MongoDB:  praxis.EnvOr("MONGO_DB", "praxis"),

		AnalyticsEnabled:      praxis.EnvOr("ANALYTICS_ENABLED", "true") == "true",
		AnalyticsDatabasePath: praxis.EnvOr("ANALYTICS_DB_PATH", "data/analytics.db"),

		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),

		AdminPassword: praxis.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: praxis.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
	}

	app := praxis.New(cfg)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		if err := app.Close(); err != nil {
			log.Printf("shutdown: %v", err)
		}
		os.Exit(0)
	}()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
