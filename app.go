// Package praxis is the web application behind a small psychology practice:
// localized marketing pages, a MongoDB-backed blog with an admin editor, a
// thumbnail endpoint that decodes stored blog images, and a contact form
// forwarded through EmailJS.
package praxis

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/analytics"
	"github.com/edelenyi/praxis/i18n"
	"github.com/edelenyi/praxis/mailer"
	"github.com/edelenyi/praxis/views"
)

// App wires together the content store, cache, mailer, translations,
// middleware and routes.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  ContentStore
	Cache  *PostCache
	I18n   *i18n.Catalog
	Mailer *mailer.Client

	loginLimiter   *LoginLimiter
	analyticsStore *analytics.Store
	mongoStore     *Store
	staticDir      string
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, translations, middleware and routes,
// then runs the server until it is shut down.
func (a *App) Start() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("praxis: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("praxis: SessionSecret is required")
	}

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("praxis: load translations: %w", err)
	}
	a.I18n = catalog

	if a.Store == nil {
		if a.Config.MongoURI == "" {
			return fmt.Errorf("praxis: MongoURI is required")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		store, err := NewStore(ctx, a.Config.MongoURI, a.Config.MongoDB)
		if err != nil {
			return fmt.Errorf("praxis: init store: %w", err)
		}
		a.Store = store
		a.mongoStore = store
	}

	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.Mailer = mailer.New(a.Config.EmailJSServiceID, a.Config.EmailJSTemplateID, a.Config.EmailJSPublicKey)

	if a.Config.AnalyticsEnabled {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("praxis: init analytics: %w", err)
		}
		a.analyticsStore = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Thumbnail endpoint, reached directly by <img> tags.
	e.GET("/api/thumbnail/:slug", a.handleThumbnail)

	// Localized public pages.
	e.GET("/", a.handleRoot)
	loc := e.Group("/:locale", a.localeMiddleware)
	loc.GET("", a.handleHome)
	loc.GET("/about", a.handleAbout)
	loc.GET("/services", a.handleServices)
	loc.GET("/contact", a.handleContact)
	loc.POST("/contact", a.handleContactSubmit)
	loc.GET("/blog", a.handleBlogIndex)
	loc.GET("/blog/:slug", a.handleBlogPost)

	// Admin.
	e.GET("/admin", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	e.GET("/admin/posts/new", a.handleAdminNewPost)
	e.GET("/admin/posts/:id", a.handleAdminEditPost)
	e.POST("/admin/posts/save", a.handleAdminSave)
	e.POST("/admin/posts/:id/delete", a.handleAdminDelete)
	e.GET("/admin/stats", a.handleAdminStats)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.mongoStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.mongoStore.Close(ctx); err != nil {
			return err
		}
	}
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// viewCtx builds the per-request view context: resolved locale, bound
// translator, session state and CSRF token.
func (a *App) viewCtx(c echo.Context, locale string) views.Ctx {
	return views.Ctx{
		Site:    a.Config.Site,
		Locale:  locale,
		T:       func(key string) string { return a.I18n.T(locale, key) },
		IsAdmin: IsAdmin(c),
		CSRF:    CsrfToken(c),
	}
}
