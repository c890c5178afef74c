package praxis

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/model"
	"github.com/edelenyi/praxis/views"
)

// latestPostCount is how many posts the home page blog section shows.
const latestPostCount = 3

// handleRoot redirects to the visitor's language, or the default locale when
// the Accept-Language header matches nothing we serve.
func (a *App) handleRoot(c echo.Context) error {
	locale := a.Config.DefaultLocale
	if al := c.Request().Header.Get("Accept-Language"); al != "" {
		first, _, _ := strings.Cut(al, ",")
		lang, _, _ := strings.Cut(first, ";")
		if lang = strings.TrimSpace(lang); lang != "" {
			locale = a.I18n.Match(lang)
		}
	}
	return c.Redirect(http.StatusFound, "/"+locale)
}

func (a *App) handleHome(c echo.Context) error {
	locale := c.Param("locale")
	posts := a.publishedOrEmpty(c, latestPostCount)
	return Render(c, views.Home(a.viewCtx(c, locale), posts, views.Flash{}))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, views.About(a.viewCtx(c, c.Param("locale"))))
}

func (a *App) handleServices(c echo.Context) error {
	return Render(c, views.Services(a.viewCtx(c, c.Param("locale"))))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	locale := c.Param("locale")
	posts := a.publishedOrEmpty(c, 0)
	return Render(c, views.BlogList(a.viewCtx(c, locale), posts))
}

func (a *App) handleBlogPost(c echo.Context) error {
	locale := c.Param("locale")
	v := a.viewCtx(c, locale)
	post, err := a.Cache.GetPublished(c.Request().Context(), c.Param("slug"))
	if errors.Is(err, model.ErrNotFound) {
		return RenderStatus(c, http.StatusNotFound, views.NotFound(v))
	}
	if err != nil {
		return err
	}
	return Render(c, views.BlogPost(v, post))
}

// publishedOrEmpty reads published posts through the cache. A store failure
// degrades to an empty list: marketing pages render without the blog section
// rather than failing outright. n == 0 means all posts.
func (a *App) publishedOrEmpty(c echo.Context, n int) []model.BlogPost {
	ctx := c.Request().Context()
	var (
		posts []model.BlogPost
		err   error
	)
	if n > 0 {
		posts, err = a.Cache.Latest(ctx, n)
	} else {
		posts, err = a.Cache.ListPublished(ctx)
	}
	if err != nil {
		c.Logger().Errorf("list published posts: %v", err)
		return nil
	}
	return posts
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	return c.File(a.staticDir + "/robots.txt")
}

// httpErrorHandler renders styled 404/500 pages in the locale the failing
// request was for.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	v := a.viewCtx(c, a.requestLocale(c))

	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(v))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(v))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// requestLocale recovers the locale from the request path, falling back to
// the default when the path has none.
func (a *App) requestLocale(c echo.Context) string {
	if loc := c.Param("locale"); a.I18n != nil && a.I18n.Supported(loc) {
		return loc
	}
	seg := strings.TrimPrefix(c.Request().URL.Path, "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if a.I18n != nil && a.I18n.Supported(seg) {
		return seg
	}
	return a.Config.DefaultLocale
}
