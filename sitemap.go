package praxis

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/i18n"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap lists every locale's static pages plus the published posts.
func (a *App) handleSitemap(c echo.Context) error {
	posts := a.publishedOrEmpty(c, 0)
	base := a.Config.Site.URL

	var urls []sitemapURL
	for _, loc := range i18n.SupportedLocales {
		for _, page := range []string{"", "about", "services", "contact", "blog"} {
			urls = append(urls, sitemapURL{Loc: BuildURL(base, loc, page)})
		}
		for _, p := range posts {
			urls = append(urls, sitemapURL{
				Loc:     BuildURL(base, loc, "blog", p.Slug),
				LastMod: p.CreatedAt.Format("2006-01-02"),
			})
		}
	}

	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
