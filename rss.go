package praxis

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// handleFeed serves the published posts as RSS, linking into the default
// locale's blog.
func (a *App) handleFeed(c echo.Context) error {
	posts := a.publishedOrEmpty(c, 0)
	base := a.Config.Site.URL

	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(base, a.Config.DefaultLocale, "blog", p.Slug)
		items = append(items, rssItem{
			Title:   p.Title,
			Link:    postURL,
			PubDate: p.CreatedAt.Format(time.RFC1123Z),
			GUID:    postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Site.Name,
			Link:        base,
			Description: a.Config.Site.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
