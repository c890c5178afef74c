package views

import (
	"html"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/edelenyi/praxis/model"
)

// esc escapes a string for safe interpolation into HTML text or attributes.
func esc(s string) string {
	return html.EscapeString(s)
}

// buildURL joins path segments onto a base URL.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// formatDate renders a post timestamp for the given locale.
func formatDate(t time.Time, locale string) string {
	if t.IsZero() {
		return ""
	}
	if locale == "hu" {
		return t.Format("2006. 01. 02.")
	}
	return t.Format("2 January 2006")
}

// ThumbnailPath returns the thumbnail endpoint URL for a post.
func ThumbnailPath(p model.BlogPost) string {
	return "/api/thumbnail/" + url.PathEscape(p.Slug)
}

// excerpt returns a plain-text preview of rich post content: tags stripped,
// whitespace collapsed, cut at a word boundary.
func excerpt(content string, max int) string {
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	text := strings.Join(strings.Fields(b.String()), " ")
	if len(text) <= max {
		return text
	}
	cut := strings.LastIndex(text[:max], " ")
	if cut <= 0 {
		cut = max
	}
	return text[:cut] + "…"
}
