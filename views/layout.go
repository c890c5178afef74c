package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/edelenyi/praxis/i18n"
)

// page wraps a body renderer in the full HTML document: head with SEO and
// OpenGraph metadata, header navigation, footer. Every public page goes
// through here.
func page(v Ctx, meta PageMeta, jsonLD string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		writeHead(&b, v, meta, jsonLD)
		writeHeader(&b, v)
		b.WriteString(`<main>`)
		body(&b)
		b.WriteString(`</main>`)
		writeFooter(&b, v)
		b.WriteString(`</body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

func writeHead(b *bytes.Buffer, v Ctx, meta PageMeta, jsonLD string) {
	title := meta.Title
	if title == "" {
		title = v.Site.Name
	} else {
		title = title + " | " + v.Site.Name
	}
	desc := meta.Description
	if desc == "" {
		desc = v.Site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}

	fmt.Fprintf(b, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"/>`, esc(v.Locale))
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	fmt.Fprintf(b, `<title>%s</title>`, esc(title))
	fmt.Fprintf(b, `<meta name="description" content="%s"/>`, esc(desc))
	if meta.URL != "" {
		fmt.Fprintf(b, `<link rel="canonical" href="%s"/>`, esc(meta.URL))
		fmt.Fprintf(b, `<meta property="og:url" content="%s"/>`, esc(meta.URL))
	}
	fmt.Fprintf(b, `<meta property="og:title" content="%s"/>`, esc(title))
	fmt.Fprintf(b, `<meta property="og:description" content="%s"/>`, esc(desc))
	fmt.Fprintf(b, `<meta property="og:type" content="%s"/>`, esc(ogType))
	fmt.Fprintf(b, `<meta property="og:site_name" content="%s"/>`, esc(v.Site.Name))

	// Alternate-language links for the same page.
	for _, loc := range i18n.SupportedLocales {
		if loc != v.Locale {
			fmt.Fprintf(b, `<link rel="alternate" hreflang="%s" href="%s"/>`,
				esc(loc), esc(altLocaleURL(v, meta.URL, loc)))
		}
	}

	b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
	b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
	if v.Site.CalendlyURL != "" {
		b.WriteString(`<link href="https://assets.calendly.com/assets/external/widget.css" rel="stylesheet"/>`)
		b.WriteString(`<script src="https://assets.calendly.com/assets/external/widget.js" async></script>`)
	}
	if jsonLD != "" {
		fmt.Fprintf(b, `<script type="application/ld+json">%s</script>`, jsonLD)
	}
	b.WriteString(`</head><body>`)
}

// altLocaleURL swaps the locale segment in an absolute page URL.
func altLocaleURL(v Ctx, pageURL, loc string) string {
	prefix := buildURL(v.Site.URL, v.Locale)
	if pageURL == "" || len(pageURL) < len(prefix) {
		return buildURL(v.Site.URL, loc)
	}
	return buildURL(v.Site.URL, loc) + pageURL[len(prefix):]
}

func writeHeader(b *bytes.Buffer, v Ctx) {
	b.WriteString(`<header class="site-header"><nav class="nav">`)
	fmt.Fprintf(b, `<a class="brand" href="%s">%s</a>`, esc(v.Path("/")), esc(v.Site.Name))
	b.WriteString(`<ul class="nav-links">`)
	items := []struct{ key, href string }{
		{"menu.home", "/"},
		{"menu.about", "/about"},
		{"menu.services", "/services"},
		{"menu.blog", "/blog"},
		{"menu.contact", "/contact"},
	}
	for _, it := range items {
		fmt.Fprintf(b, `<li><a href="%s">%s</a></li>`, esc(v.Path(it.href)), esc(v.T(it.key)))
	}
	if v.IsAdmin {
		fmt.Fprintf(b, `<li><a href="/admin">%s</a></li>`, esc(v.T("menu.admin")))
	}
	b.WriteString(`</ul>`)

	// Locale switcher keeps the visitor on the same page in the other language.
	b.WriteString(`<ul class="locale-switch">`)
	for _, loc := range i18n.SupportedLocales {
		cls := ""
		if loc == v.Locale {
			cls = ` class="active"`
		}
		fmt.Fprintf(b, `<li%s><a href="/%s">%s</a></li>`, cls, esc(loc), esc(loc))
	}
	b.WriteString(`</ul></nav></header>`)
}

func writeFooter(b *bytes.Buffer, v Ctx) {
	b.WriteString(`<footer class="site-footer"><div class="footer-inner">`)
	fmt.Fprintf(b, `<p class="footer-brand">%s</p>`, esc(v.Site.Name))
	fmt.Fprintf(b, `<p class="footer-contact">%s: <a href="mailto:%s">%s</a>`,
		esc(v.T("footer.contact")), esc(v.Site.Email), esc(v.Site.Email))
	if v.Site.Phone != "" {
		fmt.Fprintf(b, ` · <a href="tel:%s">%s</a>`, esc(v.Site.Phone), esc(v.Site.Phone))
	}
	b.WriteString(`</p>`)
	if v.Site.Address != "" {
		fmt.Fprintf(b, `<p class="footer-address">%s</p>`, esc(v.Site.Address))
	}
	fmt.Fprintf(b, `<p class="footer-rights">&copy; %s. %s</p>`, esc(v.Site.Name), esc(v.T("footer.rights")))
	b.WriteString(`</div></footer>`)
}
