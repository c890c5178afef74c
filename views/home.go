package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/edelenyi/praxis/model"
)

// serviceKeys are the six services shown as cards on the home page, in
// display order. Titles and descriptions come from the locale catalogs.
var serviceKeys = []string{
	"psychotherapy",
	"cognitive",
	"couples",
	"family",
	"anxiety",
	"trauma",
}

// galleryImages are the office photos under the static dir.
var galleryImages = []string{
	"/public/office-1.jpg",
	"/public/office-2.jpg",
	"/public/office-3.jpg",
	"/public/office-4.jpg",
}

// Home renders the landing page: hero, service cards, office gallery, map,
// latest posts and the contact form.
func Home(v Ctx, posts []model.BlogPost, flash Flash) templ.Component {
	meta := PageMeta{
		URL:    buildURL(v.Site.URL, v.Locale),
		OGType: "website",
	}
	return page(v, meta, PracticeJSONLD(v.Site), func(b *bytes.Buffer) {
		writeHero(b, v)
		writeServiceCards(b, v)
		writeGallery(b, v)
		writeBlogSection(b, v, posts)
		writeMap(b, v)
		b.WriteString(`<section class="section contact-section" id="contact">`)
		fmt.Fprintf(b, `<h2>%s</h2>`, esc(v.T("contact.form.title")))
		writeContactForm(b, v, flash)
		b.WriteString(`</section>`)
	})
}

func writeHero(b *bytes.Buffer, v Ctx) {
	b.WriteString(`<section class="hero">`)
	fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("hero.title")))
	fmt.Fprintf(b, `<p class="hero-subtitle">%s</p>`, esc(v.T("hero.subtitle")))
	if v.Site.CalendlyURL != "" {
		fmt.Fprintf(b,
			`<a class="btn btn-primary" href="" onclick="Calendly.initPopupWidget({url:'%s'});return false;">%s</a>`,
			esc(v.Site.CalendlyURL), esc(v.T("hero.cta")))
	} else {
		fmt.Fprintf(b, `<a class="btn btn-primary" href="%s">%s</a>`,
			esc(v.Path("/contact")), esc(v.T("hero.cta")))
	}
	b.WriteString(`</section>`)
}

func writeServiceCards(b *bytes.Buffer, v Ctx) {
	b.WriteString(`<section class="section services">`)
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(v.T("home.services.title")))
	fmt.Fprintf(b, `<p class="section-lead">%s</p>`, esc(v.T("home.services.subtitle")))
	b.WriteString(`<div class="card-grid">`)
	for _, key := range serviceKeys {
		b.WriteString(`<div class="card">`)
		fmt.Fprintf(b, `<h3>%s</h3>`, esc(v.T("home.services.items."+key+".title")))
		fmt.Fprintf(b, `<p>%s</p>`, esc(v.T("home.services.items."+key+".description")))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></section>`)
}

func writeGallery(b *bytes.Buffer, v Ctx) {
	b.WriteString(`<section class="section gallery">`)
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(v.T("home.gallery.title")))
	b.WriteString(`<div class="gallery-grid">`)
	for _, src := range galleryImages {
		fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy"/>`, esc(src), esc(v.T("home.gallery.title")))
	}
	b.WriteString(`</div></section>`)
}

func writeMap(b *bytes.Buffer, v Ctx) {
	if v.Site.MapEmbedURL == "" {
		return
	}
	b.WriteString(`<section class="section map">`)
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(v.T("home.map.title")))
	fmt.Fprintf(b, `<iframe src="%s" loading="lazy" allowfullscreen referrerpolicy="no-referrer-when-downgrade"></iframe>`,
		esc(v.Site.MapEmbedURL))
	b.WriteString(`</section>`)
}

func writeBlogSection(b *bytes.Buffer, v Ctx, posts []model.BlogPost) {
	b.WriteString(`<section class="section blog-preview">`)
	fmt.Fprintf(b, `<h2>%s</h2>`, esc(v.T("home.blog.title")))
	if len(posts) == 0 {
		fmt.Fprintf(b, `<p class="empty">%s</p>`, esc(v.T("home.blog.empty")))
	} else {
		b.WriteString(`<div class="card-grid">`)
		for _, p := range posts {
			writePostCard(b, v, p)
		}
		b.WriteString(`</div>`)
	}
	fmt.Fprintf(b, `<a class="btn btn-secondary" href="%s">%s</a>`,
		esc(v.Path("/blog")), esc(v.T("home.blog.all")))
	b.WriteString(`</section>`)
}

func writePostCard(b *bytes.Buffer, v Ctx, p model.BlogPost) {
	link := v.Path("/blog/" + p.Slug)
	b.WriteString(`<article class="card post-card">`)
	if p.ImageURL != "" {
		fmt.Fprintf(b, `<a href="%s"><img src="%s" alt="%s" loading="lazy"/></a>`,
			esc(link), esc(ThumbnailPath(p)), esc(p.Title))
	}
	fmt.Fprintf(b, `<h3><a href="%s">%s</a></h3>`, esc(link), esc(p.Title))
	fmt.Fprintf(b, `<p class="post-date">%s</p>`, esc(formatDate(p.CreatedAt, v.Locale)))
	fmt.Fprintf(b, `<p>%s</p>`, esc(excerpt(p.Content, 160)))
	fmt.Fprintf(b, `<a class="read-more" href="%s">%s</a>`, esc(link), esc(v.T("home.blog.readMore")))
	b.WriteString(`</article>`)
}
