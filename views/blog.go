package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/edelenyi/praxis/model"
)

// BlogList renders the public blog index of published posts.
func BlogList(v Ctx, posts []model.BlogPost) templ.Component {
	meta := PageMeta{
		Title:  v.T("blog.title"),
		URL:    buildURL(v.Site.URL, v.Locale, "blog"),
		OGType: "website",
	}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section blog-index">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("blog.title")))
		if len(posts) == 0 {
			fmt.Fprintf(b, `<p class="empty">%s</p>`, esc(v.T("blog.empty")))
		} else {
			b.WriteString(`<div class="card-grid">`)
			for _, p := range posts {
				writePostCard(b, v, p)
			}
			b.WriteString(`</div>`)
		}
		b.WriteString(`</section>`)
	})
}

// BlogPost renders a single post. The content is the editor's rich-text
// markup and is written as-is: the editor is a trusted admin surface and no
// sanitization layer exists between it and the page.
func BlogPost(v Ctx, post model.BlogPost) templ.Component {
	meta := PageMeta{
		Title:       post.Title,
		Description: excerpt(post.Content, 160),
		URL:         buildURL(v.Site.URL, v.Locale, "blog", post.Slug),
		OGType:      "article",
	}
	return page(v, meta, BlogPostingJSONLD(post, v.Site, v.Locale), func(b *bytes.Buffer) {
		b.WriteString(`<article class="section blog-post">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(post.Title))
		fmt.Fprintf(b, `<p class="post-date">%s</p>`, esc(formatDate(post.CreatedAt, v.Locale)))
		if post.ImageURL != "" {
			fmt.Fprintf(b, `<img class="post-image" src="%s" alt="%s"/>`,
				esc(ThumbnailPath(post)), esc(post.Title))
		}
		b.WriteString(`<div class="post-content">`)
		b.WriteString(post.Content)
		b.WriteString(`</div>`)
		fmt.Fprintf(b, `<a class="btn btn-secondary" href="%s">%s</a>`,
			esc(v.Path("/blog")), esc(v.T("blog.back")))
		b.WriteString(`</article>`)
	})
}
