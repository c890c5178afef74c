package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// NotFound renders the styled 404 page.
func NotFound(v Ctx) templ.Component {
	meta := PageMeta{Title: v.T("error.notFound.title")}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section error-page">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("error.notFound.title")))
		fmt.Fprintf(b, `<p>%s</p>`, esc(v.T("error.notFound.body")))
		fmt.Fprintf(b, `<a class="btn btn-secondary" href="%s">%s</a>`,
			esc(v.Path("/")), esc(v.T("menu.home")))
		b.WriteString(`</section>`)
	})
}

// ServerError renders the styled 500 page.
func ServerError(v Ctx) templ.Component {
	meta := PageMeta{Title: v.T("error.serverError.title")}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section error-page">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("error.serverError.title")))
		fmt.Fprintf(b, `<p>%s</p>`, esc(v.T("error.serverError.body")))
		b.WriteString(`</section>`)
	})
}
