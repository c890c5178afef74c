package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// About renders the practitioner introduction page.
func About(v Ctx) templ.Component {
	meta := PageMeta{
		Title:  v.T("about.title"),
		URL:    buildURL(v.Site.URL, v.Locale, "about"),
		OGType: "website",
	}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section page-about">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("about.title")))
		fmt.Fprintf(b, `<p class="section-lead">%s</p>`, esc(v.T("about.lead")))
		fmt.Fprintf(b, `<p>%s</p>`, esc(v.T("about.body")))
		b.WriteString(`</section>`)
	})
}

// Services renders the services detail page, reusing the home-page cards.
func Services(v Ctx) templ.Component {
	meta := PageMeta{
		Title:  v.T("services.title"),
		URL:    buildURL(v.Site.URL, v.Locale, "services"),
		OGType: "website",
	}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section page-services">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("services.title")))
		fmt.Fprintf(b, `<p class="section-lead">%s</p>`, esc(v.T("services.lead")))
		b.WriteString(`<div class="card-grid">`)
		for _, key := range serviceKeys {
			b.WriteString(`<div class="card">`)
			fmt.Fprintf(b, `<h3>%s</h3>`, esc(v.T("home.services.items."+key+".title")))
			fmt.Fprintf(b, `<p>%s</p>`, esc(v.T("home.services.items."+key+".description")))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div></section>`)
	})
}

// Contact renders the contact page with the form and an optional flash from
// the previous submission.
func Contact(v Ctx, flash Flash) templ.Component {
	meta := PageMeta{
		Title:  v.T("contact.title"),
		URL:    buildURL(v.Site.URL, v.Locale, "contact"),
		OGType: "website",
	}
	return page(v, meta, "", func(b *bytes.Buffer) {
		b.WriteString(`<section class="section page-contact">`)
		fmt.Fprintf(b, `<h1>%s</h1>`, esc(v.T("contact.title")))
		fmt.Fprintf(b, `<p class="section-lead">%s</p>`, esc(v.T("contact.lead")))
		writeContactForm(b, v, flash)
		b.WriteString(`</section>`)
	})
}

// writeContactForm renders the contact form. Field names mirror the email
// template parameters: from_name, email, phone, message.
func writeContactForm(b *bytes.Buffer, v Ctx, flash Flash) {
	if flash.Message != "" {
		cls := "flash flash-success"
		if flash.Error {
			cls = "flash flash-error"
		}
		fmt.Fprintf(b, `<div class="%s" role="alert">%s</div>`, cls, esc(flash.Message))
	}
	fmt.Fprintf(b, `<form class="contact-form" method="post" action="%s">`, esc(v.Path("/contact")))
	fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(v.CSRF))
	fmt.Fprintf(b, `<label>%s<input type="text" name="from_name" required/></label>`, esc(v.T("contact.form.fullName")))
	fmt.Fprintf(b, `<label>%s<input type="email" name="email" required/></label>`, esc(v.T("contact.form.email")))
	fmt.Fprintf(b, `<label>%s<input type="tel" name="phone"/></label>`, esc(v.T("contact.form.phone")))
	fmt.Fprintf(b, `<label>%s<textarea name="message" rows="6" required></textarea></label>`, esc(v.T("contact.form.message")))
	fmt.Fprintf(b, `<button type="submit" class="btn btn-primary">%s</button>`, esc(v.T("contact.form.submit")))
	b.WriteString(`</form>`)
}
