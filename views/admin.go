package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/edelenyi/praxis/model"
)

// The admin surface is intentionally English-only and outside the locale
// routing, like the rest of the /admin tree.

// adminShell is the bare document wrapper for admin pages: no public header,
// no locale handling, never cached.
func adminShell(title string, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString(`<meta name="robots" content="noindex"/>`)
		fmt.Fprintf(&b, `<title>%s | Admin</title>`, esc(title))
		b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
		b.WriteString(`</head><body class="admin">`)
		body(&b)
		b.WriteString(`</body></html>`)
		_, err := w.Write(b.Bytes())
		return err
	})
}

// AdminLogin renders the password prompt.
func AdminLogin(v Ctx, showError bool) templ.Component {
	return adminShell("Login", func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin-login">`)
		b.WriteString(`<h1>Admin</h1>`)
		if showError {
			b.WriteString(`<div class="flash flash-error" role="alert">Wrong password.</div>`)
		}
		b.WriteString(`<form method="post" action="/admin/login">`)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(v.CSRF))
		b.WriteString(`<label>Password<input type="password" name="password" required autofocus/></label>`)
		b.WriteString(`<button type="submit" class="btn btn-primary">Log in</button>`)
		b.WriteString(`</form></section>`)
	})
}

// AdminDashboard renders the post list with add/edit/delete actions.
func AdminDashboard(v Ctx, posts []model.BlogPost, message string) templ.Component {
	return adminShell("Dashboard", func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin-dashboard">`)
		b.WriteString(`<h1>Posts</h1>`)
		if message != "" {
			fmt.Fprintf(b, `<div class="flash flash-success" role="status">%s</div>`, esc(message))
		}
		b.WriteString(`<p><a class="btn btn-primary" href="/admin/posts/new">New post</a>`)
		b.WriteString(` <a class="btn btn-secondary" href="/admin/stats">Stats</a>`)
		b.WriteString(` <form method="post" action="/admin/logout" class="inline">`)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(v.CSRF))
		b.WriteString(`<button type="submit" class="btn btn-secondary">Log out</button></form></p>`)

		b.WriteString(`<table class="admin-table"><thead><tr><th>Title</th><th>Slug</th><th>Status</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, p := range posts {
			b.WriteString(`<tr>`)
			fmt.Fprintf(b, `<td><a href="/admin/posts/%s">%s</a></td>`, esc(p.ID.Hex()), esc(p.Title))
			fmt.Fprintf(b, `<td>%s</td>`, esc(p.Slug))
			fmt.Fprintf(b, `<td><span class="status status-%s">%s</span></td>`, esc(p.Status), esc(p.Status))
			fmt.Fprintf(b, `<td>%s</td>`, esc(p.CreatedAt.Format("2006-01-02")))
			fmt.Fprintf(b, `<td><form method="post" action="/admin/posts/%s/delete" onsubmit="return confirm('Delete this post?')">`, esc(p.ID.Hex()))
			fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(v.CSRF))
			b.WriteString(`<button type="submit" class="btn btn-danger">Delete</button></form></td>`)
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table></section>`)
	})
}

// AdminEditor renders the post editor for a new or existing post.
func AdminEditor(v Ctx, post model.BlogPost, isNew bool) templ.Component {
	return adminShell("Editor", func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin-editor">`)
		if isNew {
			b.WriteString(`<h1>New post</h1>`)
		} else {
			fmt.Fprintf(b, `<h1>Edit: %s</h1>`, esc(post.Title))
		}
		b.WriteString(`<form method="post" action="/admin/posts/save" enctype="multipart/form-data">`)
		fmt.Fprintf(b, `<input type="hidden" name="_csrf" value="%s"/>`, esc(v.CSRF))
		if !isNew {
			fmt.Fprintf(b, `<input type="hidden" name="id" value="%s"/>`, esc(post.ID.Hex()))
		}
		fmt.Fprintf(b, `<label>Title<input type="text" name="title" value="%s" required/></label>`, esc(post.Title))
		fmt.Fprintf(b, `<label>Slug<input type="text" name="slug" value="%s" placeholder="derived from title when empty"/></label>`, esc(post.Slug))
		fmt.Fprintf(b, `<label>Content<textarea name="content" rows="18">%s</textarea></label>`, esc(post.Content))

		b.WriteString(`<label>Status<select name="status">`)
		for _, st := range []string{model.StatusDraft, model.StatusPublished} {
			sel := ""
			if post.Status == st {
				sel = ` selected`
			}
			fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, esc(st), sel, esc(st))
		}
		b.WriteString(`</select></label>`)

		if post.ImageURL != "" {
			fmt.Fprintf(b, `<p class="current-image"><img src="%s" alt="current image"/></p>`, esc(ThumbnailPath(post)))
		}
		b.WriteString(`<label>Image upload<input type="file" name="image" accept="image/*"/></label>`)
		fmt.Fprintf(b, `<label>Or image URL<input type="text" name="image_url" value="%s" placeholder="https://..."/></label>`, imageURLValue(post.ImageURL))

		b.WriteString(`<button type="submit" class="btn btn-primary">Save</button>`)
		b.WriteString(` <a class="btn btn-secondary" href="/admin">Back</a>`)
		b.WriteString(`</form></section>`)
	})
}

// imageURLValue shows the stored image field in the URL input only when it is
// an actual URL; inline base64 payloads would be unusable in a text input.
func imageURLValue(field string) string {
	if len(field) > 8 && (field[:7] == "http://" || field[:8] == "https://") {
		return esc(field)
	}
	return ""
}
