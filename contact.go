package praxis

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/mailer"
	"github.com/edelenyi/praxis/views"
)

func (a *App) handleContact(c echo.Context) error {
	return Render(c, views.Contact(a.viewCtx(c, c.Param("locale")), views.Flash{}))
}

// handleContactSubmit forwards the form to EmailJS and re-renders the page
// with a transient notification. An upstream failure is reported to the
// visitor and not retried.
func (a *App) handleContactSubmit(c echo.Context) error {
	locale := c.Param("locale")
	v := a.viewCtx(c, locale)

	msg := mailer.Message{
		FromName: strings.TrimSpace(c.FormValue("from_name")),
		Email:    strings.TrimSpace(c.FormValue("email")),
		Phone:    strings.TrimSpace(c.FormValue("phone")),
		Message:  strings.TrimSpace(c.FormValue("message")),
	}
	if msg.FromName == "" || msg.Email == "" || msg.Message == "" {
		return Render(c, views.Contact(v, views.Flash{
			Message: v.T("contact.form.missingRequired"),
			Error:   true,
		}))
	}

	if err := a.Mailer.Send(c.Request().Context(), msg); err != nil {
		c.Logger().Errorf("contact form: %v", err)
		return Render(c, views.Contact(v, views.Flash{
			Message: v.T("contact.form.errorMessage"),
			Error:   true,
		}))
	}

	return Render(c, views.Contact(v, views.Flash{
		Message: v.T("contact.form.successMessage"),
	}))
}
