package praxis

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/model"
	"github.com/edelenyi/praxis/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	v := a.viewCtx(c, a.Config.DefaultLocale)
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(v, false))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	return Render(c, views.AdminLogin(a.viewCtx(c, a.Config.DefaultLocale), true))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *App) handleAdminNewPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	post := model.BlogPost{Status: model.StatusDraft}
	return Render(c, views.AdminEditor(a.viewCtx(c, a.Config.DefaultLocale), post, true))
}

func (a *App) handleAdminEditPost(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	post, err := a.Store.GetPost(c.Request().Context(), c.Param("id"))
	if errors.Is(err, model.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}
	return Render(c, views.AdminEditor(a.viewCtx(c, a.Config.DefaultLocale), post, false))
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	ctx := c.Request().Context()

	id := c.FormValue("id")
	title := strings.TrimSpace(c.FormValue("title"))
	slug := strings.TrimSpace(c.FormValue("slug"))
	if slug == "" {
		slug = Slugify(title)
	} else {
		slug = Slugify(slug)
	}
	content := c.FormValue("content")
	status := c.FormValue("status")
	if status != model.StatusPublished {
		status = model.StatusDraft
	}

	if status == model.StatusPublished && title == "" {
		return a.renderAdminDashboard(c, "A title is required to publish.")
	}
	if slug == "" && id == "" {
		return a.renderAdminDashboard(c, "A title or slug is required.")
	}

	// The image field: a fresh upload wins, then a pasted URL. Neither means
	// an existing post keeps whatever shape is already stored.
	imageField, hasImage, err := a.imageFieldFromForm(c)
	if err != nil {
		return a.renderAdminDashboard(c, "Invalid image: "+err.Error())
	}

	if id == "" {
		post := model.BlogPost{
			Title:   title,
			Slug:    slug,
			Content: content,
			Status:  status,
		}
		if hasImage {
			post.ImageURL = imageField
		}
		if _, err := a.Store.CreatePost(ctx, post); err != nil {
			return err
		}
	} else {
		upd := model.PostUpdate{
			Title:   &title,
			Slug:    &slug,
			Content: &content,
			Status:  &status,
		}
		if hasImage {
			upd.ImageURL = &imageField
		}
		if _, err := a.Store.UpdatePost(ctx, id, upd); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			return err
		}
	}

	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "saved")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	err := a.Store.DeletePost(c.Request().Context(), c.Param("id"))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return err
	}
	a.Cache.Invalidate()
	return a.renderAdminDashboard(c, "deleted")
}

// handleAdminStats reports page-view totals as JSON.
func (a *App) handleAdminStats(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	if a.analyticsStore == nil {
		return c.JSON(http.StatusOK, echo.Map{"enabled": false})
	}
	const days = 30
	total, err := a.analyticsStore.TotalViews(days)
	if err != nil {
		return err
	}
	pages, err := a.analyticsStore.Summary(days)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"enabled": true,
		"days":    days,
		"total":   total,
		"pages":   pages,
	})
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.viewCtx(c, a.Config.DefaultLocale), posts, msg))
}
