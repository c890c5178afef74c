package praxis

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edelenyi/praxis/model"
)

// thumbnailCacheControl marks successfully decoded image bytes cacheable for
// a day; blog images change rarely. Redirect responses carry no server-side
// cache directive, the origin's policy governs those.
const thumbnailCacheControl = "public, max-age=86400"

// handleThumbnail resolves a post's stored image field into an image
// response: decoded bytes for data-URLs and raw base64 payloads, a 307
// redirect for externally hosted images. Errors are JSON, matching the rest
// of the API surface.
func (a *App) handleThumbnail(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing slug"})
	}

	post, err := a.Store.GetPostBySlug(c.Request().Context(), slug)
	if errors.Is(err, model.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Post not found"})
	}
	if err != nil {
		return err
	}

	img, err := ResolveImageField(post.ImageURL)
	switch {
	case errors.Is(err, ErrNoImage):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No image for post"})
	case errors.Is(err, ErrBadDataURL):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid data URL"})
	case errors.Is(err, ErrUnsupportedImage):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unsupported image format"})
	case err != nil:
		return err
	}

	if !img.Inline() {
		return c.Redirect(http.StatusTemporaryRedirect, img.Redirect)
	}

	h := c.Response().Header()
	h.Set("Cache-Control", thumbnailCacheControl)
	h.Set(echo.HeaderContentLength, strconv.Itoa(len(img.Data)))
	return c.Blob(http.StatusOK, img.Mime, img.Data)
}
