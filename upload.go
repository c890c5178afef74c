package praxis

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	_ "image/gif"
	_ "image/png"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 80
	maxUploadSize = 5 << 20 // matches the editor's 5MB limit
)

// imageFieldFromForm extracts the post's image field from the editor form.
// A fresh file upload is converted to a data-URL; otherwise a pasted URL (or
// an explicitly cleared field) is taken verbatim. The boolean reports
// whether the form said anything about the image at all.
func (a *App) imageFieldFromForm(c echo.Context) (string, bool, error) {
	// FormFile errors mean "no usable upload" here, whatever their cause;
	// the pasted-URL input below is the fallback either way.
	if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
		if file.Size > maxUploadSize {
			return "", false, fmt.Errorf("file too large (max 5MB)")
		}
		src, err := file.Open()
		if err != nil {
			return "", false, err
		}
		defer src.Close()
		dataURL, err := encodeImageDataURL(src)
		if err != nil {
			return "", false, err
		}
		return dataURL, true, nil
	}

	if url := strings.TrimSpace(c.FormValue("image_url")); url != "" {
		return url, true, nil
	}
	return "", false, nil
}

// encodeImageDataURL decodes an uploaded image, downscales it to a sane
// width, and re-encodes it as a JPEG data-URL for inline storage on the
// post document.
func encodeImageDataURL(src io.Reader) (string, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
