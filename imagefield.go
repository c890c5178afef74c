package praxis

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

// Decoder errors, mapped to HTTP statuses by the thumbnail endpoint.
var (
	// ErrNoImage means the post exists but carries no image field.
	ErrNoImage = errors.New("no image for post")
	// ErrBadDataURL means the field looked like a data-URL but its payload
	// did not decode as base64.
	ErrBadDataURL = errors.New("invalid data URL")
	// ErrUnsupportedImage means the field matched none of the recognized shapes.
	ErrUnsupportedImage = errors.New("unsupported image format")
)

var (
	reDataURL    = regexp.MustCompile(`^data:([^;]+);base64,(.*)$`)
	reBareBase64 = regexp.MustCompile(`^[A-Za-z0-9+/=\s]+$`)
	reHTTPURL    = regexp.MustCompile(`(?i)^https?://`)
)

// bareBase64MinLen guards against misclassifying short unrelated strings
// (a slug, a filename) as raw base64 image payloads.
const bareBase64MinLen = 100

// ResolvedImage is the outcome of classifying a post's image field.
// Exactly one of the two shapes is populated: inline bytes with a mime type,
// or a redirect location.
type ResolvedImage struct {
	Mime     string
	Data     []byte
	Redirect string
}

// Inline reports whether the image resolved to inline bytes rather than a redirect.
func (r ResolvedImage) Inline() bool {
	return r.Redirect == ""
}

// ResolveImageField classifies a stored image field and produces the bytes or
// redirect target to serve. Matching is ordered, first match wins:
//
//  1. data:<mime>;base64,<payload> — decode and serve with the declared mime
//     type; a structural match with a bad payload is an error, not a fall-through.
//  2. A bare base64 payload (base64 alphabet only, longer than a plausibility
//     threshold) — decode and serve as image/jpeg, the format not being
//     recoverable from a raw payload. A failed decode falls through.
//  3. An absolute http(s) URL — redirect the client to the original origin.
//
// Anything else, including the empty string, is unsupported. The routine is
// pure classification and transcoding; it never sniffs image bytes.
func ResolveImageField(field string) (ResolvedImage, error) {
	if field == "" {
		return ResolvedImage{}, ErrNoImage
	}

	if strings.HasPrefix(field, "data:") {
		m := reDataURL.FindStringSubmatch(field)
		if m == nil {
			return ResolvedImage{}, ErrBadDataURL
		}
		data, err := base64.StdEncoding.DecodeString(m[2])
		if err != nil {
			return ResolvedImage{}, ErrBadDataURL
		}
		return ResolvedImage{Mime: m[1], Data: data}, nil
	}

	trimmed := strings.TrimSpace(field)
	if reBareBase64.MatchString(trimmed) && len(trimmed) > bareBase64MinLen {
		compact := strings.Join(strings.Fields(trimmed), "")
		if data, err := base64.StdEncoding.DecodeString(compact); err == nil {
			return ResolvedImage{Mime: "image/jpeg", Data: data}, nil
		}
		// Not decodable after all; fall through to the URL check.
	}

	if reHTTPURL.MatchString(field) {
		return ResolvedImage{Redirect: field}, nil
	}

	return ResolvedImage{}, ErrUnsupportedImage
}
