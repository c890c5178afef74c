package praxis

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// pngHeader is the payload of the smallest data-URL worth testing,
// the 8-byte PNG signature.
const pngHeaderB64 = "iVBORw0KGgo="

func TestResolveDataURL(t *testing.T) {
	img, err := ResolveImageField("data:image/png;base64," + pngHeaderB64)
	if err != nil {
		t.Fatalf("ResolveImageField failed: %v", err)
	}
	if !img.Inline() {
		t.Fatal("expected inline bytes, got redirect")
	}
	if img.Mime != "image/png" {
		t.Errorf("Mime = %q, want %q", img.Mime, "image/png")
	}
	want, _ := base64.StdEncoding.DecodeString(pngHeaderB64)
	if !bytes.Equal(img.Data, want) {
		t.Errorf("Data = %v, want %v", img.Data, want)
	}
}

func TestResolveDataURLKeepsDeclaredMime(t *testing.T) {
	// The declared mime is served as-is, even when the payload is not an
	// image of that type. No sniffing.
	img, err := ResolveImageField("data:image/webp;base64," + pngHeaderB64)
	if err != nil {
		t.Fatalf("ResolveImageField failed: %v", err)
	}
	if img.Mime != "image/webp" {
		t.Errorf("Mime = %q, want %q", img.Mime, "image/webp")
	}
}

func TestResolveBadDataURL(t *testing.T) {
	tests := []struct {
		name  string
		field string
	}{
		{"payload not base64", "data:image/png;base64,!!not-base64!!"},
		{"missing base64 marker", "data:image/png,rawbytes"},
		{"no mime", "data:base64,abcd"},
	}

	for _, tt := range tests {
		_, err := ResolveImageField(tt.field)
		if !errors.Is(err, ErrBadDataURL) {
			t.Errorf("%s: err = %v, want ErrBadDataURL", tt.name, err)
		}
	}
}

func TestResolveBareBase64(t *testing.T) {
	// A raw payload well past the length threshold decodes and is served
	// as image/jpeg, the only type assumable without a declaration.
	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xff, 0xd8}, 60))
	if len(payload) <= bareBase64MinLen {
		t.Fatalf("test payload too short: %d", len(payload))
	}

	img, err := ResolveImageField(payload)
	if err != nil {
		t.Fatalf("ResolveImageField failed: %v", err)
	}
	if img.Mime != "image/jpeg" {
		t.Errorf("Mime = %q, want %q", img.Mime, "image/jpeg")
	}
	if len(img.Data) != 120 {
		t.Errorf("decoded %d bytes, want 120", len(img.Data))
	}
}

func TestResolveBareBase64WithWhitespace(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0xab}, 90))
	// Wrapped payloads show up when the value was pasted from a shell.
	wrapped := payload[:40] + "\n" + payload[40:80] + "\n" + payload[80:]

	img, err := ResolveImageField(wrapped)
	if err != nil {
		t.Fatalf("ResolveImageField failed: %v", err)
	}
	if len(img.Data) != 90 {
		t.Errorf("decoded %d bytes, want 90", len(img.Data))
	}
}

func TestResolveShortBase64IsUnsupported(t *testing.T) {
	// Short strings of base64 alphabet are too likely to be something
	// else entirely; they must not be decoded.
	_, err := ResolveImageField("abcd1234")
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("err = %v, want ErrUnsupportedImage", err)
	}
}

func TestResolveHTTPURL(t *testing.T) {
	tests := []string{
		"https://cdn.example.com/photo.jpg",
		"http://example.com/img.png",
		"HTTPS://EXAMPLE.COM/UPPER.JPG",
	}

	for _, field := range tests {
		img, err := ResolveImageField(field)
		if err != nil {
			t.Fatalf("ResolveImageField(%q) failed: %v", field, err)
		}
		if img.Inline() {
			t.Errorf("ResolveImageField(%q) should redirect", field)
		}
		if img.Redirect != field {
			t.Errorf("Redirect = %q, want %q", img.Redirect, field)
		}
	}
}

func TestResolveEmptyField(t *testing.T) {
	_, err := ResolveImageField("")
	if !errors.Is(err, ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
}

func TestResolveUnsupported(t *testing.T) {
	tests := []string{
		"ftp://example.com/photo.jpg",
		"/uploads/photo.jpg",
		"not an image at all",
		strings.Repeat("_", 200), // long but outside the base64 alphabet
	}

	for _, field := range tests {
		_, err := ResolveImageField(field)
		if !errors.Is(err, ErrUnsupportedImage) {
			t.Errorf("ResolveImageField(%q) err = %v, want ErrUnsupportedImage", field, err)
		}
	}
}

func TestResolveUndecodableLongBase64FallsThrough(t *testing.T) {
	// Matches the base64 alphabet and is long enough, but padding is
	// misplaced so the decode fails. The classifier must fall through
	// rather than report a bad payload.
	field := "=" + strings.Repeat("A", 120)
	_, err := ResolveImageField(field)
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("err = %v, want ErrUnsupportedImage", err)
	}
}
