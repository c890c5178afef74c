package views

import (
	"strings"
	"testing"
	"time"

	"github.com/edelenyi/praxis/model"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		content string
		max     int
		want    string
	}{
		{"plain text", "Hello world", 50, "Hello world"},
		{"strips tags", "<p>Hello <strong>world</strong></p>", 50, "Hello world"},
		{"collapses whitespace", "a\n\n  b\t c", 50, "a b c"},
		{"empty", "", 50, ""},
	}

	for _, tt := range tests {
		if got := excerpt(tt.content, tt.max); got != tt.want {
			t.Errorf("%s: excerpt = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExcerptCutsAtWordBoundary(t *testing.T) {
	got := excerpt("one two three four five", 13)
	if got != "one two…" {
		t.Errorf("excerpt = %q, want %q", got, "one two…")
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated excerpt should end with ellipsis, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)

	if got := formatDate(ts, "hu"); got != "2025. 03. 09." {
		t.Errorf("hu date = %q, want %q", got, "2025. 03. 09.")
	}
	if got := formatDate(ts, "en"); got != "9 March 2025" {
		t.Errorf("en date = %q, want %q", got, "9 March 2025")
	}
	if got := formatDate(time.Time{}, "en"); got != "" {
		t.Errorf("zero date = %q, want empty", got)
	}
}

func TestThumbnailPath(t *testing.T) {
	p := model.BlogPost{Slug: "my-first-post"}
	if got := ThumbnailPath(p); got != "/api/thumbnail/my-first-post" {
		t.Errorf("ThumbnailPath = %q", got)
	}
}

func TestCtxPath(t *testing.T) {
	v := Ctx{Locale: "en"}
	if got := v.Path("/blog"); got != "/en/blog" {
		t.Errorf("Path = %q, want %q", got, "/en/blog")
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"hu", "blog"}, "https://example.com/hu/blog"},
		{"https://example.com/", []string{"en"}, "https://example.com/en"},
		{"https://example.com", nil, "https://example.com"},
	}

	for _, tt := range tests {
		if got := buildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("buildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
