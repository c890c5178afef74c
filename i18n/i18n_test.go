package i18n

import "testing"

func TestLoadCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, loc := range SupportedLocales {
		if !c.Supported(loc) {
			t.Errorf("locale %q should be supported", loc)
		}
	}
	if c.Supported("de") {
		t.Error("locale \"de\" should not be supported")
	}
}

func TestTranslationLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := c.T("en", "menu.home"); got != "Home" {
		t.Errorf("T(en, menu.home) = %q, want %q", got, "Home")
	}
	if got := c.T("hu", "menu.home"); got != "Főoldal" {
		t.Errorf("T(hu, menu.home) = %q, want %q", got, "Főoldal")
	}
}

func TestTranslationFallback(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Unknown locale falls back to the default catalog.
	if got := c.T("de", "menu.home"); got != "Főoldal" {
		t.Errorf("T(de, menu.home) = %q, want default-locale value", got)
	}
	// Unknown key falls back to the key itself.
	if got := c.T("en", "no.such.key"); got != "no.such.key" {
		t.Errorf("T(en, no.such.key) = %q, want the key back", got)
	}
}

func TestMatch(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		lang string
		want string
	}{
		{"hu", "hu"},
		{"hu-HU", "hu"},
		{"en-US", "en"},
		{"en-GB", "en"},
		{"", "hu"},
		{"not-a-tag!", "hu"},
	}
	for _, tt := range tests {
		if got := c.Match(tt.lang); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}
