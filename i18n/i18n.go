// Package i18n provides the translation catalogs for the public site.
// Locale files are embedded JSON maps of dotted keys to translated strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed locales
var localesFS embed.FS

// SupportedLocales lists the languages the site is served in. The first
// entry is the fallback when a key is missing from another catalog.
var SupportedLocales = []string{"hu", "en"}

// Catalog holds translations for all supported locales.
type Catalog struct {
	translations map[string]map[string]string
	matcher      language.Matcher
	fallback     string
}

// Load reads every embedded locale file and builds the catalog.
func Load() (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		fallback:     SupportedLocales[0],
	}

	tags := make([]language.Tag, 0, len(SupportedLocales))
	for _, loc := range SupportedLocales {
		tags = append(tags, language.MustParse(loc))

		data, err := localesFS.ReadFile(fmt.Sprintf("locales/%s.json", loc))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", loc, err)
		}
		msgs := make(map[string]string)
		if err := json.Unmarshal(data, &msgs); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", loc, err)
		}
		c.translations[loc] = msgs
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// Supported reports whether loc is a locale the site serves.
func (c *Catalog) Supported(loc string) bool {
	_, ok := c.translations[loc]
	return ok
}

// Match resolves an arbitrary language string (e.g. from Accept-Language)
// to the closest supported locale.
func (c *Catalog) Match(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return c.fallback
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return c.fallback
	}
	return SupportedLocales[idx]
}

// T returns the translation for key in the given locale. Missing keys fall
// back to the default locale, then to the key itself so untranslated pages
// stay debuggable instead of blank.
func (c *Catalog) T(locale, key string) string {
	if msgs, ok := c.translations[locale]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}
	if msgs, ok := c.translations[c.fallback]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}
	return key
}
