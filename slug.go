package praxis

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9-]+`)
	slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	slugDeaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify derives a URL path segment from a human-entered title: accents are
// stripped (titles here are typically Hungarian), the result is lowercased,
// runs of non-alphanumeric characters collapse to a single hyphen, and
// leading/trailing hyphens are trimmed. It is deterministic and idempotent.
//
// No uniqueness check is performed; two posts may end up with the same slug
// and lookup then returns whichever the store finds first.
func Slugify(s string) string {
	out, _, err := transform.String(slugDeaccent, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(out)
	out = slugNonAlnum.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// IsValidSlug reports whether s is already in canonical slug form.
func IsValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	return !slugInvalid.MatchString(s) && !strings.Contains(s, "--")
}
