package utility

import (
	"regexp"
	"strings"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9-]`)
	slugHyphens    = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// whitespace becomes a hyphen, everything outside [a-z0-9-] is stripped and
// hyphen runs collapse. The derivation is deterministic and idempotent:
// Slugify(Slugify(s)) == Slugify(s).
//
// Example: "Exotic Birds!" -> "exotic-birds".
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
