// Package slug derives URL-safe identifiers from free-form names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const maxLen = 100

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Make turns free-form text into a [a-z0-9-] slug: diacritics stripped,
// separators collapsed, trimmed, hard-limited to 100 runes. Empty input
// falls back to "profile".
func Make(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Strip combining marks so "José" folds to "jose"
	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = reNonAlnum.ReplaceAllString(s, "-")
	s = reHyphen.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "profile"
	}
	if len([]rune(s)) > maxLen {
		rs := []rune(s)
		s = strings.Trim(string(rs[:maxLen]), "-")
	}
	if s == "" {
		s = "profile"
	}
	return s
}

// WithSuffix appends a short random suffix so repeated approvals of the same
// name do not collide on the unique slug column.
func WithSuffix(name string) string {
	return Make(name) + "-" + uuid.NewString()[:8]
}
