// Package slug derives URL-safe folder identifiers from post titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLen caps slugs at 80 code points to keep folder names manageable.
const MaxLen = 80

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`--+`)
)

// quote characters stripped from the ends of a title before slugging,
// covering both straight and curly variants.
const quoteChars = "'\"‘’“”"

// Make converts a free-text title into a slug containing only lowercase
// word characters (letters, digits, underscores) and hyphens. CJK
// ideographs are letters and pass through unchanged.
// The result may be empty; that is a valid (degenerate) slug, not an error.
func Make(title string) string {
	s := stripQuotes(strings.TrimSpace(title))
	s = strings.ToLower(s)
	s = whitespaceRun.ReplaceAllString(s, "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	s = hyphenRun.ReplaceAllString(b.String(), "-")
	s = strings.Trim(s, "-")

	if runes := []rune(s); len(runes) > MaxLen {
		s = strings.Trim(string(runes[:MaxLen]), "-")
	}
	return s
}

// stripQuotes removes one layer of surrounding quote characters.
func stripQuotes(s string) string {
	runes := []rune(s)
	if len(runes) > 0 && strings.ContainsRune(quoteChars, runes[0]) {
		runes = runes[1:]
	}
	if len(runes) > 0 && strings.ContainsRune(quoteChars, runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// allowed mirrors the Unicode word-character class plus hyphen, so accented
// Latin titles and CJK titles keep their letters instead of being mangled.
func allowed(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
