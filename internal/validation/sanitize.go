// Package validation provides input sanitization and format checks for
// everything that arrives from the outside world.
package validation

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// The portal allows no HTML at all in user input.
var stripPolicy = bluemonday.StrictPolicy()

var referencePattern = regexp.MustCompile(`^REF-\d{4}-\d{3}$`)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// SanitizeText strips all HTML from the input and returns plain text,
// enforcing maxLength in runes (0 = unlimited) and trimming surrounding
// whitespace.
//
// Stripping and entity decoding alternate until a fixed point: decoding may
// reveal markup that was entity-encoded (&lt;script&gt;...), which must be
// stripped again rather than stored re-armed.
func SanitizeText(text string, maxLength int) string {
	sanitized := text
	for {
		stripped := html.UnescapeString(stripPolicy.Sanitize(sanitized))
		if stripped == sanitized {
			break
		}
		sanitized = stripped
	}

	if maxLength > 0 && utf8.RuneCountInString(sanitized) > maxLength {
		sanitized = string([]rune(sanitized)[:maxLength])
	}

	return strings.TrimSpace(sanitized)
}

// ValidReference reports whether the reference matches REF-YYYY-NNN exactly.
// Callers normalize to upper case first.
func ValidReference(reference string) bool {
	return referencePattern.MatchString(reference)
}

// ValidEmail is a basic shape check, not an exhaustive RFC validation.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
