// Package sanitize cleans extracted text before it is sent to the LLM.
// Cleaning is deterministic and idempotent on already-clean input.
package sanitize

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// MaxLength caps cleaned text to keep prompts within token limits
const MaxLength = 100000

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// script-injection noise that survives tag stripping
	denylistRes = []*regexp.Regexp{
		regexp.MustCompile(`javascript:void\(0\)`),
		regexp.MustCompile(`window\.location\.href`),
		regexp.MustCompile(`document\.`),
	}
)

// strict policy strips every tag, keeping text content only; a space per
// stripped tag keeps adjacent words from merging
var stripPolicy = bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)

// Clean decodes HTML entities, strips tags, removes injection noise,
// collapses whitespace and truncates to MaxLength runes.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := DecodeEntities(text)

	for _, re := range denylistRes {
		cleaned = re.ReplaceAllString(cleaned, " ")
	}

	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if runes := []rune(cleaned); len(runes) > MaxLength {
		cleaned = strings.TrimSpace(string(runes[:MaxLength]))
	}

	return cleaned
}

// DecodeEntities decodes named and numeric HTML entities and replaces any
// remaining tags with spaces
func DecodeEntities(text string) string {
	if text == "" {
		return ""
	}

	// strip markup first so entity decoding can't create new tags
	decoded := stripPolicy.Sanitize(text)

	// bluemonday escapes text content, so unescape after stripping
	decoded = html.UnescapeString(decoded)

	// leftover angle-bracket fragments from malformed markup
	decoded = tagRe.ReplaceAllString(decoded, " ")

	return strings.TrimSpace(decoded)
}
