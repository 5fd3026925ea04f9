package htmlutil

import (
	"regexp"
	"strings"
)

// tagPattern matches HTML tags including self-closing tags and comments.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// scriptPattern and stylePattern match whole script/style elements so their
// content is dropped along with the tags.
var (
	scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	stylePattern  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
)

// whitespacePattern matches any run of whitespace, including newlines.
var whitespacePattern = regexp.MustCompile(`\s+`)

// StripAllTags removes every HTML tag from s. Script and style elements are
// removed together with their content. Line breaks and entities are left
// alone, so the result is safe to use as plain text but otherwise unchanged.
// Applying it twice gives the same result as applying it once.
func StripAllTags(s string) string {
	if s == "" {
		return ""
	}

	result := strings.ToValidUTF8(s, "")
	result = scriptPattern.ReplaceAllString(result, "")
	result = stylePattern.ReplaceAllString(result, "")
	result = tagPattern.ReplaceAllString(result, "")

	return strings.TrimSpace(result)
}

// SanitizeText strips tags like StripAllTags and then collapses all
// whitespace, line breaks included, to single spaces. Use it for single-line
// values such as labels, roles and CSS tokens.
func SanitizeText(s string) string {
	result := StripAllTags(s)
	if result == "" {
		return ""
	}
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(result, " "))
}
