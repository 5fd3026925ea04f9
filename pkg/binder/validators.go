package binder

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	keyRE = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// keyValidator ensures the value is a lowercase slug such as a preset key or
// an item id. The empty string is allowed so that optional keys can be left
// out; add `required` when the key must be present.
func keyValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return keyRE.MatchString(value)
}

// pathValidator ensures the value is a site-relative path (e.g. "/shop") or
// the empty string.
func pathValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "//") && !strings.ContainsAny(value, " <>\"'`\\")
}
