package utils

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into its URL identifier: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, outer hyphens
// trimmed. "Hello, World!" -> "hello-world".
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
