package util

import (
	"regexp"
	"strings"
)

var reNonToken = regexp.MustCompile(`[^0-9A-Za-z]+`)

// SanitizeToken collapses every run of non-alphanumeric characters to a
// single dash and trims dangling dashes, leaving a string safe for use
// inside a filename.
func SanitizeToken(s string) string {
	return strings.Trim(reNonToken.ReplaceAllString(s, "-"), "-")
}

// FirstNonEmpty returns the first value whose trimmed form is non-empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
