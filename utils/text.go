package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CollapseWhitespace replaces every run of whitespace, including no-break
// and narrow no-break spaces, with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// NormalizeLabel folds s to NFKC and lower case for keyword matching.
func NormalizeLabel(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

// JoinPages concatenates page texts and collapses the whitespace between them.
func JoinPages(pages []string) string {
	return CollapseWhitespace(strings.Join(pages, " "))
}
