package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the comparison form of s: trimmed, NFC-composed and case folded.
// A Caser carries state, so each call builds its own.
func Fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(s))
}

// ContainsFold reports whether needle occurs anywhere in haystack after both are folded.
func ContainsFold(haystack, needle string) bool {
	n := Fold(needle)
	if n == "" {
		return false
	}
	return strings.Contains(Fold(haystack), n)
}

// ContainsAny reports whether the already folded text contains any of the
// already folded needles. Empty needles never match.
func ContainsAny(folded string, needles []string) bool {
	for _, needle := range needles {
		if needle != "" && strings.Contains(folded, needle) {
			return true
		}
	}
	return false
}

// Length counts characters rather than bytes.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
