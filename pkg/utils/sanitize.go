package utils

import "strings"

// Alphanumeric strips every character that is not an ASCII letter or digit.
// Used on user-supplied handles before they reach a database query.
func Alphanumeric(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, c := range input {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// NormalizeName converts a handle to its stored form: trimmed and lowercase.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
