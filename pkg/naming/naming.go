// Package naming converts arbitrary collection item names into
// filesystem-safe, CONSTANT_CASE and camelCase identifiers.
package naming

import (
	"strings"
	"unicode"
)

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// FileSafe replaces every character outside [A-Za-z0-9] with an underscore.
// The result has the same length as the input and is safe to use as a
// directory or file name on any platform.
func FileSafe(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if isAlnum(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ConstantName builds a CONSTANT_CASE identifier from a folder name.
// Non-alphanumeric characters become underscores and camelCase word
// boundaries are split, so "ComponentVersions" becomes "COMPONENT_VERSIONS".
func ConstantName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	b.Grow(len(runes))
	for i, r := range runes {
		if !isAlnum(r) {
			b.WriteByte('_')
			continue
		}
		if i > 0 && unicode.IsLower(runes[i-1]) && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// CamelIdentifier builds a camelCase identifier from a request name:
// "Get All Users" becomes "getAllUsers". Non-alphanumeric characters act
// as word separators and never appear in the output.
func CamelIdentifier(name string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(name))
	for _, r := range name {
		if isAlnum(r) {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteByte(' ')
		}
	}

	var b strings.Builder
	for i, word := range strings.Fields(cleaned.String()) {
		if i == 0 {
			b.WriteString(strings.ToLower(word))
			continue
		}
		runes := []rune(word)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}
