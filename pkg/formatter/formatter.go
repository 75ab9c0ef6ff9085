package formatter

import (
	"strings"
)

// Capitalize upper-cases the first letter of s, leaving the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// DisplayNameFromEmail derives a display name from the local part of an email
// address: "jane.doe@x.com" -> "Jane Doe". The local part is split on ".",
// "-" and "_". Returns "" when the address has no "@" or no local part.
func DisplayNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return ""
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
	for i, p := range parts {
		parts[i] = Capitalize(p)
	}
	return strings.Join(parts, " ")
}
