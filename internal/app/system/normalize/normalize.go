// internal/app/system/normalize/normalize.go

// Package normalize provides canonicalization helpers applied to user
// input before validation or persistence.
package normalize

import "strings"

// Email lowercases and trims an email address. Emails are stored and
// looked up in this normalized form so lookups are case-insensitive.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// QueryParam trims a free-form query or body string.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}
