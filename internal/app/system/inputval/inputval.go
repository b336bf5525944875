// internal/app/system/inputval/inputval.go

// Package inputval validates request input at the boundary, before any
// store interaction. Each endpoint has an explicit schema of required
// fields; these helpers cover the shared pieces.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a plausible bare email address.
// Display-name forms ("Name <a@b.c>") are rejected; the address must
// stand alone.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// MinPasswordLength matches the account schema's minimum.
const MinPasswordLength = 6

// IsValidPassword reports whether a candidate password meets the length
// rule. Strength checks beyond length are out of scope here.
func IsValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}
