package domain

import "strings"

// Driver represents a truck driver. ID is caller-supplied and unique
// for storage purposes; duplicate names are not the storage layer's concern.
type Driver struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NormalizePhone strips every non-digit character from a phone number.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneMatches reports whether two phone numbers refer to the same line.
// Both sides are normalized to digits and matched by mutual containment,
// which tolerates country-code prefix mismatches.
func PhoneMatches(stored, query string) bool {
	ds := NormalizePhone(stored)
	dq := NormalizePhone(query)
	if ds == "" || dq == "" {
		return false
	}
	return strings.Contains(ds, dq) || strings.Contains(dq, ds)
}
