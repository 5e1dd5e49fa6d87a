// Package identity decides whether two person-records denote the same
// individual. Matching is a boolean oracle over normalized phone and
// email values; there is no fuzzy matching and no confidence score.
package identity

import "strings"

// NormalizePhone strips every non-digit rune and, when more than 10
// digits remain, keeps the last 10. Payments come in as "+91 98765 43210",
// subscriptions as "9876543210" or 919876543210; dropping the country
// prefix on both sides is the only rule that makes them comparable.
// Idempotent: normalizing an already-normalized value is a no-op.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits
}

// NormalizeEmail trims surrounding whitespace and lower-cases.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Identity is the canonical comparison key for a person-record. Build it
// through NewIdentity so every comparison site sees already-normalized
// values instead of re-normalizing ad hoc.
type Identity struct {
	Phone string
	Email string
}

// NewIdentity canonicalizes a raw phone/email pair.
func NewIdentity(phone, email string) Identity {
	return Identity{
		Phone: NormalizePhone(phone),
		Email: NormalizeEmail(email),
	}
}

// MatchPhone reports whether both identities carry a phone and the
// phones are equal.
func MatchPhone(a, b Identity) bool {
	return a.Phone != "" && a.Phone == b.Phone
}

// MatchEmail reports whether both identities carry an email and the
// emails are equal.
func MatchEmail(a, b Identity) bool {
	return a.Email != "" && a.Email == b.Email
}

// Match reports whether a and b denote the same person: equal non-empty
// phones or equal non-empty emails. Symmetric.
func Match(a, b Identity) bool {
	return MatchPhone(a, b) || MatchEmail(a, b)
}
