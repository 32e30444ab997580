package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{16}$`)
	cvvRegex        = regexp.MustCompile(`^\d{3,4}$`)
	expiryRegex     = regexp.MustCompile(`^(\d{2})/(\d{4})$`)
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitsRegex  = regexp.MustCompile(`\D`)
)

var ErrInvalidExpiry = errors.New("invalid expiry date")

// CardNumber reports whether s is exactly 16 decimal digits. It is a
// format check only, independent of whether the card exists.
func CardNumber(s string) bool {
	return cardNumberRegex.MatchString(s)
}

// CVV reports whether s is 3 or 4 decimal digits.
func CVV(s string) bool {
	return cvvRegex.MatchString(s)
}

// Digits strips every non-digit character from s.
func Digits(s string) string {
	return nonDigitsRegex.ReplaceAllString(s, "")
}

// CPF checks the tax id format: 11 digits after stripping punctuation,
// rejecting all-identical sequences. The check digits are not verified.
func CPF(s string) bool {
	digits := Digits(s)
	if len(digits) != 11 {
		return false
	}
	return digits != strings.Repeat(digits[:1], 11)
}

// PrintedName requires at least two whitespace-separated tokens.
func PrintedName(s string) bool {
	return len(strings.Fields(s)) >= 2
}

// PrintedNameMatches compares two card holder names ignoring case and
// redundant whitespace.
func PrintedNameMatches(supplied, stored string) bool {
	return normalizeName(supplied) == normalizeName(stored)
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Email validates email format.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// ParseExpiry parses an MM/AAAA string into the normalized expiry: the
// last calendar day of the stated month, at midnight UTC.
func ParseExpiry(s string) (time.Time, error) {
	m := expiryRegex.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, ErrInvalidExpiry
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, ErrInvalidExpiry
	}
	return LastDayOfMonth(year, month), nil
}

// LastDayOfMonth returns midnight UTC on the last day of the month.
func LastDayOfMonth(year, month int) time.Time {
	// Day zero of the next month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

// Expiry reports whether s is a well-formed MM/AAAA date no earlier
// than the current month.
func Expiry(s string) bool {
	return ExpiryAt(s, time.Now().UTC())
}

// ExpiryAt is Expiry evaluated against an arbitrary reference time.
func ExpiryAt(s string, now time.Time) bool {
	normalized, err := ParseExpiry(s)
	if err != nil {
		return false
	}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return !normalized.Before(firstOfMonth)
}
