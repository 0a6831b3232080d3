// Package card holds the pure card-number helpers: checksum validation,
// CVV shape checks and display formatting. Nothing here performs I/O and
// nothing here may retain or log a full card number.
package card

import (
	"strings"

	"github.com/shopspring/decimal"
)

const panLength = 16

// Digits strips everything except ASCII digits. This is the canonical
// card-number normalization used before validation and transmission.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidNumber reports whether raw contains exactly 16 digits forming a
// valid Luhn checksum. Separators and whitespace are ignored.
func ValidNumber(raw string) bool {
	digits := Digits(raw)
	if len(digits) != panLength {
		return false
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}

// ValidCVV reports whether raw contains 3 or 4 digits.
func ValidCVV(raw string) bool {
	n := len(Digits(raw))
	return n == 3 || n == 4
}

// ValidAmount reports whether d is a chargeable amount: strictly positive.
func ValidAmount(d decimal.Decimal) bool {
	return d.IsPositive()
}

// FormatNumber re-emits the digits of raw grouped in blocks of four
// separated by single spaces, keeping at most 16 digits. Input with no
// digits is returned unchanged so in-progress typing is preserved.
func FormatNumber(raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return raw
	}
	if len(digits) > panLength {
		digits = digits[:panLength]
	}

	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// LastFour returns the last four digits of raw, the only card fragment
// that is allowed to reach the ledger or the logs. Shorter inputs are
// returned whole.
func LastFour(raw string) string {
	digits := Digits(raw)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
