// Package money converts between free-text monetary amounts and signed
// integers in minor currency units (cents).
//
// Parsing accepts both separator conventions: "1.234,56" (decimal comma,
// dot grouping) and "1,234.56" (decimal dot, comma grouping), as well as
// bare numbers like "1234" or "1234.56". Formatting always emits the
// decimal-comma convention. All arithmetic is integer; no float64 ever
// touches an amount.
package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a string cannot be read as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Parse converts a free-text amount to signed minor units.
//
// When both separators appear, the last-occurring one is the decimal point
// and the other is grouping. A lone comma is the decimal point only when
// followed by exactly two trailing digits; otherwise it is grouping. This
// disambiguation is a best-effort locale guess and is deliberately confined
// to this package.
func Parse(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty string: %w", ErrInvalidAmount)
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	if s == "" {
		return 0, fmt.Errorf("bare sign: %w", ErrInvalidAmount)
	}

	whole, frac, err := splitDecimal(s)
	if err != nil {
		return 0, err
	}

	cents, err := toCents(whole, frac)
	if err != nil {
		return 0, err
	}
	if neg {
		cents = -cents
	}
	return cents, nil
}

// Format renders minor units as display text: integer part grouped by dots
// in threes, decimal comma, always two fraction digits, sign only when
// negative. Format(-123456) == "-1.234,56".
func Format(cents int64) string {
	neg := cents < 0
	abs := uint64(cents)
	if neg {
		abs = -abs
	}

	out := groupThousands(abs/100) + "," + fmt.Sprintf("%02d", abs%100)
	if neg {
		return "-" + out
	}
	return out
}

// splitDecimal separates the digit runs on either side of the decimal
// point, stripping grouping separators. Either run may be empty, not both.
func splitDecimal(s string) (whole, frac string, err error) {
	lastComma := strings.LastIndexByte(s, ',')
	lastDot := strings.LastIndexByte(s, '.')

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			lastComma = strings.LastIndexByte(s, ',')
			whole, frac = s[:lastComma], s[lastComma+1:]
		} else {
			s = strings.ReplaceAll(s, ",", "")
			lastDot = strings.LastIndexByte(s, '.')
			whole, frac = s[:lastDot], s[lastDot+1:]
		}
	case lastComma >= 0:
		if decimalComma(s, lastComma) {
			whole, frac = s[:lastComma], s[lastComma+1:]
		} else {
			whole = strings.ReplaceAll(s, ",", "")
		}
	case lastDot >= 0:
		whole, frac = s[:lastDot], s[lastDot+1:]
	default:
		whole = s
	}

	if whole == "" && frac == "" {
		return "", "", fmt.Errorf("no digits: %w", ErrInvalidAmount)
	}
	if !allDigits(whole) || !allDigits(frac) {
		return "", "", fmt.Errorf("%q: %w", s, ErrInvalidAmount)
	}
	return whole, frac, nil
}

// decimalComma reports whether the comma at position i reads as a decimal
// point: exactly two digits follow it to end of string. Any further comma
// left in the integer part fails digit validation afterwards.
func decimalComma(s string, i int) bool {
	return len(s)-i-1 == 2
}

// toCents combines the digit runs into minor units. Fractions longer than
// two digits round half away from zero.
func toCents(whole, frac string) (int64, error) {
	var units uint64
	if whole != "" {
		var err error
		units, err = strconv.ParseUint(whole, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("integer part %q: %w", whole, ErrInvalidAmount)
		}
	}

	var hundredths uint64
	switch {
	case frac == "":
	case len(frac) == 1:
		hundredths = uint64(frac[0]-'0') * 10
	default:
		hundredths = uint64(frac[0]-'0')*10 + uint64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			hundredths++
		}
	}

	if units > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("amount out of range: %w", ErrInvalidAmount)
	}
	return int64(units*100 + hundredths), nil
}

func groupThousands(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
