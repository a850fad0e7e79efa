// Package core holds the expense domain model and money/date helpers.
//
// Amounts are kept as integer cents everywhere; dollars only appear at the
// input boundary (form strings) and the display boundary (formatted output).
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseDollarsToCents converts a dollar-denominated string to cents with
// half-up rounding on the third decimal place.
//
// Invalid input (non-numeric, negative, empty) coerces to 0 rather than
// returning an error: form validation is expected to reject such input before
// it reaches the store, and a 0 result always fails validation anyway.
//
// Examples:
//
//	ParseDollarsToCents("12.34")  -> 1234
//	ParseDollarsToCents("12.345") -> 1235 (half-up)
//	ParseDollarsToCents("abc")    -> 0
func ParseDollarsToCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0
	}

	// First two fractional digits are cents; the third rounds half-up.
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}
	return iv*100 + frac
}

// CentsToDollars renders cents as a plain two-decimal dollar string ("12.50").
func CentsToDollars(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// FormatUSD renders cents as a display currency string with thousands
// separators, e.g. 123456789 -> "$1,234,567.89".
func FormatUSD(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}

	dollars := strconv.FormatInt(cents/100, 10)
	var b strings.Builder
	lead := len(dollars) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(dollars[:lead])
	for i := lead; i < len(dollars); i += 3 {
		b.WriteByte(',')
		b.WriteString(dollars[i : i+3])
	}

	out := "$" + b.String() + "." + pad2(cents%100)
	if neg {
		return "-" + out
	}
	return out
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
