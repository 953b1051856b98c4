package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount reads a locale-formatted amount such as "Rp 1.250.000" by
// keeping only its ASCII digits. Empty input, input without digits and values
// that overflow int64 all read as 0.
func ParseAmount(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
