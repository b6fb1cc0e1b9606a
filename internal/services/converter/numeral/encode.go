package numeral

import (
	"math"
	"strconv"
	"strings"
)

// Encode converts n to its canonical Roman numeral, largest token first.
func Encode(n int) (string, error) {
	if n < MinValue || n > MaxValue {
		return "", outOfRange(strconv.Itoa(n))
	}
	if n == 0 {
		return ZeroToken, nil
	}

	var b strings.Builder
	remainder := n
	for _, symbol := range Symbols() {
		b.WriteString(strings.Repeat(symbol.Token, remainder/symbol.Value))
		remainder %= symbol.Value
	}
	return b.String(), nil
}

// ParseNumber reads a driver-supplied integer. Anything that is not a whole
// number within [MinValue, MaxValue] fails with an out-of-range error, so
// "3.5", "abc" and "-1" are all rejected the same way.
func ParseNumber(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, outOfRange(strconv.Quote(trimmed))
	}
	if value < MinValue || value > MaxValue {
		return 0, outOfRange(trimmed)
	}
	return int(value), nil
}
