package numeral

import "strings"

const (
	// MinValue is the smallest convertible integer.
	MinValue = 0
	// MaxValue is the largest convertible integer.
	MaxValue = 3999
	// ZeroToken is the textual zero. Comparisons ignore case.
	ZeroToken = "nulla"
)

// Symbol pairs a canonical token with its integer value.
type Symbol struct {
	Token string
	Value int
}

// symbols is ordered by strictly decreasing value and never mutated.
var symbols = [...]Symbol{
	{Token: "M", Value: 1000},
	{Token: "CM", Value: 900},
	{Token: "D", Value: 500},
	{Token: "CD", Value: 400},
	{Token: "C", Value: 100},
	{Token: "XC", Value: 90},
	{Token: "L", Value: 50},
	{Token: "XL", Value: 40},
	{Token: "X", Value: 10},
	{Token: "IX", Value: 9},
	{Token: "V", Value: 5},
	{Token: "IV", Value: 4},
	{Token: "I", Value: 1},
}

var zeroTokenUpper = strings.ToUpper(ZeroToken)

// Symbols returns the canonical tokens from largest to smallest value.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols[:])
	return out
}

// ValueOf returns the value of a single uppercase Roman letter.
func ValueOf(letter rune) (int, bool) {
	switch letter {
	case 'M':
		return 1000, true
	case 'D':
		return 500, true
	case 'C':
		return 100, true
	case 'L':
		return 50, true
	case 'X':
		return 10, true
	case 'V':
		return 5, true
	case 'I':
		return 1, true
	default:
		return 0, false
	}
}

// TokenFor returns the canonical token whose value is exactly value.
func TokenFor(value int) (string, bool) {
	for _, symbol := range symbols {
		if symbol.Value == value {
			return symbol.Token, true
		}
	}
	return "", false
}

// isSubtrahend reports whether value may precede a larger symbol.
func isSubtrahend(value int) bool {
	return value == 1 || value == 10 || value == 100
}
