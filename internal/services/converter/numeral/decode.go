package numeral

import (
	"math"
	"strconv"
	"strings"
)

// repeatable letters may run at most three times in a row.
var repeatable = [...]rune{'M', 'C', 'X', 'I'}

// singleUse letters may appear at most once in a numeral.
var singleUse = [...]rune{'D', 'L', 'V'}

// Decode converts a Roman numeral to its integer value. Input is trimmed and
// compared case-insensitively.
//
// Checks run in a fixed order: empty input, zero sentinel, run length,
// single-use letters, alphabet, then the ordering scan (ascent before
// subtractive validity) and finally the range.
func Decode(input string) (int, error) {
	roman := asciiUpper(strings.TrimSpace(input))
	if roman == "" {
		return 0, emptyInput()
	}
	if roman == zeroTokenUpper {
		return 0, nil
	}

	for _, letter := range repeatable {
		if strings.Contains(roman, strings.Repeat(string(letter), 4)) {
			return 0, repeatedTooManyTimes(letter)
		}
	}
	for _, letter := range singleUse {
		if strings.Count(roman, string(letter)) > 1 {
			return 0, singleUseViolation(letter)
		}
	}

	letters := []rune(roman)
	values := make([]int, len(letters))
	for i, letter := range letters {
		value, ok := ValueOf(letter)
		if !ok {
			return 0, invalidCharacter(letter)
		}
		values[i] = value
	}

	total := 0
	least := math.MaxInt
	for i := 0; i < len(values); i++ {
		current := values[i]
		next := 0
		if i+1 < len(values) {
			next = values[i+1]
		}
		// The lookahead joins the comparison so the smaller half of a
		// subtractive pair is judged by the pair it is about to form.
		if peak := max(current, next); peak > least {
			return 0, illegalAscent(least, peak)
		}
		if next > current {
			pair := string(letters[i : i+2])
			if !isSubtrahend(current) {
				return 0, invalidSubtractive(pair)
			}
			if token, ok := TokenFor(next - current); !ok || token != pair {
				return 0, invalidSubtractive(pair)
			}
			current = next - current
			i++
		}
		least = current
		total += current
	}

	if total > MaxValue {
		return 0, outOfRange(strconv.Itoa(total))
	}
	return total, nil
}

// asciiUpper folds only a-z so letters outside ASCII never collapse onto the
// Roman alphabet (dotless i becomes I under unicode rules).
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
