package numeral

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/roman/internal/platform/errors"
)

// Sentinels for errors.Is; matching is by code only.
var (
	ErrEmptyInput               = apperrors.New(apperrors.CodeNumeralEmptyInput, "numeral is empty")
	ErrInvalidCharacter         = apperrors.New(apperrors.CodeNumeralInvalidCharacter, "numeral has an invalid character")
	ErrRepeatedTooManyTimes     = apperrors.New(apperrors.CodeNumeralRepeatedTooManyTimes, "numeral repeats a symbol too many times")
	ErrSingleUseViolation       = apperrors.New(apperrors.CodeNumeralSingleUseViolation, "numeral repeats a single-use symbol")
	ErrIllegalAscent            = apperrors.New(apperrors.CodeNumeralIllegalAscent, "numeral ascends")
	ErrInvalidSubtractiveSymbol = apperrors.New(apperrors.CodeNumeralInvalidSubtractiveSymbol, "numeral has an invalid subtractive pair")
	ErrOutOfRange               = apperrors.New(apperrors.CodeNumeralOutOfRange, "value is out of range")
)

func emptyInput() error {
	return apperrors.New(apperrors.CodeNumeralEmptyInput, "numeral is empty")
}

func invalidCharacter(letter rune) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralInvalidCharacter,
		fmt.Sprintf("invalid roman character %q", letter),
		map[string]string{"Character": string(letter)},
	)
}

func repeatedTooManyTimes(letter rune) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralRepeatedTooManyTimes,
		fmt.Sprintf("%c repeated 4 times in a row", letter),
		map[string]string{"Symbol": string(letter)},
	)
}

func singleUseViolation(letter rune) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralSingleUseViolation,
		fmt.Sprintf("%c used more than once", letter),
		map[string]string{"Symbol": string(letter)},
	)
}

func illegalAscent(least, value int) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralIllegalAscent,
		fmt.Sprintf("cannot go up: %d to %d", least, value),
		map[string]string{"Least": strconv.Itoa(least), "Value": strconv.Itoa(value)},
	)
}

func invalidSubtractive(pair string) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralInvalidSubtractiveSymbol,
		fmt.Sprintf("invalid subtractive pair %s", pair),
		map[string]string{"Pair": pair},
	)
}

func outOfRange(value string) error {
	return apperrors.WithMetadata(
		apperrors.CodeNumeralOutOfRange,
		fmt.Sprintf("value %s is outside %d-%d", value, MinValue, MaxValue),
		map[string]string{"Value": value},
	)
}
