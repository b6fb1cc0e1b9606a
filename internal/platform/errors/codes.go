// Package errors provides structured error handling with i18n support.
package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Numeral errors
	CodeNumeralEmptyInput               Code = "NUMERAL_EMPTY_INPUT"
	CodeNumeralInvalidCharacter         Code = "NUMERAL_INVALID_CHARACTER"
	CodeNumeralRepeatedTooManyTimes     Code = "NUMERAL_REPEATED_TOO_MANY_TIMES"
	CodeNumeralSingleUseViolation       Code = "NUMERAL_SINGLE_USE_VIOLATION"
	CodeNumeralIllegalAscent            Code = "NUMERAL_ILLEGAL_ASCENT"
	CodeNumeralInvalidSubtractiveSymbol Code = "NUMERAL_INVALID_SUBTRACTIVE_SYMBOL"
	CodeNumeralOutOfRange               Code = "NUMERAL_OUT_OF_RANGE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeNumeralEmptyInput,
		CodeNumeralInvalidCharacter,
		CodeNumeralRepeatedTooManyTimes,
		CodeNumeralSingleUseViolation,
		CodeNumeralIllegalAscent,
		CodeNumeralInvalidSubtractiveSymbol,
		CodeNumeralOutOfRange:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c.GRPCCode() {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
