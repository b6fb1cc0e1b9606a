package numeral

import apperrors "github.com/louisbranch/roman/internal/platform/errors"

// Direction names a conversion in history rows and metric labels.
const (
	DirectionToNumber = "to_number"
	DirectionToRoman  = "to_roman"
)

// ResultOK is the result recorded for a successful conversion. Failures
// record their error code instead.
const ResultOK = "OK"

// Result maps a conversion error to its recorded result.
func Result(err error) string {
	if err == nil {
		return ResultOK
	}
	return string(apperrors.GetCode(err))
}

// Converter is the two-operation contract drivers call.
type Converter interface {
	ToNumber(roman string) (int, error)
	ToRoman(n int) (string, error)
}

// Service implements Converter over the package-level symbol table. The zero
// value is ready to use and safe for concurrent callers.
type Service struct{}

// NewService returns a converter service.
func NewService() Service {
	return Service{}
}

// ToNumber decodes a Roman numeral.
func (Service) ToNumber(roman string) (int, error) {
	return Decode(roman)
}

// ToRoman encodes an integer.
func (Service) ToRoman(n int) (string, error) {
	return Encode(n)
}
