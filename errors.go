package positive

import "errors"

// Error kinds returned by this package.
// Use [errors.Is] to test which kind an error belongs to.
var (
	// ErrInvalidValue is returned when the input is not a decimal at all:
	// NaN, infinity, nil or a malformed literal.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfBounds is returned when the input is a valid decimal but is
	// negative, greater than [Infinity] or has more than [MaxScale] digits
	// after the decimal point.
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrArithmetic is returned when an operation has no non-negative result:
	// a negative difference, division by zero, overflow or a logarithm outside
	// of its domain.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrConversion is wrapped by the panic value of a strict conversion
	// when the target representation cannot hold the value.
	ErrConversion = errors.New("conversion error")

	// ErrInvalidPrecision is returned when a rounding setting is not valid,
	// for example a negative number of decimal places.
	ErrInvalidPrecision = errors.New("invalid precision")
)

var (
	errNegativeResult = errors.New("result would be negative")
	errOverflow       = errors.New("result exceeds maximum")
	errDivisionByZero = errors.New("division by zero")
)
