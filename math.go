package positive

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// MaxPlaces is the largest number of digits after the decimal point
// accepted by [Positive.RoundTo] and [Positive.Trunc].
const MaxPlaces = Precision

var errLogDomain = errors.New("logarithm of zero is undefined")

// intDigits returns the number of digits before the decimal point, at least 1.
func (p Positive) intDigits() int {
	n := p.d.NumDigits() + int64(p.d.Exponent)
	if n < 1 {
		return 1
	}
	return int(n)
}

// quantize rescales p to exactly places digits after the decimal point.
// The context precision is chosen so that the rescaled coefficient always fits.
func (p Positive) quantize(places int, rounding apd.Rounder) (Positive, error) {
	if places < 0 || places > MaxPlaces {
		return Positive{}, fmt.Errorf("%w: %v decimal places, want 0 to %v", ErrInvalidPrecision, places, MaxPlaces)
	}
	c := newContext(uint32(p.intDigits()+places+1), rounding)
	var d apd.Decimal
	if _, err := c.Quantize(&d, &p.d, -int32(places)); err != nil {
		return Positive{}, fmt.Errorf("%w: %v", ErrInvalidPrecision, err)
	}
	return newPositive(&d)
}

// RoundTo returns p rounded to the specified number of digits after the
// decimal point using half-to-even rounding.
// If p has fewer digits after the decimal point, the result is zero-padded
// to the right.
//
// RoundTo returns [ErrInvalidPrecision] if places is negative or greater
// than [MaxPlaces].
func (p Positive) RoundTo(places int) (Positive, error) {
	q, err := p.quantize(places, apd.RoundHalfEven)
	if err != nil {
		return Positive{}, fmt.Errorf("rounding %v: %w", p, err)
	}
	return q, nil
}

// Trunc returns p truncated to the specified number of digits after the
// decimal point.
//
// Trunc returns [ErrInvalidPrecision] if places is negative or greater
// than [MaxPlaces].
func (p Positive) Trunc(places int) (Positive, error) {
	q, err := p.quantize(places, apd.RoundDown)
	if err != nil {
		return Positive{}, fmt.Errorf("truncating %v: %w", p, err)
	}
	return q, nil
}

// Round returns p rounded to an integer using half-to-even rounding.
func (p Positive) Round() Positive {
	return p.integral("Round", decCtx.RoundToIntegralValue)
}

// Floor returns the largest integer value less than or equal to p.
func (p Positive) Floor() Positive {
	return p.integral("Floor", decCtx.Floor)
}

// Ceil returns the smallest integer value greater than or equal to p.
func (p Positive) Ceil() Positive {
	return p.integral("Ceil", decCtx.Ceil)
}

// integral applies a rounding operation that cannot fail for a value
// within the range of Positive: no value has more integer digits than
// the context precision.
func (p Positive) integral(name string, op func(d, x *apd.Decimal) (apd.Condition, error)) Positive {
	var d apd.Decimal
	if _, err := op(&d, &p.d); err != nil {
		panic(fmt.Sprintf("%v.%v() failed: %v", p, name, err))
	}
	q, err := newPositive(&d)
	if err != nil {
		panic(fmt.Sprintf("%v.%v() failed: %v", p, name, err))
	}
	return q
}

// Sqrt returns the (possibly rounded) square root of p.
// The square root of a non-negative number always exists.
func (p Positive) Sqrt() Positive {
	var d apd.Decimal
	cond, err := decCtx.Sqrt(&d, &p.d)
	q, err := fromResult(&d, cond, err)
	if err != nil {
		panic(fmt.Sprintf("%v.Sqrt() failed: %v", p, err))
	}
	return q
}

// Ln returns the (possibly rounded) natural logarithm of p.
//
// Ln returns [ErrArithmetic] if:
//   - p is 0;
//   - p < 1, because the logarithm would be negative.
func (p Positive) Ln() (Positive, error) {
	return p.log("ln", decCtx.Ln)
}

// Log10 returns the (possibly rounded) decimal logarithm of p.
//
// Log10 returns [ErrArithmetic] if:
//   - p is 0;
//   - p < 1, because the logarithm would be negative.
func (p Positive) Log10() (Positive, error) {
	return p.log("log10", decCtx.Log10)
}

func (p Positive) log(name string, op func(d, x *apd.Decimal) (apd.Condition, error)) (Positive, error) {
	if p.IsZero() {
		return Positive{}, fmt.Errorf("computing %v(%v): %w: %w", name, p, ErrArithmetic, errLogDomain)
	}
	if p.Less(One) {
		return Positive{}, fmt.Errorf("computing %v(%v): %w: %w", name, p, ErrArithmetic, errNegativeResult)
	}
	var d apd.Decimal
	cond, err := op(&d, &p.d)
	q, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing %v(%v): %w", name, p, err)
	}
	return q, nil
}

// Exp returns the (possibly rounded) exponential of p.
//
// Exp returns [ErrArithmetic] if the result is greater than [Infinity].
func (p Positive) Exp() (Positive, error) {
	var d apd.Decimal
	cond, err := decCtx.Exp(&d, &p.d)
	q, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing exp(%v): %w", p, err)
	}
	return q, nil
}

// Pow returns the (possibly rounded) value of p raised to the power e.
// Any value raised to the power 0 is 1, including 0.
//
// Pow returns [ErrArithmetic] if the result is greater than [Infinity].
func (p Positive) Pow(e Positive) (Positive, error) {
	switch {
	case e.IsZero():
		return One, nil
	case p.IsZero():
		return Zero, nil
	}
	return p.pow(&e.d)
}

// PowInt returns the (possibly rounded) value of p raised to the integer power n.
// Any value raised to the power 0 is 1, including 0.
//
// PowInt returns [ErrArithmetic] if:
//   - p is 0 and n is negative;
//   - the result is greater than [Infinity].
func (p Positive) PowInt(n int64) (Positive, error) {
	switch {
	case n == 0:
		return One, nil
	case p.IsZero() && n < 0:
		return Positive{}, fmt.Errorf("computing [%v^%v]: %w: %w", p, n, ErrArithmetic, errDivisionByZero)
	case p.IsZero():
		return Zero, nil
	}
	return p.pow(apd.New(n, 0))
}

func (p Positive) pow(e *apd.Decimal) (Positive, error) {
	var d apd.Decimal
	cond, err := decCtx.Pow(&d, &p.d, e)
	q, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing [%v^%v]: %w", p, e.Text('f'), err)
	}
	return q, nil
}
