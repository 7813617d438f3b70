package positive

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Positive type is a representation of a non-negative decimal number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A positive value can only be obtained from a validating constructor,
// from one of the named constants, or as the result of an operation
// on other positive values.
// Methods never modify the receiver; they return a new value instead.
//
// Positive values must be compared using [Positive.Cmp] or [Positive.Equal]
// rather than the == operator, because the same number can have several
// representations, for example 1, 1.0 and 1.00.
type Positive struct {
	d apd.Decimal // never negative, never mutated after construction
}

// Precision is the number of significant digits kept by arithmetic
// operations whose exact result does not fit.
const Precision = 34

// MaxScale is the largest number of digits after the decimal point
// a positive value can have.
// Results with more digits are rounded half-to-even to MaxScale digits.
const MaxScale = 1000

var (
	// decCtx is shared by all operations and never modified.
	decCtx = newContext(Precision, apd.RoundHalfEven)

	// truncCtx is used when the fractional part must be discarded.
	truncCtx = newContext(Precision, apd.RoundDown)

	maxDecimal = mustDecimal("79228162514264337593543950335")
)

func newContext(prec uint32, rounding apd.Rounder) *apd.Context {
	c := apd.BaseContext.WithPrecision(prec)
	c.Rounding = rounding
	return c
}

func mustDecimal(s string) apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("mustDecimal(%q) failed: %v", s, err))
	}
	return *d
}

var (
	Zero     = MustParse("0")
	One      = MustParse("1")
	Two      = MustParse("2")
	Ten      = MustParse("10")
	Hundred  = MustParse("100")
	Thousand = MustParse("1000")
	Pi       = MustParse("3.1415926535897932384626433833")

	// Infinity is the largest value a Positive can hold.
	// Operations whose result would exceed it fail with [ErrArithmetic].
	Infinity = Positive{d: maxDecimal}
)

// newPositive is the only place where the invariant is checked.
// Every constructor and every operation goes through it.
func newPositive(d *apd.Decimal) (Positive, error) {
	switch {
	case d == nil:
		return Positive{}, fmt.Errorf("%w: nil decimal", ErrInvalidValue)
	case d.Form != apd.Finite:
		return Positive{}, fmt.Errorf("%w: %v is not finite", ErrInvalidValue, d)
	case d.Sign() < 0:
		return Positive{}, fmt.Errorf("%w: %v is negative", ErrOutOfBounds, d)
	case d.Cmp(&maxDecimal) > 0:
		return Positive{}, fmt.Errorf("%w: %v is greater than %v", ErrOutOfBounds, d, &maxDecimal)
	}
	var p Positive
	p.d.Set(d)
	p.d.Negative = false // -0
	switch {
	case p.d.IsZero() && p.d.Exponent > 0:
		p.d.Exponent = 0 // 0e+50000
	case p.d.Exponent < -MaxScale:
		p.d.Reduce(&p.d) // 1.000...0
		if p.d.Exponent < -MaxScale {
			return Positive{}, fmt.Errorf("%w: %v has more than %v digits after the decimal point", ErrOutOfBounds, d, MaxScale)
		}
	}
	return p, nil
}

// fromResult validates the outcome of an arithmetic operation.
// Unlike newPositive, it reports violations as [ErrArithmetic].
// Results too small for apd to represent become [Zero], and results
// with more than [MaxScale] digits after the decimal point are rounded.
func fromResult(d *apd.Decimal, cond apd.Condition, err error) (Positive, error) {
	switch {
	case err != nil && cond.Underflow():
		return Zero, nil
	case err != nil && cond.Overflow():
		return Positive{}, fmt.Errorf("%w: %w", ErrArithmetic, errOverflow)
	case err != nil:
		return Positive{}, fmt.Errorf("%w: %v", ErrArithmetic, err)
	case d.Form != apd.Finite:
		return Positive{}, fmt.Errorf("%w: %w", ErrArithmetic, errOverflow)
	case d.Sign() < 0:
		return Positive{}, fmt.Errorf("%w: %w", ErrArithmetic, errNegativeResult)
	case d.Cmp(&maxDecimal) > 0:
		return Positive{}, fmt.Errorf("%w: %w", ErrArithmetic, errOverflow)
	}
	if d.Exponent < -MaxScale {
		// The coefficient has at most Precision digits here.
		c := newContext(Precision+MaxScale+1, apd.RoundHalfEven)
		var r apd.Decimal
		if _, err := c.Quantize(&r, d, -MaxScale); err != nil {
			return Positive{}, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
		r.Reduce(&r)
		return newPositive(&r)
	}
	return newPositive(d)
}

// New returns a positive value equal to f.
// The result is the shortest decimal that rounds to f, so New(0.1) is
// exactly 0.1 rather than the binary approximation of it.
//
// New returns an error if:
//   - f is NaN or infinite ([ErrInvalidValue]);
//   - f is negative or greater than [Infinity] ([ErrOutOfBounds]).
//
// Negative zero is accepted and returns [Zero].
func New(f float64) (Positive, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Positive{}, fmt.Errorf("converting %v: %w: not a finite number", f, ErrInvalidValue)
	}
	d, err := new(apd.Decimal).SetFloat64(f)
	if err != nil {
		return Positive{}, fmt.Errorf("converting %v: %w: %v", f, ErrInvalidValue, err)
	}
	p, err := newPositive(d)
	if err != nil {
		return Positive{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return p, nil
}

// TryNew is like [New] but reports failure with a boolean instead of an error.
func TryNew(f float64) (Positive, bool) {
	p, err := New(f)
	return p, err == nil
}

// NewFromDecimal returns a positive value equal to d.
// The argument is copied, so d may be reused by the caller.
//
// NewFromDecimal returns an error if:
//   - d is nil, NaN or infinite ([ErrInvalidValue]);
//   - d is negative, greater than [Infinity] or has more than [MaxScale]
//     digits after the decimal point ([ErrOutOfBounds]).
func NewFromDecimal(d *apd.Decimal) (Positive, error) {
	return newPositive(d)
}

// NewFromInt64 returns a positive value equal to i.
// NewFromInt64 returns an error if i is negative.
func NewFromInt64(i int64) (Positive, error) {
	if i < 0 {
		return Positive{}, fmt.Errorf("converting %v: %w: negative", i, ErrOutOfBounds)
	}
	return newPositive(apd.New(i, 0))
}

// NewFromUint64 returns a positive value equal to u.
func NewFromUint64(u uint64) Positive {
	coef := new(apd.BigInt).SetMathBigInt(new(big.Int).SetUint64(u))
	return Positive{d: *apd.NewWithBigInt(coef, 0)}
}

// Parse converts a string to a positive value.
// The accepted syntax is the one of [apd.Decimal.SetString], for example:
//
//	1.234
//	+0.000001234
//	1.83e5
//
// Parse returns an error if:
//   - the string is not a finite decimal number ([ErrInvalidValue]);
//   - the number is negative, greater than [Infinity] or has more than
//     [MaxScale] digits after the decimal point ([ErrOutOfBounds]).
//
// Trailing zeros beyond [MaxScale] are accepted and dropped.
func Parse(s string) (Positive, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Positive{}, fmt.Errorf("parsing %q: %w: %v", s, ErrInvalidValue, err)
	}
	p, err := newPositive(d)
	if err != nil {
		return Positive{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return p, nil
}

// TryParse is like [Parse] but reports failure with a boolean instead of an error.
func TryParse(s string) (Positive, bool) {
	p, err := Parse(s)
	return p, err == nil
}

// String implements the [fmt.Stringer] interface and returns
// a plain decimal representation without exponent, for example "42.5".
func (p Positive) String() string {
	return p.d.Text('f')
}

// FormatFixed returns a string representation of p rounded half-to-even
// to exactly places digits after the decimal point.
// A negative number of places is treated as 0.
// Digits beyond [MaxPlaces] are always zeros.
func (p Positive) FormatFixed(places int) string {
	places = max(places, 0)
	pad := 0
	if places > MaxPlaces {
		pad = places - MaxPlaces
		places = MaxPlaces
	}
	q, err := p.quantize(places, apd.RoundHalfEven)
	if err != nil {
		return p.String()
	}
	return q.String() + strings.Repeat("0", pad)
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: 42.5
//	%f:     42.5, or with precision %.2f: 42.50
//	%q:    "42.5"
//	%e, %g: as formatted by [apd.Decimal.Format]
//
// Width and the '+' and '-' flags are supported for %s, %v, %f and %q.
func (p Positive) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V':
		s = p.String()
	case 'f', 'F':
		s = p.String()
		if prec, ok := state.Precision(); ok {
			s = p.FormatFixed(prec)
		}
	case 'q', 'Q':
		s = strconv.Quote(p.String())
	default:
		p.d.Format(state, verb)
		return
	}
	if state.Flag('+') {
		s = "+" + s
	}
	if w, ok := state.Width(); ok && w > len(s) {
		padding := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s += padding
		} else {
			s = padding + s
		}
	}
	io.WriteString(state, s)
}

// IsZero returns true if p == 0.
func (p Positive) IsZero() bool {
	return p.d.IsZero()
}

// IsInt returns true if the fractional part of p is zero.
func (p Positive) IsInt() bool {
	_, ok := p.integer()
	return ok
}

// IsMultipleOf returns true if p divided by q is an integer.
// Zero is not a divisor of anything, so IsMultipleOf returns false if q is 0.
func (p Positive) IsMultipleOf(q Positive) bool {
	if q.IsZero() {
		return false
	}
	// The integer part of p / q has at most this many digits.
	prec := p.intDigits() - int(q.d.Exponent) + 1
	prec = max(prec, int(q.d.NumDigits())+1)
	c := newContext(uint32(prec), apd.RoundDown)
	var r apd.Decimal
	if _, err := c.Rem(&r, &p.d, &q.d); err != nil {
		return false
	}
	return r.IsZero()
}

// Cmp compares p and q numerically and returns:
//
//	-1 if p < q
//	 0 if p == q
//	+1 if p > q
func (p Positive) Cmp(q Positive) int {
	return p.d.Cmp(&q.d)
}

// Equal returns true if p and q are numerically equal.
func (p Positive) Equal(q Positive) bool {
	return p.Cmp(q) == 0
}

// Less returns true if p < q.
func (p Positive) Less(q Positive) bool {
	return p.Cmp(q) < 0
}

// Max returns the maximum of p and q.
func (p Positive) Max(q Positive) Positive {
	if p.Cmp(q) >= 0 {
		return p
	}
	return q
}

// Min returns the minimum of p and q.
func (p Positive) Min(q Positive) Positive {
	if p.Cmp(q) <= 0 {
		return p
	}
	return q
}

// Clamp returns p limited to the range [lo, hi].
// The caller must ensure that lo <= hi; otherwise the result is hi.
func (p Positive) Clamp(lo, hi Positive) Positive {
	return p.Max(lo).Min(hi)
}

// Decimal returns a copy of the underlying decimal.
// Modifying the result does not affect p.
func (p Positive) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(&p.d)
}
