package positive

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// integer returns p as an integer if p has no fractional part.
func (p Positive) integer() (*big.Int, bool) {
	var d apd.Decimal
	if _, err := truncCtx.Quantize(&d, &p.d, 0); err != nil {
		return nil, false
	}
	if d.Cmp(&p.d) != 0 {
		return nil, false
	}
	return d.Coeff.MathBigInt(), true
}

// Float64 returns the nearest binary floating-point number rounded
// using half-to-even rounding.
// The second result is false if the value is outside the range of float64.
// Also see methods [Positive.MustFloat64] and [Positive.Float64Lossy].
func (p Positive) Float64() (float64, bool) {
	f, err := p.d.Float64()
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Float64Lossy is like [Positive.Float64] but returns 0 if the conversion fails.
func (p Positive) Float64Lossy() float64 {
	f, ok := p.Float64()
	if !ok {
		return 0
	}
	return f
}

// Int64 returns p as an int64.
// The second result is false if p has a fractional part or is greater
// than [math.MaxInt64].
// Also see methods [Positive.MustInt64] and [Positive.Int64Lossy].
func (p Positive) Int64() (int64, bool) {
	i, ok := p.integer()
	if !ok || !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// Int64Lossy is like [Positive.Int64] but returns 0 if the conversion fails.
func (p Positive) Int64Lossy() int64 {
	i, ok := p.Int64()
	if !ok {
		return 0
	}
	return i
}

// Uint64 returns p as a uint64.
// The second result is false if p has a fractional part or is greater
// than [math.MaxUint64].
// Also see methods [Positive.MustUint64] and [Positive.Uint64Lossy].
func (p Positive) Uint64() (uint64, bool) {
	i, ok := p.integer()
	if !ok || !i.IsUint64() {
		return 0, false
	}
	return i.Uint64(), true
}

// Uint64Lossy is like [Positive.Uint64] but returns 0 if the conversion fails.
func (p Positive) Uint64Lossy() uint64 {
	u, ok := p.Uint64()
	if !ok {
		return 0
	}
	return u
}
