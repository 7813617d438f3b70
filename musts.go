package positive

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// MustNew is like [New] but panics if f is not a valid positive value.
// It simplifies safe initialization of global variables and trusted literals.
func MustNew(f float64) Positive {
	p, err := New(f)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v) failed: %v", f, err))
	}
	return p
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding positive values.
func MustParse(s string) Positive {
	p, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return p
}

// MustNewFromDecimal is like [NewFromDecimal] but panics if d is not a valid positive value.
func MustNewFromDecimal(d *apd.Decimal) Positive {
	p, err := NewFromDecimal(d)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromDecimal(%v) failed: %v", d, err))
	}
	return p
}

// Add is like [Positive.CheckedAdd] but panics if the sum is greater than [Infinity].
func (p Positive) Add(q Positive) Positive {
	r, err := p.CheckedAdd(q)
	if err != nil {
		panic(fmt.Sprintf("Add(%v) failed: %v", q, err))
	}
	return r
}

// Sub is like [Positive.CheckedSub] but panics if p < q.
// Use it only where p >= q has already been established.
func (p Positive) Sub(q Positive) Positive {
	r, err := p.CheckedSub(q)
	if err != nil {
		panic(fmt.Sprintf("Sub(%v) failed: %v", q, err))
	}
	return r
}

// Mul is like [Positive.CheckedMul] but panics if the product is greater than [Infinity].
func (p Positive) Mul(q Positive) Positive {
	r, err := p.CheckedMul(q)
	if err != nil {
		panic(fmt.Sprintf("Mul(%v) failed: %v", q, err))
	}
	return r
}

// Quo is like [Positive.CheckedQuo] but panics if q is 0.
func (p Positive) Quo(q Positive) Positive {
	r, err := p.CheckedQuo(q)
	if err != nil {
		panic(fmt.Sprintf("Quo(%v) failed: %v", q, err))
	}
	return r
}

// MustFloat64 is like [Positive.Float64] but panics if the conversion fails.
// The panic value is an error wrapping [ErrConversion].
func (p Positive) MustFloat64() float64 {
	f, ok := p.Float64()
	if !ok {
		panic(fmt.Errorf("MustFloat64() failed: %w: %v overflows float64", ErrConversion, p))
	}
	return f
}

// MustInt64 is like [Positive.Int64] but panics if the conversion fails.
// The panic value is an error wrapping [ErrConversion].
func (p Positive) MustInt64() int64 {
	i, ok := p.Int64()
	if !ok {
		panic(fmt.Errorf("MustInt64() failed: %w: %v is not representable as int64", ErrConversion, p))
	}
	return i
}

// MustUint64 is like [Positive.Uint64] but panics with an error wrapping
// [ErrConversion] if the conversion fails.
func (p Positive) MustUint64() uint64 {
	u, ok := p.Uint64()
	if !ok {
		panic(fmt.Errorf("MustUint64() failed: %w: %v is not representable as uint64", ErrConversion, p))
	}
	return u
}
