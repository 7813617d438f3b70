package positive

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// CheckedAdd returns the (possibly rounded) sum of p and q.
//
// CheckedAdd returns [ErrArithmetic] if the sum is greater than [Infinity].
func (p Positive) CheckedAdd(q Positive) (Positive, error) {
	var d apd.Decimal
	cond, err := decCtx.Add(&d, &p.d, &q.d)
	r, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing [%v + %v]: %w", p, q, err)
	}
	return r, nil
}

// CheckedSub returns the difference of p and q.
//
// CheckedSub returns [ErrArithmetic] if p < q, because the difference
// would be negative.
// Also see method [Positive.SaturatingSub].
func (p Positive) CheckedSub(q Positive) (Positive, error) {
	if p.Less(q) {
		return Positive{}, fmt.Errorf("computing [%v - %v]: %w: %w", p, q, ErrArithmetic, errNegativeResult)
	}
	var d apd.Decimal
	cond, err := decCtx.Sub(&d, &p.d, &q.d)
	r, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing [%v - %v]: %w", p, q, err)
	}
	return r, nil
}

// SaturatingSub returns the difference of p and q, or [Zero] if p < q.
// For all p and q it is equal to the result of [Positive.CheckedSub]
// with errors replaced by [Zero].
func (p Positive) SaturatingSub(q Positive) Positive {
	r, err := p.CheckedSub(q)
	if err != nil {
		return Zero
	}
	return r
}

// CheckedMul returns the (possibly rounded) product of p and q.
//
// CheckedMul returns [ErrArithmetic] if the product is greater than [Infinity].
func (p Positive) CheckedMul(q Positive) (Positive, error) {
	var d apd.Decimal
	cond, err := decCtx.Mul(&d, &p.d, &q.d)
	r, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing [%v * %v]: %w", p, q, err)
	}
	return r, nil
}

// CheckedQuo returns the (possibly rounded) quotient of p and q.
// The result has at most [Precision] significant digits.
//
// CheckedQuo returns [ErrArithmetic] if:
//   - q is 0;
//   - the quotient is greater than [Infinity].
func (p Positive) CheckedQuo(q Positive) (Positive, error) {
	if q.IsZero() {
		return Positive{}, fmt.Errorf("computing [%v / %v]: %w: %w", p, q, ErrArithmetic, errDivisionByZero)
	}
	var d apd.Decimal
	cond, err := decCtx.Quo(&d, &p.d, &q.d)
	r, err := fromResult(&d, cond, err)
	if err != nil {
		return Positive{}, fmt.Errorf("computing [%v / %v]: %w", p, q, err)
	}
	return r, nil
}

// Sum returns the (possibly rounded) sum of all values.
// The sum of no values is [Zero].
//
// Sum returns [ErrArithmetic] if any partial sum is greater than [Infinity].
func Sum(ps ...Positive) (Positive, error) {
	s := Zero
	for _, p := range ps {
		var err error
		s, err = s.CheckedAdd(p)
		if err != nil {
			return Positive{}, err
		}
	}
	return s, nil
}
