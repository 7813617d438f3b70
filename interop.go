package positive

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"
)

// NewFromShopspring returns a positive value equal to d.
// The conversion is exact.
//
// NewFromShopspring returns [ErrOutOfBounds] if d is negative or greater
// than [Infinity].
func NewFromShopspring(d decimal.Decimal) (Positive, error) {
	coef := new(apd.BigInt).SetMathBigInt(d.Coefficient())
	p, err := newPositive(apd.NewWithBigInt(coef, d.Exponent()))
	if err != nil {
		return Positive{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return p, nil
}

// Shopspring returns p as a [decimal.Decimal] from github.com/shopspring/decimal.
// The conversion is exact.
func (p Positive) Shopspring() decimal.Decimal {
	return decimal.NewFromBigInt(p.d.Coeff.MathBigInt(), p.d.Exponent)
}
