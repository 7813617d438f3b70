/*
Package positive implements immutable non-negative decimal numbers.
It is designed for domains such as prices, quantities and counts,
where a negative value is a logic error that should be caught when the
value is created rather than propagated silently.

# Representation

[Positive] is a struct holding a single [apd.Decimal].
Every value that can be observed through the API is greater than or equal
to 0 and less than or equal to [Infinity], which is
79,228,162,514,264,337,593,543,950,335,
with at most [MaxScale] digits after the decimal point.
The zero value of [Positive] is 0.

As with any decimal, the same numeric value can have several
representations: 1, 1.0 and 1.00 are equal but are printed differently.
Use [Positive.Cmp] or [Positive.Equal] to compare values.

# Construction

A positive value can be obtained only through a validating constructor:

  - from float64: [New], [TryNew], [MustNew].
  - from string: [Parse], [TryParse], [MustParse].
  - from integers: [NewFromInt64], [NewFromUint64].
  - from decimals: [NewFromDecimal], [MustNewFromDecimal], [NewFromShopspring].

The named constants [Zero], [One], [Two], [Ten], [Hundred], [Thousand],
[Pi] and [Infinity] are valid by construction.

# Operations

Each arithmetic operation is available in up to three variants that agree
on the result whenever it exists and differ only in how failure is reported:

	| Operation | Panicking        | Checked               | Saturating              |
	| --------- | ---------------- | --------------------- | ----------------------- |
	| Add       | [Positive.Add]   | [Positive.CheckedAdd] |                         |
	| Subtract  | [Positive.Sub]   | [Positive.CheckedSub] | [Positive.SaturatingSub] |
	| Multiply  | [Positive.Mul]   | [Positive.CheckedMul] |                         |
	| Divide    | [Positive.Quo]   | [Positive.CheckedQuo] |                         |

The panicking variants are meant for call sites where the caller has
already established that the operation is safe, for example subtracting
a discount that is known to be smaller than the price.
The checked variants return [ErrArithmetic] when the difference would be
negative, when the divisor is zero, or when the result exceeds [Infinity].
[Positive.SaturatingSub] returns [Zero] instead of a negative difference.

Results that do not fit are rounded to [Precision] significant digits
using half-to-even rounding.
Results with more than [MaxScale] digits after the decimal point are
rounded half-to-even to [MaxScale] digits, so a product or power of very
small values may be [Zero].

# Conversions

Conversions to float64, int64 and uint64 come in three tiers:

  - strict: [Positive.MustFloat64], [Positive.MustInt64], [Positive.MustUint64]
    panic if the value cannot be represented.
  - checked: [Positive.Float64], [Positive.Int64], [Positive.Uint64]
    return false if the value cannot be represented.
  - lossy: [Positive.Float64Lossy], [Positive.Int64Lossy], [Positive.Uint64Lossy]
    return 0 if the value cannot be represented.

Integer conversions are exact: a value with a non-zero fractional part
cannot be represented as an integer.
[Positive.Decimal] returns a copy of the underlying decimal and never fails.

# Rounding

  - half-to-even rounding:
    [Positive.Round], [Positive.RoundTo], [Positive.FormatFixed].
  - rounding towards positive infinity:
    [Positive.Ceil].
  - rounding towards negative infinity:
    [Positive.Floor].
  - rounding towards zero:
    [Positive.Trunc].

# Encoding

A positive value is encoded as a plain decimal literal without exponent,
for example 42.5, in JSON, YAML and text.
Decoding applies the same validation as [Parse], so negative or malformed
literals are rejected.
Positive also implements [sql.Scanner], [driver.Valuer], and the numeric
scanning interfaces of [pgtype].

# Errors

The following error kinds are returned and can be tested with [errors.Is]:

  - [ErrInvalidValue]: the input is not a finite decimal.
  - [ErrOutOfBounds]: the input is negative, greater than [Infinity]
    or has more than [MaxScale] digits after the decimal point.
  - [ErrArithmetic]: an operation has no non-negative result.
  - [ErrConversion]: a strict conversion failed.
    The strict conversions panic with an error that wraps it.
  - [ErrInvalidPrecision]: the number of decimal places is not valid.

Only the panicking constructors, operators and strict conversions
terminate abnormally; all of them are named in the tables above.

[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
[pgtype]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype
*/
package positive
