package positive

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Positive.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (p Positive) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see function [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (p *Positive) UnmarshalText(text []byte) error {
	q, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as a bare JSON number, for example 42.5.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (p Positive) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both JSON numbers and JSON strings holding a number are accepted.
// As with other unmarshalers, null leaves p unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (p *Positive) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return p.UnmarshalText(data)
}

// MarshalYAML implements the [yaml.Marshaler] interface.
// The value is encoded as a plain scalar, for example 42.5.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (p Positive) MarshalYAML() (any, error) {
	s := p.String()
	tag := "!!int"
	if strings.ContainsRune(s, '.') {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}, nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Only scalar nodes are accepted.
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (p *Positive) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: %w: expected a scalar", node.Line, ErrInvalidValue)
	}
	return p.UnmarshalText([]byte(node.Value))
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (p Positive) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements the [sql.Scanner] interface.
// The source may be a string, a byte slice, an int64 or a float64.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (p *Positive) Scan(value any) error {
	var (
		q   Positive
		err error
	)
	switch value := value.(type) {
	case string:
		q, err = Parse(value)
	case []byte:
		q, err = Parse(string(value))
	case int64:
		q, err = NewFromInt64(value)
	case float64:
		q, err = New(value)
	case nil:
		err = fmt.Errorf("%w: cannot scan NULL into %T", ErrInvalidValue, p)
	default:
		err = fmt.Errorf("%w: cannot scan %T into %T", ErrInvalidValue, value, p)
	}
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// NumericValue implements the [pgtype.NumericValuer] interface,
// so positive values can be passed directly as PostgreSQL numeric arguments.
//
// [pgtype.NumericValuer]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#NumericValuer
func (p Positive) NumericValue() (pgtype.Numeric, error) {
	return pgtype.Numeric{
		Int:   p.d.Coeff.MathBigInt(),
		Exp:   p.d.Exponent,
		Valid: true,
	}, nil
}

// ScanNumeric implements the [pgtype.NumericScanner] interface.
// NULL, NaN and infinite values are rejected.
//
// [pgtype.NumericScanner]: https://pkg.go.dev/github.com/jackc/pgx/v5/pgtype#NumericScanner
func (p *Positive) ScanNumeric(v pgtype.Numeric) error {
	switch {
	case !v.Valid:
		return fmt.Errorf("%w: cannot scan NULL into %T", ErrInvalidValue, p)
	case v.NaN:
		return fmt.Errorf("%w: cannot scan NaN into %T", ErrInvalidValue, p)
	case v.InfinityModifier != pgtype.Finite:
		return fmt.Errorf("%w: cannot scan infinity into %T", ErrInvalidValue, p)
	}
	coef := new(big.Int)
	if v.Int != nil {
		coef.Set(v.Int)
	}
	q, err := NewFromDecimal(apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coef), v.Exp))
	if err != nil {
		return err
	}
	*p = q
	return nil
}
