package positive

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/jackc/pgx/v5/pgtype"
	"gopkg.in/yaml.v3"
)

func TestPositive_ZeroValue(t *testing.T) {
	got := Positive{}
	if !got.Equal(Zero) {
		t.Errorf("Positive{} = %q, want %q", got, Zero)
	}
	if s := got.String(); s != "0" {
		t.Errorf("Positive{}.String() = %q, want %q", s, "0")
	}
}

func TestPositive_Interfaces(t *testing.T) {
	var p any

	p = Positive{}
	_, ok := p.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", p)
	}
	_, ok = p.(fmt.Formatter)
	if !ok {
		t.Errorf("%T does not implement fmt.Formatter", p)
	}
	_, ok = p.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", p)
	}
	_, ok = p.(json.Marshaler)
	if !ok {
		t.Errorf("%T does not implement json.Marshaler", p)
	}
	_, ok = p.(yaml.Marshaler)
	if !ok {
		t.Errorf("%T does not implement yaml.Marshaler", p)
	}
	_, ok = p.(driver.Valuer)
	if !ok {
		t.Errorf("%T does not implement driver.Valuer", p)
	}
	_, ok = p.(pgtype.NumericValuer)
	if !ok {
		t.Errorf("%T does not implement pgtype.NumericValuer", p)
	}

	p = &Positive{}
	_, ok = p.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", p)
	}
	_, ok = p.(json.Unmarshaler)
	if !ok {
		t.Errorf("%T does not implement json.Unmarshaler", p)
	}
	_, ok = p.(yaml.Unmarshaler)
	if !ok {
		t.Errorf("%T does not implement yaml.Unmarshaler", p)
	}
	_, ok = p.(sql.Scanner)
	if !ok {
		t.Errorf("%T does not implement sql.Scanner", p)
	}
	_, ok = p.(pgtype.NumericScanner)
	if !ok {
		t.Errorf("%T does not implement pgtype.NumericScanner", p)
	}
}

func TestConstants(t *testing.T) {
	tests := []struct {
		p    Positive
		want string
	}{
		{Zero, "0"},
		{One, "1"},
		{Two, "2"},
		{Ten, "10"},
		{Hundred, "100"},
		{Thousand, "1000"},
		{Pi, "3.1415926535897932384626433833"},
		{Infinity, "79228162514264337593543950335"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("constant = %q, want %q", got, tt.want)
		}
		if tt.p.d.Sign() < 0 {
			t.Errorf("constant %q is negative", tt.p)
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want string
		}{
			{0, "0"},
			{math.Copysign(0, -1), "0"},
			{0.1, "0.1"},
			{1, "1"},
			{10, "10"},
			{42.5, "42.5"},
			{100.50, "100.5"},
			{1e-10, "0.0000000001"},
			{1e20, "100000000000000000000"},
		}
		for _, tt := range tests {
			got, err := New(tt.f)
			if err != nil {
				t.Errorf("New(%v) failed: %v", tt.f, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("New(%v) = %q, want %q", tt.f, s, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			f    float64
			want error
		}{
			"negative 1": {-5, ErrOutOfBounds},
			"negative 2": {-0.0001, ErrOutOfBounds},
			"negative 3": {-math.MaxFloat64, ErrOutOfBounds},
			"too large":  {1e30, ErrOutOfBounds},
			"nan":        {math.NaN(), ErrInvalidValue},
			"+inf":       {math.Inf(1), ErrInvalidValue},
			"-inf":       {math.Inf(-1), ErrInvalidValue},
		}
		for name, tt := range tests {
			_, err := New(tt.f)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: New(%v) = %v, want %v", name, tt.f, err, tt.want)
			}
			if _, ok := TryNew(tt.f); ok {
				t.Errorf("%v: TryNew(%v) did not fail", name, tt.f)
			}
		}
	})
}

func TestMustNew(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNew(-1) did not panic")
			}
		}()
		MustNew(-1)
	})
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want string
		}{
			{"0", "0"},
			{"-0", "0"},
			{"+1", "1"},
			{"0.000", "0.000"},
			{"42.5", "42.5"},
			{"1.83e5", "183000"},
			{"0.22e-9", "0.00000000022"},
			{"79228162514264337593543950335", "79228162514264337593543950335"},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.s, s, tt.want)
			}
			if got.d.Negative {
				t.Errorf("Parse(%q) has a negative sign", tt.s)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":     {"", ErrInvalidValue},
			"letters":   {"abc", ErrInvalidValue},
			"nan":       {"NaN", ErrInvalidValue},
			"inf":       {"Inf", ErrInvalidValue},
			"negative":  {"-1", ErrOutOfBounds},
			"too large": {"79228162514264337593543950336", ErrOutOfBounds},
			"scale 1":   {"1e-1001", ErrOutOfBounds},
			"scale 2":   {"1e-60000", ErrOutOfBounds},
			"scale 3":   {"1.5e-1000", ErrOutOfBounds},
		}
		for name, tt := range tests {
			_, err := Parse(tt.s)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: Parse(%q) = %v, want %v", name, tt.s, err, tt.want)
			}
			if _, ok := TryParse(tt.s); ok {
				t.Errorf("%v: TryParse(%q) did not fail", name, tt.s)
			}
		}
	})

	t.Run("scale", func(t *testing.T) {
		tiny := "0." + strings.Repeat("0", MaxScale-1) + "1"
		tests := []struct {
			s    string
			want string
		}{
			{"0e+50000", "0"},
			{"0e-50000", "0"},
			{"1." + strings.Repeat("0", 2*MaxScale), "1"},
			{"1e-1000", tiny},
			{"10e-1001", tiny},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%.20q) failed: %v", tt.s, err)
				continue
			}
			if s := got.String(); s != tt.want {
				t.Errorf("Parse(%.20q) = %.20q, want %.20q", tt.s, s, tt.want)
			}
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\"-1\") did not panic")
			}
		}()
		MustParse("-1")
	})
}

func TestNewFromDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := apd.New(425, -1)
		got, err := NewFromDecimal(d)
		if err != nil {
			t.Fatalf("NewFromDecimal(%v) failed: %v", d, err)
		}
		d.SetInt64(7)
		if s := got.String(); s != "42.5" {
			t.Errorf("NewFromDecimal() = %q after modifying the argument, want %q", s, "42.5")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d    *apd.Decimal
			want error
		}{
			"nil":      {nil, ErrInvalidValue},
			"nan":      {&apd.Decimal{Form: apd.NaN}, ErrInvalidValue},
			"infinite": {&apd.Decimal{Form: apd.Infinite}, ErrInvalidValue},
			"negative": {apd.New(-1, 0), ErrOutOfBounds},
			"scale":    {apd.New(1, -MaxScale-1), ErrOutOfBounds},
		}
		for name, tt := range tests {
			_, err := NewFromDecimal(tt.d)
			if !errors.Is(err, tt.want) {
				t.Errorf("%v: NewFromDecimal(%v) = %v, want %v", name, tt.d, err, tt.want)
			}
		}
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewFromDecimal(-1) did not panic")
			}
		}()
		MustNewFromDecimal(apd.New(-1, 0))
	})
}

func TestNewFromInt64(t *testing.T) {
	got, err := NewFromInt64(math.MaxInt64)
	if err != nil {
		t.Fatalf("NewFromInt64(%v) failed: %v", int64(math.MaxInt64), err)
	}
	if s := got.String(); s != "9223372036854775807" {
		t.Errorf("NewFromInt64(%v) = %q", int64(math.MaxInt64), s)
	}
	_, err = NewFromInt64(-1)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("NewFromInt64(-1) = %v, want %v", err, ErrOutOfBounds)
	}
}

func TestNewFromUint64(t *testing.T) {
	got := NewFromUint64(math.MaxUint64)
	if s := got.String(); s != "18446744073709551615" {
		t.Errorf("NewFromUint64(%v) = %q", uint64(math.MaxUint64), s)
	}
}

func TestPositive_Format(t *testing.T) {
	tests := []struct {
		p, format, want string
	}{
		{"42.5", "%v", "42.5"},
		{"42.5", "%s", "42.5"},
		{"42.5", "%f", "42.5"},
		{"42.5", "%.2f", "42.50"},
		{"42.5", "%.0f", "42"},
		{"42.5", "%q", `"42.5"`},
		{"42.5", "%+v", "+42.5"},
		{"42.5", "%8v", "    42.5"},
		{"42.5", "%-8v|", "42.5    |"},
		{"1E+1", "%v", "10"},
		{"0", "%v", "0"},
	}
	for _, tt := range tests {
		p := MustParse(tt.p)
		if got := fmt.Sprintf(tt.format, p); got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %q) = %q, want %q", tt.format, tt.p, got, tt.want)
		}
	}
}

func TestPositive_FormatFixed(t *testing.T) {
	tests := []struct {
		p      string
		places int
		want   string
	}{
		{"42.5", 2, "42.50"},
		{"42.567", 2, "42.57"},
		{"1.005", 2, "1.00"},
		{"1.015", 2, "1.02"},
		{"9.999", 2, "10.00"},
		{"42.5", 0, "42"},
		{"42.5", -1, "42"},
		{"0", 3, "0.000"},
		{"1", MaxPlaces + 2, "1." + strings.Repeat("0", MaxPlaces+2)},
	}
	for _, tt := range tests {
		p := MustParse(tt.p)
		if got := p.FormatFixed(tt.places); got != tt.want {
			t.Errorf("%q.FormatFixed(%v) = %q, want %q", p, tt.places, got, tt.want)
		}
	}
}

func TestPositive_Cmp(t *testing.T) {
	tests := []struct {
		p, q string
		want int
	}{
		{"0", "0", 0},
		{"1", "1.00", 0},
		{"1", "2", -1},
		{"2", "1", 1},
		{"0.1", "0.01", 1},
	}
	for _, tt := range tests {
		p, q := MustParse(tt.p), MustParse(tt.q)
		if got := p.Cmp(q); got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", p, q, got, tt.want)
		}
		if got := p.Equal(q); got != (tt.want == 0) {
			t.Errorf("%q.Equal(%q) = %v", p, q, got)
		}
		if got := p.Less(q); got != (tt.want < 0) {
			t.Errorf("%q.Less(%q) = %v", p, q, got)
		}
	}
}

func TestPositive_MinMax(t *testing.T) {
	tests := []struct {
		p, q, wantMin, wantMax string
	}{
		{"1", "2", "1", "2"},
		{"2", "1", "1", "2"},
		{"0", "0", "0", "0"},
	}
	for _, tt := range tests {
		p, q := MustParse(tt.p), MustParse(tt.q)
		if got := p.Min(q); !got.Equal(MustParse(tt.wantMin)) {
			t.Errorf("%q.Min(%q) = %q, want %q", p, q, got, tt.wantMin)
		}
		if got := p.Max(q); !got.Equal(MustParse(tt.wantMax)) {
			t.Errorf("%q.Max(%q) = %q, want %q", p, q, got, tt.wantMax)
		}
	}
}

func TestPositive_Clamp(t *testing.T) {
	tests := []struct {
		p, lo, hi, want string
	}{
		{"0", "1", "10", "1"},
		{"5", "1", "10", "5"},
		{"50", "1", "10", "10"},
		{"1", "1", "1", "1"},
		// lo > hi is a caller error; the result is hi
		{"5", "10", "1", "1"},
	}
	for _, tt := range tests {
		p, lo, hi := MustParse(tt.p), MustParse(tt.lo), MustParse(tt.hi)
		if got := p.Clamp(lo, hi); !got.Equal(MustParse(tt.want)) {
			t.Errorf("%q.Clamp(%q, %q) = %q, want %q", p, lo, hi, got, tt.want)
		}
	}
}

func TestPositive_IsZero(t *testing.T) {
	tests := []struct {
		p    string
		want bool
	}{
		{"0", true},
		{"0.000", true},
		{"0.001", false},
		{"1", false},
	}
	for _, tt := range tests {
		p := MustParse(tt.p)
		if got := p.IsZero(); got != tt.want {
			t.Errorf("%q.IsZero() = %v, want %v", p, got, tt.want)
		}
	}
}

func TestPositive_IsInt(t *testing.T) {
	tests := []struct {
		p    string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"42.000", true},
		{"1E+3", true},
		{"42.5", false},
		{"0.001", false},
	}
	for _, tt := range tests {
		p := MustParse(tt.p)
		if got := p.IsInt(); got != tt.want {
			t.Errorf("%q.IsInt() = %v, want %v", p, got, tt.want)
		}
	}
}

func TestPositive_IsMultipleOf(t *testing.T) {
	tests := []struct {
		p, q string
		want bool
	}{
		{"10", "2.5", true},
		{"10", "3", false},
		{"0", "3", true},
		{"0.3", "0.1", true},
		{"1", "0.3", false},
		{"10", "0", false},
		{"0", "0", false},
		{"1e28", "1e-10", true},
		{"1e28", "3e-10", false},
		{"79228162514264337593543950335", "0.000001", true},
		{"79228162514264337593543950335", "0.007", true},
		{"1", "1e-1000", true},
		{"1e-1000", "1e-1000", true},
		{"1e-1000", "1e28", false},
	}
	for _, tt := range tests {
		p, q := MustParse(tt.p), MustParse(tt.q)
		if got := p.IsMultipleOf(q); got != tt.want {
			t.Errorf("%q.IsMultipleOf(%q) = %v, want %v", p, q, got, tt.want)
		}
	}
}

func TestPositive_Decimal(t *testing.T) {
	p := MustParse("42.5")
	d := p.Decimal()
	d.SetInt64(-1)
	if s := p.String(); s != "42.5" {
		t.Errorf("modifying Decimal() changed the value to %q", s)
	}
}
