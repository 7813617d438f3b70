package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/govalues/positive"
)

// Conversion reports the three conversion tiers for one target type.
type Conversion struct {
	Target     string `json:"target"`
	Strict     string `json:"strict"` // "panic" if the strict conversion panics
	StrictCode string `json:"strict_code,omitempty"`
	Checked    string `json:"checked"`
	OK         bool   `json:"ok"`
	Lossy      string `json:"lossy"`
}

// ConvertResult is the payload of the convert command.
type ConvertResult struct {
	Value       positive.Positive `json:"value"`
	Conversions []Conversion      `json:"conversions"`
}

func (r ConvertResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "value: %v", r.Value)
	for _, c := range r.Conversions {
		s := c.Strict
		if c.StrictCode != "" {
			s += "(" + c.StrictCode + ")"
		}
		fmt.Fprintf(&b, "\n%-8s strict=%s checked=%s ok=%t lossy=%s", c.Target, s, c.Checked, c.OK, c.Lossy)
	}
	return b.String()
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value to float64, int64 and uint64",
		Long: `Convert a value to float64, int64 and uint64 using each conversion tier.

  strict   panics if the value cannot be represented
  checked  reports whether the value can be represented
  lossy    falls back to 0 if the value cannot be represented

Integer conversions fail for values with a fractional part.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runConvert(opts *RootOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	p, err := positive.Parse(arg)
	if err != nil {
		return fail(formatter, err)
	}
	opts.log().Debug().Stringer("value", p).Msg("converting")

	formatFloat := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

	f, fok := p.Float64()
	i, iok := p.Int64()
	u, uok := p.Uint64()

	fs, fcode := strict(func() string { return formatFloat(p.MustFloat64()) })
	is, icode := strict(func() string { return strconv.FormatInt(p.MustInt64(), 10) })
	us, ucode := strict(func() string { return strconv.FormatUint(p.MustUint64(), 10) })

	return formatter.Success(ConvertResult{
		Value: p,
		Conversions: []Conversion{
			{
				Target:     "float64",
				Strict:     fs,
				StrictCode: fcode,
				Checked:    formatFloat(f),
				OK:         fok,
				Lossy:      formatFloat(p.Float64Lossy()),
			},
			{
				Target:     "int64",
				Strict:     is,
				StrictCode: icode,
				Checked:    strconv.FormatInt(i, 10),
				OK:         iok,
				Lossy:      strconv.FormatInt(p.Int64Lossy(), 10),
			},
			{
				Target:     "uint64",
				Strict:     us,
				StrictCode: ucode,
				Checked:    strconv.FormatUint(u, 10),
				OK:         uok,
				Lossy:      strconv.FormatUint(p.Uint64Lossy(), 10),
			},
		},
	})
}

// strict runs a strict conversion. A conversion panic is reported as
// "panic" together with its error code; any other panic is propagated.
func strict(convert func() string) (s, code string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, positive.ErrConversion) {
			panic(r)
		}
		s, code = "panic", errorCode(err)
	}()
	return convert(), ""
}
