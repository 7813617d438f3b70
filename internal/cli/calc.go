package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/govalues/positive"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
	Mode string // "strict" | "checked" | "saturating"
}

// ValidModes defines the allowed failure modes of the calc command.
var ValidModes = []string{"strict", "checked", "saturating"}

var operators = map[string]string{
	"+": "+", "add": "+",
	"-": "-", "sub": "-",
	"*": "*", "mul": "*",
	"/": "/", "div": "/",
}

// CalcResult is the payload of a successful calculation.
type CalcResult struct {
	Left     positive.Positive `json:"left"`
	Operator string            `json:"operator"`
	Right    positive.Positive `json:"right"`
	Mode     string            `json:"mode"`
	Result   positive.Positive `json:"result"`
}

func (r CalcResult) String() string {
	return r.Result.String()
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Apply an arithmetic operator to two values",
		Long: `Apply an arithmetic operator to two non-negative values.

Operators: + - * / (or add, sub, mul, div).

Modes:
  strict      the operation panics on failure; the panic is reported as an error
  checked     the operation returns an error on failure
  saturating  a negative difference becomes 0; other operators behave as checked

Example:
  positive calc 3 - 5 --mode saturating`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Mode, "mode", "checked", "failure mode (strict|checked|saturating)")

	return cmd
}

func runCalc(opts *CalcOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := opts.log()

	if !slices.Contains(ValidModes, opts.Mode) {
		return fail(formatter, usageErrorf("invalid mode %q: must be one of %v", opts.Mode, ValidModes))
	}
	op, ok := operators[args[1]]
	if !ok {
		return fail(formatter, usageErrorf("unknown operator %q", args[1]))
	}
	left, err := positive.Parse(args[0])
	if err != nil {
		return fail(formatter, err)
	}
	right, err := positive.Parse(args[2])
	if err != nil {
		return fail(formatter, err)
	}

	log.Debug().
		Stringer("left", left).
		Str("op", op).
		Stringer("right", right).
		Str("mode", opts.Mode).
		Msg("calculating")

	result, err := calculate(opts.Mode, op, left, right)
	if err != nil {
		log.Debug().Err(err).Msg("calculation failed")
		return fail(formatter, err)
	}

	return formatter.Success(CalcResult{
		Left:     left,
		Operator: op,
		Right:    right,
		Mode:     opts.Mode,
		Result:   result,
	})
}

// calculate applies op in the given mode.
// In strict mode a panic of the operator is converted to an error.
func calculate(mode, op string, left, right positive.Positive) (result positive.Positive, err error) {
	switch mode {
	case "strict":
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", positive.ErrArithmetic, r)
			}
		}()
		switch op {
		case "+":
			return left.Add(right), nil
		case "-":
			return left.Sub(right), nil
		case "*":
			return left.Mul(right), nil
		case "/":
			return left.Quo(right), nil
		}
	case "saturating":
		if op == "-" {
			return left.SaturatingSub(right), nil
		}
	}
	switch op {
	case "+":
		return left.CheckedAdd(right)
	case "-":
		return left.CheckedSub(right)
	case "*":
		return left.CheckedMul(right)
	case "/":
		return left.CheckedQuo(right)
	}
	return positive.Positive{}, usageErrorf("unknown operator %q", op)
}
