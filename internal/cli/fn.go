package cli

import (
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/govalues/positive"
)

// FnResult is the payload of the fn command.
type FnResult struct {
	Function string `json:"function"`
	Value    string `json:"value"`
	Arg      string `json:"arg,omitempty"`
	Result   string `json:"result"`
}

func (r FnResult) String() string {
	return r.Result
}

// function computes a result from a value and an optional argument.
type function struct {
	hasArg bool
	apply  func(p positive.Positive, arg string) (string, error)
}

var functions = map[string]function{
	"sqrt":  {apply: unary(func(p positive.Positive) (positive.Positive, error) { return p.Sqrt(), nil })},
	"ln":    {apply: unary(positive.Positive.Ln)},
	"log10": {apply: unary(positive.Positive.Log10)},
	"exp":   {apply: unary(positive.Positive.Exp)},
	"floor": {apply: unary(func(p positive.Positive) (positive.Positive, error) { return p.Floor(), nil })},
	"ceil":  {apply: unary(func(p positive.Positive) (positive.Positive, error) { return p.Ceil(), nil })},
	"round": {apply: unary(func(p positive.Positive) (positive.Positive, error) { return p.Round(), nil })},
	"pow": {hasArg: true, apply: func(p positive.Positive, arg string) (string, error) {
		e, err := positive.Parse(arg)
		if err != nil {
			return "", err
		}
		return result(p.Pow(e))
	}},
	"powi": {hasArg: true, apply: func(p positive.Positive, arg string) (string, error) {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return "", usageErrorf("exponent %q is not an integer", arg)
		}
		return result(p.PowInt(n))
	}},
	"round-to": {hasArg: true, apply: withPlaces(positive.Positive.RoundTo)},
	"trunc":    {hasArg: true, apply: withPlaces(positive.Positive.Trunc)},
	"format": {hasArg: true, apply: func(p positive.Positive, arg string) (string, error) {
		places, err := strconv.Atoi(arg)
		if err != nil {
			return "", usageErrorf("places %q is not an integer", arg)
		}
		return p.FormatFixed(places), nil
	}},
}

func unary(f func(positive.Positive) (positive.Positive, error)) func(positive.Positive, string) (string, error) {
	return func(p positive.Positive, _ string) (string, error) {
		return result(f(p))
	}
}

func withPlaces(f func(positive.Positive, int) (positive.Positive, error)) func(positive.Positive, string) (string, error) {
	return func(p positive.Positive, arg string) (string, error) {
		places, err := strconv.Atoi(arg)
		if err != nil {
			return "", usageErrorf("places %q is not an integer", arg)
		}
		return result(f(p, places))
	}
}

func result(p positive.Positive, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// functionNames returns the names of all functions in sorted order.
func functionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewFnCommand creates the fn command.
func NewFnCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fn <name> <value> [arg]",
		Short: "Apply a math function to a value",
		Long: `Apply a math or rounding function to a non-negative value.

Functions without an argument: sqrt, ln, log10, exp, floor, ceil, round.
Functions with an argument:
  pow <exponent>       exponent is a non-negative decimal
  powi <n>             n is an integer, possibly negative
  round-to <places>    half-to-even rounding to the given number of places
  trunc <places>       truncation to the given number of places
  format <places>      fixed-point formatting

Negative arguments must follow --, for example:
  positive fn powi -- 2 -2

Example:
  positive fn round-to 42.567 2`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFn(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runFn(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	name := args[0]
	fn, ok := functions[name]
	if !ok {
		return fail(formatter, usageErrorf("unknown function %q: must be one of %v", name, functionNames()))
	}
	var arg string
	switch {
	case fn.hasArg && len(args) != 3:
		return fail(formatter, usageErrorf("function %q requires an argument", name))
	case !fn.hasArg && len(args) != 2:
		return fail(formatter, usageErrorf("function %q does not take an argument", name))
	case fn.hasArg:
		arg = args[2]
	}

	p, err := positive.Parse(args[1])
	if err != nil {
		return fail(formatter, err)
	}

	opts.log().Debug().Str("function", name).Stringer("value", p).Str("arg", arg).Msg("applying function")

	r, err := fn.apply(p, arg)
	if err != nil {
		opts.log().Debug().Err(err).Msg("function failed")
		return fail(formatter, err)
	}

	return formatter.Success(FnResult{
		Function: name,
		Value:    p.String(),
		Arg:      arg,
		Result:   r,
	})
}
