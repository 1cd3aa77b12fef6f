package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	"github.com/crystalix007/intervals/internal/notation"
	"github.com/crystalix007/intervals/interval"
	"github.com/iotaledger/hive.go/ierrors"
)

// empty is printed for operations without a result.
const empty = "∅"

// domain describes how operands of one scalar type are parsed.
type domain[T constraints.Ordered] struct {
	name   string
	parse  func(string) (interval.Interval[T], error)
	scalar func(string) (T, error)
}

var (
	integers = domain[int64]{
		name:   "int64",
		parse:  notation.ParseInt,
		scalar: notation.Int,
	}

	floats = domain[float64]{
		name:   "float64",
		parse:  notation.ParseFloat,
		scalar: notation.Float,
	}
)

// intervals parses every argument as an interval.
func (d domain[T]) intervals(args []string) ([]interval.Interval[T], error) {
	parsed := make([]interval.Interval[T], 0, len(args))

	for _, arg := range args {
		i, err := d.parse(arg)
		if err != nil {
			return nil, ierrors.Wrapf(err, "operand %q", arg)
		}

		parsed = append(parsed, i)
	}

	return parsed, nil
}

// scalars parses every argument as a single value.
func (d domain[T]) scalars(args []string) ([]T, error) {
	parsed := make([]T, 0, len(args))

	for _, arg := range args {
		v, err := d.scalar(arg)
		if err != nil {
			return nil, ierrors.Wrapf(err, "%s operand %q", d.name, arg)
		}

		parsed = append(parsed, v)
	}

	return parsed, nil
}

// runFunc is the body of a command for one scalar domain.
type runFunc[T constraints.Ordered] func(a *app, cmd *cobra.Command, d domain[T], args []string) error

// dispatch selects the integer or float implementation of a command
// depending on the --float flag.
func (a *app) dispatch(intRun runFunc[int64], floatRun runFunc[float64]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if a.float {
			return floatRun(a, cmd, floats, args)
		}

		return intRun(a, cmd, integers, args)
	}
}

// floatsOnly runs a command that is only defined for floats, regardless of
// the --float flag.
func (a *app) floatsOnly(run runFunc[float64]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return run(a, cmd, floats, args)
	}
}

// integersOnly runs a command that is only defined for integers.
func (a *app) integersOnly(run runFunc[int64]) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if a.float {
			return ErrIntegerOnly
		}

		return run(a, cmd, integers, args)
	}
}

func printLine(cmd *cobra.Command, value any) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), value)

	return err
}

// printOptional prints value if ok, and the empty set otherwise.
func printOptional[T constraints.Ordered](cmd *cobra.Command, value interval.Interval[T], ok bool) error {
	if !ok {
		return printLine(cmd, empty)
	}

	return printLine(cmd, value)
}
