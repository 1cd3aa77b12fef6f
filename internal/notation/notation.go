// Package notation parses the textual interval notation accepted by the
// intervals command.
//
// Supported forms, with optional spaces:
//   - [a, b], (a, b), [a, b), (a, b]
//   - =a or a, the single point [a, a]
//
// Unbounded sides are not supported.
package notation

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/crystalix007/intervals/interval"
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrSyntax is returned for input that is not valid interval notation.
var ErrSyntax = ierrors.New("invalid interval notation")

// ParseBounds splits interval notation into its lower and upper bound, using
// parseScalar for the limits. It does not check that the bounds form a
// non-empty interval.
func ParseBounds[T constraints.Ordered](value string, parseScalar func(string) (T, error)) (lower, upper interval.Bound[T], err error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return lower, upper, ierrors.Wrap(ErrSyntax, "empty input")
	}

	if point, ok := strings.CutPrefix(s, "="); ok {
		s = strings.TrimSpace(point)
	}

	if !isBracketed(s) {
		limit, err := parseScalar(s)
		if err != nil {
			return lower, upper, ierrors.Wrapf(ErrSyntax, "%q: %v", value, err)
		}

		return interval.Incl(limit), interval.Incl(limit), nil
	}

	lowerType, upperType := interval.Inclusive, interval.Inclusive
	if s[0] == '(' {
		lowerType = interval.Exclusive
	}

	if s[len(s)-1] == ')' {
		upperType = interval.Exclusive
	}

	left, right, found := strings.Cut(s[1:len(s)-1], ",")
	if !found {
		return lower, upper, ierrors.Wrapf(ErrSyntax, "%q: missing comma", value)
	}

	left, right = strings.TrimSpace(left), strings.TrimSpace(right)
	if left == "" || right == "" {
		return lower, upper, ierrors.Wrapf(ErrSyntax, "%q: unbounded sides are not supported", value)
	}

	lowerLimit, err := parseScalar(left)
	if err != nil {
		return lower, upper, ierrors.Wrapf(ErrSyntax, "%q: lower limit: %v", value, err)
	}

	upperLimit, err := parseScalar(right)
	if err != nil {
		return lower, upper, ierrors.Wrapf(ErrSyntax, "%q: upper limit: %v", value, err)
	}

	return interval.At(lowerType, lowerLimit), interval.At(upperType, upperLimit), nil
}

// ParseInt parses an interval over int64.
func ParseInt(value string) (interval.Interval[int64], error) {
	lower, upper, err := ParseBounds(value, Int)
	if err != nil {
		return interval.Interval[int64]{}, err
	}

	return interval.New(lower, upper)
}

// ParseFloat parses an interval over float64, rejecting NaN limits.
func ParseFloat(value string) (interval.Interval[float64], error) {
	lower, upper, err := ParseBounds(value, Float)
	if err != nil {
		return interval.Interval[float64]{}, err
	}

	return interval.NewFloat(lower, upper)
}

// Int parses a single int64 scalar.
func Int(value string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(value), 10, 64)
}

// Float parses a single float64 scalar.
func Float(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

func isBracketed(s string) bool {
	return len(s) >= 2 &&
		(s[0] == '[' || s[0] == '(') &&
		(s[len(s)-1] == ']' || s[len(s)-1] == ')')
}
