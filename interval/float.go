package interval

import (
	"golang.org/x/exp/constraints"

	"github.com/iotaledger/hive.go/ierrors"
)

// NewFloat creates the interval from lower to upper over a floating-point
// type. It fails with [ErrNotANumber] if either limit is NaN and with
// [ErrEmptyInterval] if no value lies between them.
func NewFloat[F constraints.Float](lower, upper Bound[F]) (Interval[F], error) {
	if isNaN(lower.Limit) {
		return Interval[F]{}, ierrors.Wrap(ErrNotANumber, "invalid lower bound")
	}

	if isNaN(upper.Limit) {
		return Interval[F]{}, ierrors.Wrap(ErrNotANumber, "invalid upper bound")
	}

	return New(lower, upper)
}

// Center returns the midpoint of the interval. It is NaN for (-∞, +∞).
func Center[F constraints.Float](i Interval[F]) F {
	return (i.lower.bound.Limit + i.upper.bound.Limit) / 2
}

// IoU returns the intersection over union of two intervals: the length of
// their intersection divided by the length of their enclosure. It is 0 for
// intervals that do not overlap and 1 for two identical single points.
func IoU[F constraints.Float](a, b Interval[F]) F {
	intersection, ok := a.Intersection(b)
	if !ok {
		return 0
	}

	enclosure := Measure(a.Enclosure(b))
	if enclosure == 0 {
		return 1
	}

	return Measure(intersection) / enclosure
}

// Closure returns the interval with both limits included.
func Closure[F constraints.Float](i Interval[F]) Interval[F] {
	// Including limits only adds values.
	return Interval[F]{
		lower: i.lower.withType(Inclusive),
		upper: i.upper.withType(Inclusive),
	}
}

// Interior returns the interval with both limits excluded. It returns false
// for a single point, which has no interior.
func Interior[F constraints.Float](i Interval[F]) (Interval[F], bool) {
	return newInterval(i.lower.withType(Exclusive), i.upper.withType(Exclusive))
}
