package interval

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// LowerMinimum returns the smallest integer in the half-line: the limit when
// inclusive, the limit plus one when exclusive. It returns false if no such
// integer exists because the limit is the largest value of T.
func LowerMinimum[T constraints.Integer](l Lower[T]) (T, bool) {
	if l.bound.Type == Inclusive {
		return l.bound.Limit, true
	}

	next := l.bound.Limit + 1
	if next < l.bound.Limit {
		return 0, false
	}

	return next, true
}

// UpperMaximum returns the largest integer in the half-line: the limit when
// inclusive, the limit minus one when exclusive. It returns false if no such
// integer exists because the limit is the smallest value of T.
func UpperMaximum[T constraints.Integer](u Upper[T]) (T, bool) {
	if u.bound.Type == Inclusive {
		return u.bound.Limit, true
	}

	previous := u.bound.Limit - 1
	if previous > u.bound.Limit {
		return 0, false
	}

	return previous, true
}

// Minimum returns the smallest integer in the interval. It returns false if
// the interval holds no integer at all, like (0, 1).
func Minimum[T constraints.Integer](i Interval[T]) (T, bool) {
	minimum, _, ok := integerBounds(i)

	return minimum, ok
}

// Maximum returns the largest integer in the interval. It returns false if
// the interval holds no integer at all, like (0, 1).
func Maximum[T constraints.Integer](i Interval[T]) (T, bool) {
	_, maximum, ok := integerBounds(i)

	return maximum, ok
}

// Values returns an iterator over every integer in the interval in ascending
// order.
func Values[T constraints.Integer](i Interval[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		minimum, maximum, ok := integerBounds(i)
		if !ok {
			return
		}

		// Compare before incrementing so that maximum == MaxInt terminates.
		for value := minimum; ; value++ {
			if !yield(value) || value == maximum {
				return
			}
		}
	}
}

func integerBounds[T constraints.Integer](i Interval[T]) (minimum, maximum T, ok bool) {
	minimum, minOK := LowerMinimum(i.lower)
	maximum, maxOK := UpperMaximum(i.upper)

	if !minOK || !maxOK || minimum > maximum {
		return 0, 0, false
	}

	return minimum, maximum, true
}
