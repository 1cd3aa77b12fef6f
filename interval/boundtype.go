package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BoundType describes whether an endpoint includes or excludes its limit.
//
// The type is chosen at runtime, so intervals with differently typed endpoints
// share one Go type and can be stored together.
type BoundType uint8

const (
	// Inclusive endpoints contain their limit, as both sides of [a, b] do.
	Inclusive BoundType = iota

	// Exclusive endpoints do not contain their limit, as both sides of (a, b)
	// do.
	Exclusive
)

// Flip swaps Inclusive and Exclusive.
func (b BoundType) Flip() BoundType {
	if b == Inclusive {
		return Exclusive
	}

	return Inclusive
}

// IsInclusive returns whether the endpoint contains its limit.
func (b BoundType) IsInclusive() bool {
	return b == Inclusive
}

func (b BoundType) String() string {
	switch b {
	case Inclusive:
		return "Inclusive"
	case Exclusive:
		return "Exclusive"
	default:
		return fmt.Sprintf("BoundType(%d)", uint8(b))
	}
}

// lowerAdmits reports whether t lies above a lower limit of the given type.
func lowerAdmits[T constraints.Ordered](b BoundType, limit, t T) bool {
	if b == Inclusive {
		return limit <= t
	}

	return limit < t
}

// upperAdmits reports whether t lies below an upper limit of the given type.
func upperAdmits[T constraints.Ordered](b BoundType, limit, t T) bool {
	if b == Inclusive {
		return t <= limit
	}

	return t < limit
}

// compare returns -1, 0 or 1 depending on whether a is less than, equal to or
// greater than b.
func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
