package interval

import "golang.org/x/exp/constraints"

// Compare reexports the internal [compare] helper.
func Compare[T constraints.Ordered](a, b T) int {
	return compare(a, b)
}

// LowerAdmits reexports the internal [lowerAdmits] predicate.
func LowerAdmits[T constraints.Ordered](b BoundType, limit, t T) bool {
	return lowerAdmits(b, limit, t)
}

// UpperAdmits reexports the internal [upperAdmits] predicate.
func UpperAdmits[T constraints.Ordered](b BoundType, limit, t T) bool {
	return upperAdmits(b, limit, t)
}

// IsValid reexports the internal [isValid] check used by every constructor.
func IsValid[T constraints.Ordered](lower Lower[T], upper Upper[T]) bool {
	return isValid(lower, upper)
}
