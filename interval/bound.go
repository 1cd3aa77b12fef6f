package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Bound is a single endpoint: a limit value and whether it is included.
type Bound[T constraints.Ordered] struct {
	Limit T
	Type  BoundType
}

// At creates a bound of the given type at limit.
func At[T constraints.Ordered](boundType BoundType, limit T) Bound[T] {
	return Bound[T]{
		Limit: limit,
		Type:  boundType,
	}
}

// Incl creates an inclusive bound at limit.
func Incl[T constraints.Ordered](limit T) Bound[T] {
	return At(Inclusive, limit)
}

// Excl creates an exclusive bound at limit.
func Excl[T constraints.Ordered](limit T) Bound[T] {
	return At(Exclusive, limit)
}

// Flip keeps the limit and swaps the bound type.
//
// A lower bound flipped and read as an upper bound describes the complement
// of the original half-line, and vice versa.
func (b Bound[T]) Flip() Bound[T] {
	return Bound[T]{
		Limit: b.Limit,
		Type:  b.Type.Flip(),
	}
}

// Compare orders bounds by their limit only. Ties between bound types are
// broken by [Lower.Compare] and [Upper.Compare], which know the side.
func (b Bound[T]) Compare(other Bound[T]) int {
	return compare(b.Limit, other.Limit)
}

// Lower reads the bound as the lower end of a half-line.
func (b Bound[T]) Lower() Lower[T] {
	return Lower[T]{bound: b}
}

// Upper reads the bound as the upper end of a half-line.
func (b Bound[T]) Upper() Upper[T] {
	return Upper[T]{bound: b}
}

// To creates the interval from b up to upper.
func (b Bound[T]) To(upper Bound[T]) (Interval[T], error) {
	return New(b, upper)
}

func (b Bound[T]) String() string {
	return fmt.Sprintf("%v(%v)", b.Type, b.Limit)
}
