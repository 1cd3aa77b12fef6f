// Package ndim provides fixed-size groups of homogeneous values, one per axis
// of an N-dimensional space.
//
// [Dim2], [Dim3] and [Dim4] are arrays with x/y/z/w accessors, so values can be
// addressed either by index or by axis name. [NDim] covers any other dimension.
// The types carry no algebra of their own; per-axis operations are applied
// with Map and Zip.
package ndim

import (
	"iter"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrDimensionMismatch is returned when values of different dimensions are
// combined or converted.
var ErrDimensionMismatch = ierrors.New("dimension mismatch")

// NDim is a fixed-length sequence of values whose length is chosen at
// construction. It is immutable: every modification returns a copy.
type NDim[T any] struct {
	axes []T
}

// New creates an NDim holding a copy of axes.
func New[T any](axes ...T) NDim[T] {
	return NDim[T]{axes: slices.Clone(axes)}
}

// Len returns the number of dimensions.
func (n NDim[T]) Len() int {
	return len(n.axes)
}

// At returns the value of axis i. It panics if i is out of range.
func (n NDim[T]) At(i int) T {
	return n.axes[i]
}

// With returns a copy of n with axis i set to value.
func (n NDim[T]) With(i int, value T) NDim[T] {
	axes := slices.Clone(n.axes)
	axes[i] = value

	return NDim[T]{axes: axes}
}

// Slice returns a copy of the values.
func (n NDim[T]) Slice() []T {
	return slices.Clone(n.axes)
}

// All returns an iterator over axis indices and values.
func (n NDim[T]) All() iter.Seq2[int, T] {
	return slices.All(n.axes)
}

// Map applies f to every axis.
func (n NDim[T]) Map(f func(T) T) NDim[T] {
	axes := make([]T, len(n.axes))
	mapInto(axes, n.axes, f)

	return NDim[T]{axes: axes}
}

// Zip combines the values of both operands axis by axis.
func (n NDim[T]) Zip(other NDim[T], f func(a, b T) T) (NDim[T], error) {
	if len(n.axes) != len(other.axes) {
		return NDim[T]{}, ierrors.Wrapf(ErrDimensionMismatch, "%d and %d", len(n.axes), len(other.axes))
	}

	axes := make([]T, len(n.axes))
	zipInto(axes, n.axes, other.axes, f)

	return NDim[T]{axes: axes}, nil
}

// EqualFunc returns whether both operands have the same dimension and eq holds
// for every axis.
func (n NDim[T]) EqualFunc(other NDim[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(n.axes, other.axes, eq)
}

// Equal returns whether a and b hold the same values.
func Equal[T comparable](a, b NDim[T]) bool {
	return slices.Equal(a.axes, b.axes)
}

func mapInto[T any](dst, src []T, f func(T) T) {
	for i, value := range src {
		dst[i] = f(value)
	}
}

func zipInto[T any](dst, a, b []T, f func(a, b T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}
