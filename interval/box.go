package interval

import (
	"golang.org/x/exp/constraints"

	"github.com/crystalix007/intervals/ndim"
)

// Box2 is a rectangle: one interval per axis of a two-dimensional space.
type Box2[T constraints.Ordered] = ndim.Dim2[Interval[T]]

// Box3 is an axis-aligned box in three dimensions.
type Box3[T constraints.Ordered] = ndim.Dim3[Interval[T]]

// Box4 is an axis-aligned box in four dimensions.
type Box4[T constraints.Ordered] = ndim.Dim4[Interval[T]]

// BoxN is an axis-aligned box with a dimension chosen at runtime.
type BoxN[T constraints.Ordered] = ndim.NDim[Interval[T]]
