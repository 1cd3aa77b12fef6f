package ndim

import (
	"iter"
	"slices"

	"github.com/iotaledger/hive.go/ierrors"
)

// Dim2 holds one value per axis of a two-dimensional space.
type Dim2[T any] [2]T

// Dim3 holds one value per axis of a three-dimensional space.
type Dim3[T any] [3]T

// Dim4 holds one value per axis of a four-dimensional space.
type Dim4[T any] [4]T

// XY is the named-field view of a [Dim2].
type XY[T any] struct {
	X, Y T
}

// XYZ is the named-field view of a [Dim3].
type XYZ[T any] struct {
	X, Y, Z T
}

// XYZW is the named-field view of a [Dim4].
type XYZW[T any] struct {
	X, Y, Z, W T
}

// New2 creates a Dim2 from its axes.
func New2[T any](x, y T) Dim2[T] {
	return Dim2[T]{x, y}
}

// New3 creates a Dim3 from its axes.
func New3[T any](x, y, z T) Dim3[T] {
	return Dim3[T]{x, y, z}
}

// New4 creates a Dim4 from its axes.
func New4[T any](x, y, z, w T) Dim4[T] {
	return Dim4[T]{x, y, z, w}
}

// FromXY converts the named-field view back into a Dim2.
func FromXY[T any](v XY[T]) Dim2[T] {
	return New2(v.X, v.Y)
}

// FromXYZ converts the named-field view back into a Dim3.
func FromXYZ[T any](v XYZ[T]) Dim3[T] {
	return New3(v.X, v.Y, v.Z)
}

// FromXYZW converts the named-field view back into a Dim4.
func FromXYZW[T any](v XYZW[T]) Dim4[T] {
	return New4(v.X, v.Y, v.Z, v.W)
}

// ToDim2 converts an NDim of length 2.
func ToDim2[T any](n NDim[T]) (Dim2[T], error) {
	var d Dim2[T]
	if err := fill(d[:], n); err != nil {
		return Dim2[T]{}, err
	}

	return d, nil
}

// ToDim3 converts an NDim of length 3.
func ToDim3[T any](n NDim[T]) (Dim3[T], error) {
	var d Dim3[T]
	if err := fill(d[:], n); err != nil {
		return Dim3[T]{}, err
	}

	return d, nil
}

// ToDim4 converts an NDim of length 4.
func ToDim4[T any](n NDim[T]) (Dim4[T], error) {
	var d Dim4[T]
	if err := fill(d[:], n); err != nil {
		return Dim4[T]{}, err
	}

	return d, nil
}

func fill[T any](dst []T, n NDim[T]) error {
	if len(dst) != len(n.axes) {
		return ierrors.Wrapf(ErrDimensionMismatch, "want %d, got %d", len(dst), len(n.axes))
	}

	copy(dst, n.axes)

	return nil
}

func (d Dim2[T]) X() T { return d[0] }
func (d Dim2[T]) Y() T { return d[1] }

func (d *Dim2[T]) SetX(v T) { d[0] = v }
func (d *Dim2[T]) SetY(v T) { d[1] = v }

// At returns the value of axis i. It panics if i is out of range.
func (d Dim2[T]) At(i int) T {
	return d[i]
}

// Array returns the values as a plain array.
func (d Dim2[T]) Array() [2]T {
	return [2]T(d)
}

// All returns an iterator over axis indices and values.
func (d Dim2[T]) All() iter.Seq2[int, T] {
	return slices.All(d[:])
}

// Map applies f to every axis.
func (d Dim2[T]) Map(f func(T) T) Dim2[T] {
	var out Dim2[T]
	mapInto(out[:], d[:], f)

	return out
}

// Zip combines the values of both operands axis by axis.
func (d Dim2[T]) Zip(other Dim2[T], f func(a, b T) T) Dim2[T] {
	var out Dim2[T]
	zipInto(out[:], d[:], other[:], f)

	return out
}

// XY returns the named-field view.
func (d Dim2[T]) XY() XY[T] {
	return XY[T]{X: d[0], Y: d[1]}
}

// NDim converts d into an NDim of length 2.
func (d Dim2[T]) NDim() NDim[T] {
	return New(d[:]...)
}

func (d Dim3[T]) X() T { return d[0] }
func (d Dim3[T]) Y() T { return d[1] }
func (d Dim3[T]) Z() T { return d[2] }

func (d *Dim3[T]) SetX(v T) { d[0] = v }
func (d *Dim3[T]) SetY(v T) { d[1] = v }
func (d *Dim3[T]) SetZ(v T) { d[2] = v }

// At returns the value of axis i. It panics if i is out of range.
func (d Dim3[T]) At(i int) T {
	return d[i]
}

// Array returns the values as a plain array.
func (d Dim3[T]) Array() [3]T {
	return [3]T(d)
}

// All returns an iterator over axis indices and values.
func (d Dim3[T]) All() iter.Seq2[int, T] {
	return slices.All(d[:])
}

// Map applies f to every axis.
func (d Dim3[T]) Map(f func(T) T) Dim3[T] {
	var out Dim3[T]
	mapInto(out[:], d[:], f)

	return out
}

// Zip combines the values of both operands axis by axis.
func (d Dim3[T]) Zip(other Dim3[T], f func(a, b T) T) Dim3[T] {
	var out Dim3[T]
	zipInto(out[:], d[:], other[:], f)

	return out
}

// XYZ returns the named-field view.
func (d Dim3[T]) XYZ() XYZ[T] {
	return XYZ[T]{X: d[0], Y: d[1], Z: d[2]}
}

// NDim converts d into an NDim of length 3.
func (d Dim3[T]) NDim() NDim[T] {
	return New(d[:]...)
}

func (d Dim4[T]) X() T { return d[0] }
func (d Dim4[T]) Y() T { return d[1] }
func (d Dim4[T]) Z() T { return d[2] }
func (d Dim4[T]) W() T { return d[3] }

func (d *Dim4[T]) SetX(v T) { d[0] = v }
func (d *Dim4[T]) SetY(v T) { d[1] = v }
func (d *Dim4[T]) SetZ(v T) { d[2] = v }
func (d *Dim4[T]) SetW(v T) { d[3] = v }

// At returns the value of axis i. It panics if i is out of range.
func (d Dim4[T]) At(i int) T {
	return d[i]
}

// Array returns the values as a plain array.
func (d Dim4[T]) Array() [4]T {
	return [4]T(d)
}

// All returns an iterator over axis indices and values.
func (d Dim4[T]) All() iter.Seq2[int, T] {
	return slices.All(d[:])
}

// Map applies f to every axis.
func (d Dim4[T]) Map(f func(T) T) Dim4[T] {
	var out Dim4[T]
	mapInto(out[:], d[:], f)

	return out
}

// Zip combines the values of both operands axis by axis.
func (d Dim4[T]) Zip(other Dim4[T], f func(a, b T) T) Dim4[T] {
	var out Dim4[T]
	zipInto(out[:], d[:], other[:], f)

	return out
}

// XYZW returns the named-field view.
func (d Dim4[T]) XYZW() XYZW[T] {
	return XYZW[T]{X: d[0], Y: d[1], Z: d[2], W: d[3]}
}

// NDim converts d into an NDim of length 4.
func (d Dim4[T]) NDim() NDim[T] {
	return New(d[:]...)
}
