package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Lower is the half-line above a bound: {x : x >= limit} when the bound is
// inclusive and {x : x > limit} when it is exclusive.
type Lower[T constraints.Ordered] struct {
	bound Bound[T]
}

// Upper is the half-line below a bound: {x : x <= limit} when the bound is
// inclusive and {x : x < limit} when it is exclusive.
type Upper[T constraints.Ordered] struct {
	bound Bound[T]
}

// Limit returns the limit value of the half-line.
func (l Lower[T]) Limit() T {
	return l.bound.Limit
}

// Type returns whether the limit belongs to the half-line.
func (l Lower[T]) Type() BoundType {
	return l.bound.Type
}

// Bound returns the underlying bound.
func (l Lower[T]) Bound() Bound[T] {
	return l.bound
}

// Compare orders lower half-lines from the least to the most restrictive.
//
// Limits are compared first. On equal limits an inclusive bound sorts before
// an exclusive one, since it also admits the limit itself.
func (l Lower[T]) Compare(other Lower[T]) int {
	if c := compare(l.bound.Limit, other.bound.Limit); c != 0 {
		return c
	}

	return compare(l.bound.Type, other.bound.Type)
}

// Includes returns whether l is a superset of other.
func (l Lower[T]) Includes(other Lower[T]) bool {
	return l.Compare(other) <= 0
}

// Contains returns whether t lies in the half-line.
func (l Lower[T]) Contains(t T) bool {
	return lowerAdmits(l.bound.Type, l.bound.Limit, t)
}

// Intersection returns the more restrictive of the two half-lines.
func (l Lower[T]) Intersection(other Lower[T]) Lower[T] {
	if l.Compare(other) >= 0 {
		return l
	}

	return other
}

// Union returns the less restrictive of the two half-lines.
func (l Lower[T]) Union(other Lower[T]) Lower[T] {
	if l.Compare(other) <= 0 {
		return l
	}

	return other
}

// Flip returns the complement of l: every value below it.
func (l Lower[T]) Flip() Upper[T] {
	return Upper[T]{bound: l.bound.Flip()}
}

// Min returns the smallest member of the half-line. Only an inclusive bound
// attains its limit; use [LowerMinimum] for integers.
func (l Lower[T]) Min() (T, bool) {
	if l.bound.Type != Inclusive {
		var zero T

		return zero, false
	}

	return l.bound.Limit, true
}

func (l Lower[T]) withType(boundType BoundType) Lower[T] {
	return At(boundType, l.bound.Limit).Lower()
}

func (l Lower[T]) String() string {
	if l.bound.Type == Inclusive {
		return fmt.Sprintf("[%v, +∞)", l.bound.Limit)
	}

	return fmt.Sprintf("(%v, +∞)", l.bound.Limit)
}

// Limit returns the limit value of the half-line.
func (u Upper[T]) Limit() T {
	return u.bound.Limit
}

// Type returns whether the limit belongs to the half-line.
func (u Upper[T]) Type() BoundType {
	return u.bound.Type
}

// Bound returns the underlying bound.
func (u Upper[T]) Bound() Bound[T] {
	return u.bound
}

// Compare orders upper half-lines from the most to the least restrictive.
//
// Limits are compared first. On equal limits an exclusive bound sorts before
// an inclusive one, so that the maximum of two upper half-lines is the less
// restrictive one.
func (u Upper[T]) Compare(other Upper[T]) int {
	if c := compare(u.bound.Limit, other.bound.Limit); c != 0 {
		return c
	}

	return compare(other.bound.Type, u.bound.Type)
}

// Includes returns whether u is a superset of other.
func (u Upper[T]) Includes(other Upper[T]) bool {
	return u.Compare(other) >= 0
}

// Contains returns whether t lies in the half-line.
func (u Upper[T]) Contains(t T) bool {
	return upperAdmits(u.bound.Type, u.bound.Limit, t)
}

// Intersection returns the more restrictive of the two half-lines.
func (u Upper[T]) Intersection(other Upper[T]) Upper[T] {
	if u.Compare(other) <= 0 {
		return u
	}

	return other
}

// Union returns the less restrictive of the two half-lines.
func (u Upper[T]) Union(other Upper[T]) Upper[T] {
	if u.Compare(other) >= 0 {
		return u
	}

	return other
}

// Flip returns the complement of u: every value above it.
func (u Upper[T]) Flip() Lower[T] {
	return Lower[T]{bound: u.bound.Flip()}
}

// Max returns the largest member of the half-line. Only an inclusive bound
// attains its limit; use [UpperMaximum] for integers.
func (u Upper[T]) Max() (T, bool) {
	if u.bound.Type != Inclusive {
		var zero T

		return zero, false
	}

	return u.bound.Limit, true
}

func (u Upper[T]) withType(boundType BoundType) Upper[T] {
	return At(boundType, u.bound.Limit).Upper()
}

func (u Upper[T]) String() string {
	if u.bound.Type == Inclusive {
		return fmt.Sprintf("(-∞, %v]", u.bound.Limit)
	}

	return fmt.Sprintf("(-∞, %v)", u.bound.Limit)
}
