package interval

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/iotaledger/hive.go/ierrors"
)

// Interval is a non-empty range over T, bounded below by a [Lower] and above
// by an [Upper] half-line. Each side is independently inclusive or exclusive,
// covering [a, b], (a, b), [a, b) and (a, b].
//
// Intervals are immutable values. Every constructor rejects empty intervals,
// so any Interval obtained from this package contains at least one value of a
// dense domain. The zero value is the single point [0, 0].
type Interval[T constraints.Ordered] struct {
	lower Lower[T]
	upper Upper[T]
}

// isValid returns whether the intersection of lower and upper is non-empty.
func isValid[T constraints.Ordered](lower Lower[T], upper Upper[T]) bool {
	return lower.Contains(upper.bound.Limit) && upper.Contains(lower.bound.Limit)
}

// newInterval is the one place where intervals are created from half-lines.
func newInterval[T constraints.Ordered](lower Lower[T], upper Upper[T]) (Interval[T], bool) {
	if !isValid(lower, upper) {
		return Interval[T]{}, false
	}

	return Interval[T]{
		lower: lower,
		upper: upper,
	}, true
}

// FromHalves creates the interval lower ∩ upper, failing with
// [ErrEmptyInterval] if the half-lines do not overlap.
func FromHalves[T constraints.Ordered](lower Lower[T], upper Upper[T]) (Interval[T], error) {
	interval, ok := newInterval(lower, upper)
	if !ok {
		return Interval[T]{}, ierrors.Wrapf(ErrEmptyInterval, "%v to %v", lower.bound, upper.bound)
	}

	return interval, nil
}

// New creates the interval from lower to upper, failing with
// [ErrEmptyInterval] if no value lies between them.
func New[T constraints.Ordered](lower, upper Bound[T]) (Interval[T], error) {
	return FromHalves(lower.Lower(), upper.Upper())
}

// Closed creates [lower, upper].
func Closed[T constraints.Ordered](lower, upper T) (Interval[T], error) {
	return New(Incl(lower), Incl(upper))
}

// Open creates (lower, upper).
func Open[T constraints.Ordered](lower, upper T) (Interval[T], error) {
	return New(Excl(lower), Excl(upper))
}

// LeftOpen creates (lower, upper].
func LeftOpen[T constraints.Ordered](lower, upper T) (Interval[T], error) {
	return New(Excl(lower), Incl(upper))
}

// RightOpen creates [lower, upper).
func RightOpen[T constraints.Ordered](lower, upper T) (Interval[T], error) {
	return New(Incl(lower), Excl(upper))
}

// Point creates the degenerate interval [t, t]. It only fails for values that
// are not ordered against themselves, i.e. NaN.
func Point[T constraints.Ordered](t T) (Interval[T], error) {
	return Closed(t, t)
}

// Lower returns the lower half-line of the interval.
func (i Interval[T]) Lower() Lower[T] {
	return i.lower
}

// Upper returns the upper half-line of the interval.
func (i Interval[T]) Upper() Upper[T] {
	return i.upper
}

// Inf returns the lower limit, whether or not the interval contains it.
func (i Interval[T]) Inf() T {
	return i.lower.bound.Limit
}

// Sup returns the upper limit, whether or not the interval contains it.
func (i Interval[T]) Sup() T {
	return i.upper.bound.Limit
}

// Types returns the bound types of the lower and upper side.
func (i Interval[T]) Types() (lower, upper BoundType) {
	return i.lower.bound.Type, i.upper.bound.Type
}

// Contains returns whether t lies in the interval.
func (i Interval[T]) Contains(t T) bool {
	return i.lower.Contains(t) && i.upper.Contains(t)
}

// Includes returns whether i is a superset of other.
func (i Interval[T]) Includes(other Interval[T]) bool {
	return i.lower.Includes(other.lower) && i.upper.Includes(other.upper)
}

// Equal returns whether both intervals describe the same set.
func (i Interval[T]) Equal(other Interval[T]) bool {
	return i.lower.Compare(other.lower) == 0 && i.upper.Compare(other.upper) == 0
}

// Overlaps returns whether the intervals share at least one value.
func (i Interval[T]) Overlaps(other Interval[T]) bool {
	return isValid(i.lower.Intersection(other.lower), i.upper.Intersection(other.upper))
}

// Intersection returns the values shared by both intervals, or false if they
// do not overlap.
func (i Interval[T]) Intersection(other Interval[T]) (Interval[T], bool) {
	return newInterval(i.lower.Intersection(other.lower), i.upper.Intersection(other.upper))
}

// Enclosure returns the smallest interval containing both intervals. Unlike
// the set union it also covers any gap between them.
func (i Interval[T]) Enclosure(other Interval[T]) Interval[T] {
	// Widening both sides of a valid interval keeps it valid.
	return Interval[T]{
		lower: i.lower.Union(other.lower),
		upper: i.upper.Union(other.upper),
	}
}

// Gap returns the interval strictly between two disjoint intervals, in either
// order. It returns false if the intervals overlap or touch.
func (i Interval[T]) Gap(other Interval[T]) (Interval[T], bool) {
	if gap, ok := newInterval(i.upper.Flip(), other.lower.Flip()); ok {
		return gap, true
	}

	return newInterval(other.upper.Flip(), i.lower.Flip())
}

// Union returns the set union of both intervals as an enclosure plus the gap
// that has to be removed from it, if any.
func (i Interval[T]) Union(other Interval[T]) Union[T] {
	gap, disjoint := i.Gap(other)

	return Union[T]{
		Enclosure: i.Enclosure(other),
		Gap:       gap,
		Disjoint:  disjoint,
	}
}

// LowerComplement returns the half-line of all values below the interval.
func (i Interval[T]) LowerComplement() Upper[T] {
	return i.lower.Flip()
}

// UpperComplement returns the half-line of all values above the interval.
func (i Interval[T]) UpperComplement() Lower[T] {
	return i.upper.Flip()
}

// Min returns the smallest member if the lower side is inclusive. Use
// [Minimum] for integers.
func (i Interval[T]) Min() (T, bool) {
	return i.lower.Min()
}

// Max returns the largest member if the upper side is inclusive. Use
// [Maximum] for integers.
func (i Interval[T]) Max() (T, bool) {
	return i.upper.Max()
}

func (i Interval[T]) String() string {
	open, closing := '[', ']'
	if i.lower.bound.Type == Exclusive {
		open = '('
	}

	if i.upper.bound.Type == Exclusive {
		closing = ')'
	}

	return fmt.Sprintf("%c%v, %v%c", open, i.lower.bound.Limit, i.upper.bound.Limit, closing)
}

// Union is the set union of two intervals.
//
// When the operands are disjoint, the union consists of Enclosure minus Gap;
// otherwise it is exactly Enclosure.
type Union[T constraints.Ordered] struct {
	Enclosure Interval[T]
	Gap       Interval[T]
	Disjoint  bool
}

// All returns the connected components of the union in ascending order.
func (u Union[T]) All() iter.Seq[Interval[T]] {
	return func(yield func(Interval[T]) bool) {
		if !u.Disjoint {
			yield(u.Enclosure)

			return
		}

		// Each component is one of the operands, so both are non-empty.
		first := Interval[T]{
			lower: u.Enclosure.lower,
			upper: u.Gap.lower.Flip(),
		}

		if !yield(first) {
			return
		}

		yield(Interval[T]{
			lower: u.Gap.upper.Flip(),
			upper: u.Enclosure.upper,
		})
	}
}

// EnclosureOf returns the smallest interval containing every interval in the
// sequence, or false if the sequence is empty.
func EnclosureOf[T constraints.Ordered](intervals iter.Seq[Interval[T]]) (Interval[T], bool) {
	var (
		enclosure Interval[T]
		found     bool
	)

	for interval := range intervals {
		if !found {
			enclosure, found = interval, true

			continue
		}

		enclosure = enclosure.Enclosure(interval)
	}

	return enclosure, found
}

// EnclosureOfItems returns the smallest closed interval containing every item,
// or false if the sequence is empty or holds an item that is not ordered
// against itself (NaN).
func EnclosureOfItems[T constraints.Ordered](items iter.Seq[T]) (Interval[T], bool) {
	var (
		enclosure Interval[T]
		found     bool
	)

	for item := range items {
		point, ok := newInterval(Incl(item).Lower(), Incl(item).Upper())
		if !ok {
			return Interval[T]{}, false
		}

		if !found {
			enclosure, found = point, true

			continue
		}

		enclosure = enclosure.Enclosure(point)
	}

	return enclosure, found
}
