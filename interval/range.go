package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/iotaledger/hive.go/ierrors"
)

// RangeKind describes one end of a [Range].
type RangeKind uint8

const (
	// Unbounded ends extend to infinity. It is the zero value.
	Unbounded RangeKind = iota

	// Included ends contain their value.
	Included

	// Excluded ends do not contain their value.
	Excluded
)

func (k RangeKind) String() string {
	switch k {
	case Unbounded:
		return "Unbounded"
	case Included:
		return "Included"
	case Excluded:
		return "Excluded"
	default:
		return fmt.Sprintf("RangeKind(%d)", uint8(k))
	}
}

// RangeBound is one end of a [Range]. Value is ignored for unbounded ends.
type RangeBound[T constraints.Ordered] struct {
	Kind  RangeKind
	Value T
}

// Range is a generic start/end description of a set of values, where either
// end may be missing. It is used to exchange intervals and half-lines with
// code that does not know about bound sides.
type Range[T constraints.Ordered] struct {
	Start RangeBound[T]
	End   RangeBound[T]
}

func rangeBound[T constraints.Ordered](b Bound[T]) RangeBound[T] {
	kind := Included
	if b.Type == Exclusive {
		kind = Excluded
	}

	return RangeBound[T]{
		Kind:  kind,
		Value: b.Limit,
	}
}

func (b RangeBound[T]) bound() (Bound[T], bool) {
	switch b.Kind {
	case Included:
		return Incl(b.Value), true
	case Excluded:
		return Excl(b.Value), true
	default:
		return Bound[T]{}, false
	}
}

// Range returns the half-line as a range without an end.
func (l Lower[T]) Range() Range[T] {
	return Range[T]{Start: rangeBound(l.bound)}
}

// Range returns the half-line as a range without a start.
func (u Upper[T]) Range() Range[T] {
	return Range[T]{End: rangeBound(u.bound)}
}

// Range returns the interval as a range.
func (i Interval[T]) Range() Range[T] {
	return Range[T]{
		Start: rangeBound(i.lower.bound),
		End:   rangeBound(i.upper.bound),
	}
}

// FromRange converts a range with both ends into an interval. It fails with
// [ErrUnbounded] if an end is missing and with [ErrEmptyInterval] if the range
// is empty.
func FromRange[T constraints.Ordered](r Range[T]) (Interval[T], error) {
	lower, ok := r.Start.bound()
	if !ok {
		return Interval[T]{}, ierrors.Wrap(ErrUnbounded, "missing start")
	}

	upper, ok := r.End.bound()
	if !ok {
		return Interval[T]{}, ierrors.Wrap(ErrUnbounded, "missing end")
	}

	return New(lower, upper)
}
