package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmptyInterval is returned when the lower bound of an interval does not
	// lie below its upper bound, so that no value would be contained.
	ErrEmptyInterval = ierrors.New("interval is empty: lower bound must not exceed upper bound")

	// ErrNotANumber is returned when a floating-point bound is NaN.
	ErrNotANumber = ierrors.New("bound limit is NaN")

	// ErrUnbounded is returned when a range without a start or end is
	// converted to an interval.
	ErrUnbounded = ierrors.New("range is unbounded")

	// ErrOverflow is returned when shifting a limit leaves the value range of
	// its type.
	ErrOverflow = ierrors.New("bound limit overflows")
)
