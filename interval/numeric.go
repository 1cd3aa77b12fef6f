package interval

import (
	"golang.org/x/exp/constraints"

	"github.com/iotaledger/hive.go/ierrors"
)

// Number is a scalar that supports addition and subtraction.
type Number interface {
	constraints.Integer | constraints.Float
}

// Measure returns the length of the interval, Sup - Inf.
//
// For floats the result is NaN when both limits are the same infinity.
func Measure[T Number](i Interval[T]) T {
	return i.upper.bound.Limit - i.lower.bound.Limit
}

// DilateLower moves the limit of a lower half-line down by delta, widening it
// for positive delta.
func DilateLower[T Number](l Lower[T], delta T) Lower[T] {
	return At(l.bound.Type, l.bound.Limit-delta).Lower()
}

// DilateUpper moves the limit of an upper half-line up by delta, widening it
// for positive delta.
func DilateUpper[T Number](u Upper[T], delta T) Upper[T] {
	return At(u.bound.Type, u.bound.Limit+delta).Upper()
}

// TryDilateLower is [DilateLower] failing with [ErrOverflow] instead of
// wrapping around or producing NaN.
func TryDilateLower[T Number](l Lower[T], delta T) (Lower[T], error) {
	limit, ok := checkedSub(l.bound.Limit, delta)
	if !ok {
		return Lower[T]{}, ierrors.Wrapf(ErrOverflow, "%v - %v", l.bound.Limit, delta)
	}

	return At(l.bound.Type, limit).Lower(), nil
}

// TryDilateUpper is [DilateUpper] failing with [ErrOverflow] instead of
// wrapping around or producing NaN.
func TryDilateUpper[T Number](u Upper[T], delta T) (Upper[T], error) {
	limit, ok := checkedAdd(u.bound.Limit, delta)
	if !ok {
		return Upper[T]{}, ierrors.Wrapf(ErrOverflow, "%v + %v", u.bound.Limit, delta)
	}

	return At(u.bound.Type, limit).Upper(), nil
}

// Dilate widens both sides of the interval by delta. A negative delta shrinks
// the interval and fails with [ErrEmptyInterval] once nothing is left.
func Dilate[T Number](i Interval[T], delta T) (Interval[T], error) {
	lower, err := TryDilateLower(i.lower, delta)
	if err != nil {
		return Interval[T]{}, err
	}

	upper, err := TryDilateUpper(i.upper, delta)
	if err != nil {
		return Interval[T]{}, err
	}

	return FromHalves(lower, upper)
}

func checkedSub[T Number](a, delta T) (T, bool) {
	result := a - delta
	if isNaN(result) || (delta > 0 && result > a) || (delta < 0 && result < a) {
		return result, false
	}

	return result, true
}

func checkedAdd[T Number](a, delta T) (T, bool) {
	result := a + delta
	if isNaN(result) || (delta > 0 && result < a) || (delta < 0 && result > a) {
		return result, false
	}

	return result, true
}

// isNaN is only ever true for floats.
func isNaN[T Number](v T) bool {
	return v != v
}
