package notation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/intervals/internal/notation"
	"github.com/crystalix007/intervals/interval"
)

func TestParseBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		lower interval.Bound[int64]
		upper interval.Bound[int64]
	}{
		{"[0, 3]", interval.Incl[int64](0), interval.Incl[int64](3)},
		{"(0, 3)", interval.Excl[int64](0), interval.Excl[int64](3)},
		{"[0,3)", interval.Incl[int64](0), interval.Excl[int64](3)},
		{" ( -2 , 3 ] ", interval.Excl[int64](-2), interval.Incl[int64](3)},
		{"=4", interval.Incl[int64](4), interval.Incl[int64](4)},
		{"7", interval.Incl[int64](7), interval.Incl[int64](7)},
		{"[5, 1]", interval.Incl[int64](5), interval.Incl[int64](1)},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()

			lower, upper, err := notation.ParseBounds(test.input, notation.Int)
			require.NoError(t, err)
			require.Equal(t, test.lower, lower)
			require.Equal(t, test.upper, upper)
		})
	}
}

func TestParseBounds_errors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"   ",
		"[0 3]",
		"[, 3]",
		"[0, ]",
		"[a, 3]",
		"[0, b)",
		"x",
		"=",
		"[0, 3",
	} {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, _, err := notation.ParseBounds(input, notation.Int)
			require.ErrorIs(t, err, notation.ErrSyntax)
		})
	}
}

func TestParseInt(t *testing.T) {
	t.Parallel()

	i, err := notation.ParseInt("[0, 3)")
	require.NoError(t, err)
	require.Equal(t, "[0, 3)", i.String())

	_, err = notation.ParseInt("[3, 0]")
	require.ErrorIs(t, err, interval.ErrEmptyInterval)

	_, err = notation.ParseInt("[0.5, 1]")
	require.ErrorIs(t, err, notation.ErrSyntax)
}

func TestParseFloat(t *testing.T) {
	t.Parallel()

	i, err := notation.ParseFloat("(0.5, 2.25]")
	require.NoError(t, err)
	require.Equal(t, "(0.5, 2.25]", i.String())

	unbounded, err := notation.ParseFloat("(-Inf, +Inf)")
	require.NoError(t, err)
	require.True(t, math.IsInf(unbounded.Inf(), -1))
	require.True(t, math.IsInf(unbounded.Sup(), 1))

	_, err = notation.ParseFloat("[NaN, 1]")
	require.ErrorIs(t, err, interval.ErrNotANumber)

	_, err = notation.ParseFloat("[2, 1]")
	require.ErrorIs(t, err, interval.ErrEmptyInterval)
}
