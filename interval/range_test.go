package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crystalix007/intervals/interval"
)

func TestInterval_Range(t *testing.T) {
	t.Parallel()

	i := mustNew(t, interval.Incl(1), interval.Excl(4))

	r := i.Range()
	require.Equal(t, interval.Range[int]{
		Start: interval.RangeBound[int]{Kind: interval.Included, Value: 1},
		End:   interval.RangeBound[int]{Kind: interval.Excluded, Value: 4},
	}, r)

	back, err := interval.FromRange(r)
	require.NoError(t, err)
	require.Equal(t, i, back)
}

func TestHalf_Range(t *testing.T) {
	t.Parallel()

	lower := interval.Excl(3).Lower().Range()
	require.Equal(t, interval.RangeBound[int]{Kind: interval.Excluded, Value: 3}, lower.Start)
	require.Equal(t, interval.Unbounded, lower.End.Kind)

	upper := interval.Incl(3).Upper().Range()
	require.Equal(t, interval.Unbounded, upper.Start.Kind)
	require.Equal(t, interval.RangeBound[int]{Kind: interval.Included, Value: 3}, upper.End)
}

func TestFromRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    interval.Range[int]
		err  error
	}{
		{
			name: "MissingStart",
			r:    interval.Incl(3).Upper().Range(),
			err:  interval.ErrUnbounded,
		},
		{
			name: "MissingEnd",
			r:    interval.Incl(3).Lower().Range(),
			err:  interval.ErrUnbounded,
		},
		{
			name: "Empty",
			r: interval.Range[int]{
				Start: interval.RangeBound[int]{Kind: interval.Excluded, Value: 3},
				End:   interval.RangeBound[int]{Kind: interval.Included, Value: 3},
			},
			err: interval.ErrEmptyInterval,
		},
		{
			name: "Point",
			r: interval.Range[int]{
				Start: interval.RangeBound[int]{Kind: interval.Included, Value: 3},
				End:   interval.RangeBound[int]{Kind: interval.Included, Value: 3},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			i, err := interval.FromRange(test.r)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.r, i.Range())
		})
	}
}

func TestRangeKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Unbounded", interval.Unbounded.String())
	require.Equal(t, "Included", interval.Included.String())
	require.Equal(t, "Excluded", interval.Excluded.String())
	require.Equal(t, "RangeKind(9)", interval.RangeKind(9).String())
}
