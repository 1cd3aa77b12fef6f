package interval_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/crystalix007/intervals/interval"
)

func bound(limit int8, exclusive bool) interval.Bound[int8] {
	if exclusive {
		return interval.Excl(limit)
	}

	return interval.Incl(limit)
}

func FuzzInterval(f *testing.F) {
	f.Add(int8(0), int8(3), false, true, int8(1), int8(4), false, true)
	f.Add(int8(0), int8(3), false, true, int8(3), int8(5), false, true)
	f.Add(int8(0), int8(3), false, true, int8(3), int8(5), true, false)
	f.Add(int8(-128), int8(127), false, false, int8(0), int8(0), false, false)

	f.Fuzz(func(t *testing.T, aLow, aHigh int8, aLowExcl, aHighExcl bool, bLow, bHigh int8, bLowExcl, bHighExcl bool) {
		a, errA := interval.New(bound(aLow, aLowExcl), bound(aHigh, aHighExcl))
		b, errB := interval.New(bound(bLow, bLowExcl), bound(bHigh, bHighExcl))

		if errA != nil || errB != nil {
			t.Skip()
		}

		context := spew.Sdump(a, b)

		intersection, overlapping := a.Intersection(b)
		require.Equal(t, a.Overlaps(b), overlapping, context)
		require.Equal(t, overlapping, b.Overlaps(a), context)

		if overlapping {
			require.True(t, a.Includes(intersection), context)
			require.True(t, b.Includes(intersection), context)
		}

		self, ok := a.Intersection(a)
		require.True(t, ok, context)
		require.Equal(t, a, self, context)
		require.Equal(t, a, a.Enclosure(a), context)

		enclosure := a.Enclosure(b)
		require.Equal(t, enclosure, b.Enclosure(a), context)
		require.True(t, enclosure.Includes(a), context)
		require.True(t, enclosure.Includes(b), context)

		require.Equal(t, a.Includes(b) && b.Includes(a), a == b, context)
		require.Equal(t, a == b, a.Equal(b), context)

		require.Equal(t, a.Lower(), a.Lower().Flip().Flip(), context)
		require.Equal(t, a.Upper(), a.Upper().Flip().Flip(), context)

		if gap, ok := a.Gap(b); ok {
			require.False(t, gap.Overlaps(a), context)
			require.False(t, gap.Overlaps(b), context)
			require.Equal(t, enclosure, a.Enclosure(gap).Enclosure(b), context)
		}

		union := a.Union(b)
		components := slices.Collect(union.All())

		if union.Disjoint {
			require.Len(t, components, 2, context)
			require.ElementsMatch(t, []interval.Interval[int8]{a, b}, components, context)
		} else {
			require.Equal(t, []interval.Interval[int8]{enclosure}, components, context)
		}

		values := slices.Collect(interval.Values(a))
		for _, value := range values {
			require.True(t, a.Contains(value), context)

			if overlapping {
				require.Equal(t, b.Contains(value), intersection.Contains(value), context)
			}
		}

		minimum, hasMinimum := interval.Minimum(a)
		maximum, hasMaximum := interval.Maximum(a)
		require.Equal(t, len(values) > 0, hasMinimum, context)
		require.Equal(t, hasMinimum, hasMaximum, context)

		if hasMinimum {
			require.Equal(t, values[0], minimum, context)
			require.Equal(t, values[len(values)-1], maximum, context)
		}
	})
}

func FuzzEnclosureOfItems(f *testing.F) {
	f.Add(uint64(0), uint8(1))
	f.Add(uint64(42), uint8(100))

	f.Fuzz(func(t *testing.T, seed uint64, count uint8) {
		r := rand.New(rand.NewPCG(seed, seed))

		items := make([]int, count)
		for i := range items {
			items[i] = r.IntN(1000) - 500
		}

		hull, ok := interval.EnclosureOfItems(slices.Values(items))
		if count == 0 {
			require.False(t, ok)

			return
		}

		require.True(t, ok)
		require.Equal(t, slices.Min(items), hull.Inf())
		require.Equal(t, slices.Max(items), hull.Sup())

		for _, item := range items {
			require.True(t, hull.Contains(item))
		}
	})
}
