package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaon-hs/gaon-portal-api/internal/models"
)

func TestTableOrderedAndNonOverlapping(t *testing.T) {
	require.NotEmpty(t, Table)

	prevEnd := -1
	for i, seg := range Table {
		start, ok := parseClock(seg.Start)
		require.True(t, ok, "segment %d start %q", i, seg.Start)
		end, ok := parseClock(seg.End)
		require.True(t, ok, "segment %d end %q", i, seg.End)

		require.LessOrEqual(t, start, end, "segment %d start after end", i)
		require.GreaterOrEqual(t, start, prevEnd, "segment %d overlaps previous", i)
		prevEnd = end
	}
}

func TestTableClassSegmentsCarryPeriods(t *testing.T) {
	seen := map[int]bool{}
	for _, seg := range Table {
		if seg.Kind != models.SegmentClass {
			require.Zero(t, seg.Period)
			require.NotEmpty(t, seg.Label)
			continue
		}
		require.Positive(t, seg.Period)
		require.False(t, seen[seg.Period], "duplicate period %d", seg.Period)
		seen[seg.Period] = true
	}
	for p := 1; p <= 9; p++ {
		require.True(t, seen[p], "missing period %d", p)
	}
}

func TestTableMealSegmentsAreSpecial(t *testing.T) {
	special := 0
	for _, seg := range Table {
		if seg.Special {
			special++
		}
	}
	require.Equal(t, 3, special)
}
