package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignLanes_SingletonGetsLaneZeroOfOne(t *testing.T) {
	d := testMonday
	sorted, lanes, count := assignLanes([]segment{seg("a", at(d, 9, 0), at(d, 10, 0))})

	require.Len(t, sorted, 1)
	assert.Equal(t, []int{0}, lanes)
	assert.Equal(t, 1, count)
}

func TestAssignLanes_TwoOverlappingGetSeparateLanes(t *testing.T) {
	d := testMonday
	sorted, lanes, count := assignLanes([]segment{
		seg("a", at(d, 9, 0), at(d, 10, 0)),
		seg("b", at(d, 9, 30), at(d, 10, 30)),
	})

	assert.Equal(t, "a", sorted[0].item.ID)
	assert.Equal(t, "b", sorted[1].item.ID)
	assert.Equal(t, []int{0, 1}, lanes)
	assert.Equal(t, 2, count)
}

func TestAssignLanes_LaneReusedAfterItemEnds(t *testing.T) {
	// b overlaps a, c starts after a ends and reuses lane 0.
	d := testMonday
	sorted, lanes, count := assignLanes([]segment{
		seg("a", at(d, 9, 0), at(d, 10, 0)),
		seg("b", at(d, 9, 30), at(d, 11, 0)),
		seg("c", at(d, 10, 0), at(d, 10, 30)),
	})

	require.Equal(t, 2, count)
	assert.Equal(t, "a", sorted[0].item.ID)
	assert.Equal(t, 0, lanes[0])
	assert.Equal(t, "b", sorted[1].item.ID)
	assert.Equal(t, 1, lanes[1])
	assert.Equal(t, "c", sorted[2].item.ID)
	assert.Equal(t, 0, lanes[2], "c starts exactly when a ends and may share its lane")
}

func TestAssignLanes_LaneCountEqualsMaxSimultaneous(t *testing.T) {
	// Peak concurrency is 3 (between 10:00 and 10:30) even though the
	// group holds five segments.
	d := testMonday
	segs := []segment{
		seg("a", at(d, 9, 0), at(d, 10, 30)),
		seg("b", at(d, 9, 30), at(d, 11, 0)),
		seg("c", at(d, 10, 0), at(d, 12, 0)),
		seg("d", at(d, 10, 30), at(d, 12, 30)),
		seg("e", at(d, 11, 0), at(d, 13, 0)),
	}

	_, _, count := assignLanes(segs)

	assert.Equal(t, 3, count)
}

func TestAssignLanes_ShorterDurationWinsStartTie(t *testing.T) {
	d := testMonday
	sorted, lanes, _ := assignLanes([]segment{
		seg("long", at(d, 9, 0), at(d, 11, 0)),
		seg("short", at(d, 9, 0), at(d, 9, 30)),
	})

	assert.Equal(t, "short", sorted[0].item.ID)
	assert.Equal(t, 0, lanes[0])
	assert.Equal(t, "long", sorted[1].item.ID)
	assert.Equal(t, 1, lanes[1])
}

func TestAssignLanes_IdenticalIntervalsOrderByID(t *testing.T) {
	d := testMonday
	sorted, lanes, count := assignLanes([]segment{
		seg("z", at(d, 9, 0), at(d, 10, 0)),
		seg("a", at(d, 9, 0), at(d, 10, 0)),
		seg("m", at(d, 9, 0), at(d, 10, 0)),
	})

	assert.Equal(t, "a", sorted[0].item.ID)
	assert.Equal(t, "m", sorted[1].item.ID)
	assert.Equal(t, "z", sorted[2].item.ID)
	assert.Equal(t, []int{0, 1, 2}, lanes)
	assert.Equal(t, 3, count)
}

func TestAssignLanes_NoTwoSameLaneSegmentsOverlap(t *testing.T) {
	d := testMonday
	segs := []segment{
		seg("a", at(d, 9, 0), at(d, 12, 0)),
		seg("b", at(d, 9, 15), at(d, 10, 0)),
		seg("c", at(d, 10, 0), at(d, 10, 45)),
		seg("d", at(d, 10, 30), at(d, 11, 30)),
		seg("e", at(d, 11, 30), at(d, 12, 30)),
	}

	sorted, lanes, _ := assignLanes(segs)

	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if lanes[i] != lanes[j] {
				continue
			}
			overlaps := sorted[i].start.Before(sorted[j].end) && sorted[j].start.Before(sorted[i].end)
			assert.False(t, overlaps, "segments %s and %s share lane %d but overlap",
				sorted[i].item.ID, sorted[j].item.ID, lanes[i])
		}
	}
}
