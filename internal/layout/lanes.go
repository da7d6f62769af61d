package layout

import (
	"sort"
	"time"
)

// assignLanes packs one overlap group's segments into the smallest set of
// side-by-side lanes such that no two segments in a lane overlap in time.
// Greedy first-free-lane assignment over start-sorted segments yields the
// minimum lane count for interval scheduling.
//
// The sort is fully deterministic: start ascending, then shorter duration
// first, then item ID. Returns the sorted segments, the lane index for
// each, and the total lane count.
func assignLanes(segs []segment) ([]segment, []int, int) {
	sorted := make([]segment, len(segs))
	copy(sorted, segs)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.start.Equal(b.start) {
			return a.start.Before(b.start)
		}
		da, db := a.end.Sub(a.start), b.end.Sub(b.start)
		if da != db {
			return da < db
		}
		return a.item.ID < b.item.ID
	})

	lanes := make([]int, len(sorted))
	var laneEnds []time.Time
	for i, s := range sorted {
		placed := false
		for li, end := range laneEnds {
			// A lane is free when its last segment ends at or before our
			// start; touching segments may share a lane.
			if !end.After(s.start) {
				lanes[i] = li
				laneEnds[li] = s.end
				placed = true
				break
			}
		}
		if !placed {
			lanes[i] = len(laneEnds)
			laneEnds = append(laneEnds, s.end)
		}
	}

	return sorted, lanes, len(laneEnds)
}
