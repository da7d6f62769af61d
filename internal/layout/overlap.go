package layout

import (
	"sort"
	"time"
)

// segment is a timed item's portion within a single day, already clipped
// to that day's [00:00, 24:00) bounds.
type segment struct {
	item  ScheduledItem
	start time.Time
	end   time.Time
}

// overlapGroup is a maximal cluster of segments whose intervals intersect
// pairwise or transitively on one day.
type overlapGroup struct {
	segments []segment
}

// boundary is one sweep event: a segment opening or closing.
type boundary struct {
	at   time.Time
	open bool
	idx  int
}

// detectOverlapGroups clusters one day's segments into maximal transitive
// overlap groups using a chronological sweep over start/end boundaries
// with a call-scoped union-find table. Segments that never share an
// instant with another come back as singleton groups. O(n log n) for the
// sort, near O(n) for the sweep.
func detectOverlapGroups(segs []segment) []overlapGroup {
	n := len(segs)
	if n == 0 {
		return nil
	}

	events := make([]boundary, 0, 2*n)
	for i, s := range segs {
		events = append(events, boundary{at: s.start, open: true, idx: i})
		events = append(events, boundary{at: s.end, open: false, idx: i})
	}
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.at.Equal(b.at) {
			return a.at.Before(b.at)
		}
		// Close before open at the same instant: a segment ending exactly
		// when another starts is adjacent, not overlapping.
		if a.open != b.open {
			return !a.open
		}
		return a.idx < b.idx
	})

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	active := make(map[int]struct{}, n)
	for _, ev := range events {
		if !ev.open {
			delete(active, ev.idx)
			continue
		}
		for other := range active {
			// Every pair of simultaneously active segments overlaps, so
			// the active set already shares one group; a single union
			// links the newcomer to all of it.
			union(ev.idx, other)
			break
		}
		active[ev.idx] = struct{}{}
	}

	// Collect groups in first-occurrence order of the input segments so
	// the result is deterministic for identical input.
	byRoot := make(map[int][]segment, n)
	var order []int
	for i := range segs {
		r := find(i)
		if _, seen := byRoot[r]; !seen {
			order = append(order, r)
		}
		byRoot[r] = append(byRoot[r], segs[i])
	}

	groups := make([]overlapGroup, 0, len(order))
	for _, r := range order {
		groups = append(groups, overlapGroup{segments: byRoot[r]})
	}
	return groups
}
