package layout

import (
	"sort"
	"time"
)

// ComputeWeekLayout maps a batch of interval-bearing items onto a 7-day
// layout: non-overlapping rectangles within lanes, aggregation blocks for
// overlap groups too wide to show, and all-day rows. The computation is
// pure and synchronous; concurrent calls need no coordination.
//
// An invalid viewport fails the whole call. Invalid items are excluded
// and reported on the result's Skipped list; everything else proceeds.
func ComputeWeekLayout(items []ScheduledItem, vp Viewport) (*WeekLayout, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}

	part := partitionItems(items, vp)
	out := &WeekLayout{Skipped: part.skipped}

	for di := 0; di < DaysPerWeek; di++ {
		day := vp.WeekDays[di]
		dl := DayLayout{Date: day, AllDayIDs: part.allDay[di]}

		segs := part.timed[di]
		// Chronological input order keeps group emission deterministic.
		sort.SliceStable(segs, func(i, j int) bool {
			a, b := segs[i], segs[j]
			if !a.start.Equal(b.start) {
				return a.start.Before(b.start)
			}
			if !a.end.Equal(b.end) {
				return a.end.Before(b.end)
			}
			return a.item.ID < b.item.ID
		})

		for _, group := range detectOverlapGroups(segs) {
			sorted, lanes, laneCount := assignLanes(group.segments)

			if laneCount > vp.MaxVisibleLanes {
				if blk, ok := aggregateGroup(sorted, di, day, vp); ok {
					dl.Blocks = append(dl.Blocks, blk)
				}
				continue
			}

			for i, s := range sorted {
				top, height, truncTop, truncBottom, ok := vp.mapToWindow(day, *s.item.Start, *s.item.End)
				if !ok {
					continue
				}
				dl.Blocks = append(dl.Blocks, Block{
					Kind:            KindRect,
					DayIndex:        di,
					TopPx:           top,
					HeightPx:        height,
					TruncatedTop:    truncTop,
					TruncatedBottom: truncBottom,
					ItemID:          s.item.ID,
					LaneIndex:       lanes[i],
					LaneCount:       laneCount,
					Priority:        s.item.Priority,
					ColorKey:        s.item.ColorKey,
				})
			}
		}

		out.Days[di] = dl
	}

	return out, nil
}

// aggregateGroup collapses an overlap group into a single block spanning
// the union of its members' real intervals, clipped to the viewport like
// any item. Members are reachable only through ItemIDs, for on-demand
// expansion by the renderer.
func aggregateGroup(sorted []segment, dayIndex int, day time.Time, vp Viewport) (Block, bool) {
	unionStart := *sorted[0].item.Start
	unionEnd := *sorted[0].item.End
	ids := make([]string, 0, len(sorted))
	for _, s := range sorted {
		ids = append(ids, s.item.ID)
		unionStart = minTime(unionStart, *s.item.Start)
		unionEnd = maxTime(unionEnd, *s.item.End)
	}

	top, height, truncTop, truncBottom, ok := vp.mapToWindow(day, unionStart, unionEnd)
	if !ok {
		return Block{}, false
	}

	return Block{
		Kind:            KindAggregate,
		DayIndex:        dayIndex,
		TopPx:           top,
		HeightPx:        height,
		TruncatedTop:    truncTop,
		TruncatedBottom: truncBottom,
		ItemIDs:         ids,
		Count:           len(ids),
	}, true
}
