package layout

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeWeekLayout_Invariants property-tests the engine's core
// guarantees over randomized batches: every visible item is placed exactly
// once per day, same-lane rectangles never collide, lane counts respect
// the aggregation threshold, and output is deterministic.
func TestComputeWeekLayout_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		vp := testViewport()
		vp.MaxVisibleLanes = rng.Intn(4) + 1

		numItems := rng.Intn(20) + 1
		items := make([]ScheduledItem, 0, numItems)
		for i := 0; i < numItems; i++ {
			day := testMonday.AddDate(0, 0, rng.Intn(DaysPerWeek))
			start := at(day, rng.Intn(24), rng.Intn(60))
			end := start.Add(time.Duration(rng.Intn(585)+15) * time.Minute)
			items = append(items, ScheduledItem{
				ID:    fmt.Sprintf("item-%02d", i),
				Start: &start,
				End:   &end,
			})
		}

		wl, err := ComputeWeekLayout(items, vp)
		require.NoError(t, err, "trial %d", trial)

		// Invariant 1: per day, each id placed at most once across rects,
		// aggregates, and the all-day row.
		for di, dl := range wl.Days {
			seen := make(map[string]int)
			for _, b := range dl.Blocks {
				switch b.Kind {
				case KindRect:
					seen[b.ItemID]++
				case KindAggregate:
					for _, id := range b.ItemIDs {
						seen[id]++
					}
				}
			}
			for _, id := range dl.AllDayIDs {
				seen[id]++
			}
			for id, n := range seen {
				assert.Equal(t, 1, n, "trial %d day %d: item %s placed %d times", trial, di, id, n)
			}
		}

		// Invariant 2: every item visible within some day's window appears
		// exactly once on each such day.
		for _, it := range items {
			for di := range vp.WeekDays {
				winStart, winEnd := vp.dayWindow(vp.WeekDays[di])
				if !it.Start.Before(winEnd) || !it.End.After(winStart) {
					continue
				}
				placed := 0
				for _, b := range wl.Days[di].Blocks {
					if b.Kind == KindRect && b.ItemID == it.ID {
						placed++
					}
					if b.Kind == KindAggregate {
						for _, id := range b.ItemIDs {
							if id == it.ID {
								placed++
							}
						}
					}
				}
				for _, id := range wl.Days[di].AllDayIDs {
					if id == it.ID {
						placed++
					}
				}
				assert.Equal(t, 1, placed, "trial %d day %d: item %s visible but placed %d times", trial, di, it.ID, placed)
			}
		}

		windowPx := float64((vp.DayEndHour-vp.DayStartHour)*60) * vp.PixelsPerMinute
		for di, dl := range wl.Days {
			var rects []Block
			for _, b := range dl.Blocks {
				// Invariant 3: all blocks sit inside the window's pixel range.
				assert.GreaterOrEqual(t, b.TopPx, 0.0, "trial %d day %d", trial, di)
				assert.LessOrEqual(t, b.TopPx+b.HeightPx, windowPx+1e-9, "trial %d day %d", trial, di)
				assert.Greater(t, b.HeightPx, 0.0, "trial %d day %d", trial, di)

				if b.Kind == KindRect {
					// Invariant 4: visible lane counts never exceed the threshold.
					assert.LessOrEqual(t, b.LaneCount, vp.MaxVisibleLanes, "trial %d day %d", trial, di)
					assert.Less(t, b.LaneIndex, b.LaneCount, "trial %d day %d", trial, di)
					rects = append(rects, b)
				} else {
					// Invariant 5: aggregation only kicks in past the threshold.
					assert.Greater(t, b.Count, vp.MaxVisibleLanes, "trial %d day %d", trial, di)
					assert.Len(t, b.ItemIDs, b.Count, "trial %d day %d", trial, di)
				}
			}

			// Invariant 6: same-lane rectangles never overlap vertically.
			for i := range rects {
				for j := i + 1; j < len(rects); j++ {
					if rects[i].LaneIndex != rects[j].LaneIndex {
						continue
					}
					a, b := rects[i], rects[j]
					overlaps := a.TopPx < b.TopPx+b.HeightPx && b.TopPx < a.TopPx+a.HeightPx
					assert.False(t, overlaps,
						"trial %d day %d: rects %s and %s share lane %d and overlap",
						trial, di, a.ItemID, b.ItemID, a.LaneIndex)
				}
			}
		}

		// Invariant 7: identical input yields identical output.
		again, err := ComputeWeekLayout(items, vp)
		require.NoError(t, err)
		assert.Equal(t, wl, again, "trial %d: output must be deterministic", trial)
	}
}
