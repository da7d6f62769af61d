package layout

import "time"

// Skip reasons reported on the week layout's diagnostic list.
const (
	reasonMissingInstant = "only one of start/end present"
	reasonNonPositive    = "end instant not after start instant"
	reasonOutsideWeek    = "outside the visible week"
)

// partition is the classifier's output: all-day item ids and timed
// segments per day column, plus the skipped-item diagnostics.
type partition struct {
	allDay  [DaysPerWeek][]string
	timed   [DaysPerWeek][]segment
	skipped []SkippedItem
}

// partitionItems splits the input batch into per-day all-day rows and
// per-day timed segments. Timed segments are clipped to day boundaries
// here, so overlap detection never reasons across midnight. A timed item
// covering a day's entire visible window routes to that day's all-day row
// instead of the timed grid. Pure partition, no side effects.
func partitionItems(items []ScheduledItem, vp Viewport) partition {
	var p partition

	for _, it := range items {
		switch {
		case it.Start == nil && it.End == nil:
			// Floating item: lives in a separate list outside this grid.
			continue

		case it.AllDay && it.Start != nil:
			p.placeAllDay(it, vp)

		case it.Start == nil || it.End == nil:
			p.skipped = append(p.skipped, SkippedItem{ID: it.ID, Reason: reasonMissingInstant})

		case !it.End.After(*it.Start):
			p.skipped = append(p.skipped, SkippedItem{ID: it.ID, Reason: reasonNonPositive})

		default:
			p.placeTimed(it, vp)
		}
	}

	return p
}

// placeAllDay lists an all-day item under every week day it touches.
// Items with no end instant, or a degenerate range, count for the single
// day containing their start.
func (p *partition) placeAllDay(it ScheduledItem, vp Viewport) {
	singleDay := it.End == nil || !it.End.After(*it.Start)

	hit := false
	for di, day := range vp.WeekDays {
		dayStart, dayEnd := dayBounds(day)
		if singleDay {
			if !it.Start.Before(dayStart) && it.Start.Before(dayEnd) {
				p.allDay[di] = append(p.allDay[di], it.ID)
				hit = true
			}
			continue
		}
		if it.Start.Before(dayEnd) && it.End.After(dayStart) {
			p.allDay[di] = append(p.allDay[di], it.ID)
			hit = true
		}
	}
	if !hit {
		p.skipped = append(p.skipped, SkippedItem{ID: it.ID, Reason: reasonOutsideWeek})
	}
}

// placeTimed clips a timed item against each week day it touches. The
// resulting per-day segments feed overlap detection independently.
func (p *partition) placeTimed(it ScheduledItem, vp Viewport) {
	hit := false
	for di, day := range vp.WeekDays {
		dayStart, dayEnd := dayBounds(day)
		if !it.Start.Before(dayEnd) || !it.End.After(dayStart) {
			continue
		}
		hit = true

		segStart := maxTime(*it.Start, dayStart)
		segEnd := minTime(*it.End, dayEnd)

		winStart, winEnd := vp.dayWindow(day)
		if !segStart.After(winStart) && !segEnd.Before(winEnd) {
			// Spans the entire visible window: all-day row, not the grid.
			p.allDay[di] = append(p.allDay[di], it.ID)
			continue
		}

		p.timed[di] = append(p.timed[di], segment{item: it, start: segStart, end: segEnd})
	}
	if !hit {
		p.skipped = append(p.skipped, SkippedItem{ID: it.ID, Reason: reasonOutsideWeek})
	}
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
