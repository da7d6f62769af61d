package layout

import "time"

// testMonday is the first column of the test week (a Monday).
var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// testWeek returns 7 consecutive dates starting at start.
func testWeek(start time.Time) []time.Time {
	days := make([]time.Time, DaysPerWeek)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// testViewport returns the canonical test configuration: 08:00-21:00
// window, 1 px per minute, up to 4 lanes.
func testViewport() Viewport {
	return Viewport{
		DayStartHour:    8,
		DayEndHour:      21,
		PixelsPerMinute: 1,
		MaxVisibleLanes: 4,
		WeekDays:        testWeek(testMonday),
	}
}

// at returns an instant on the given day at h:m.
func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

// timed builds a timed ScheduledItem.
func timed(id string, start, end time.Time) ScheduledItem {
	return ScheduledItem{ID: id, Start: &start, End: &end}
}

// allDayOn builds an all-day item spanning the given range.
func allDayOn(id string, start, end time.Time) ScheduledItem {
	return ScheduledItem{ID: id, Start: &start, End: &end, AllDay: true}
}

// rectsByID indexes a day's rect blocks by item id.
func rectsByID(dl DayLayout) map[string]Block {
	out := make(map[string]Block)
	for _, b := range dl.Blocks {
		if b.Kind == KindRect {
			out[b.ItemID] = b
		}
	}
	return out
}

// seg builds a bare segment for detector/lane tests.
func seg(id string, start, end time.Time) segment {
	return segment{item: ScheduledItem{ID: id}, start: start, end: end}
}
