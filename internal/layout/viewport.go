package layout

import "time"

// mapToWindow converts an absolute interval into vertical pixel offsets
// within one day's visible window. The interval is clamped to the window;
// ok is false when it misses the window entirely for that day. Truncation
// flags are computed against the interval's real extent, so a segment
// clipped earlier at a day boundary still reports that it continues past
// the window edge.
func (v Viewport) mapToWindow(day time.Time, start, end time.Time) (topPx, heightPx float64, truncTop, truncBottom, ok bool) {
	winStart, winEnd := v.dayWindow(day)

	clippedStart := start
	if clippedStart.Before(winStart) {
		clippedStart = winStart
	}
	clippedEnd := end
	if clippedEnd.After(winEnd) {
		clippedEnd = winEnd
	}
	if !clippedEnd.After(clippedStart) {
		return 0, 0, false, false, false
	}

	topPx = clippedStart.Sub(winStart).Minutes() * v.PixelsPerMinute
	heightPx = clippedEnd.Sub(clippedStart).Minutes() * v.PixelsPerMinute
	return topPx, heightPx, start.Before(winStart), end.After(winEnd), true
}
