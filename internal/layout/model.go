package layout

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of day columns in a week layout.
const DaysPerWeek = 7

// ScheduledItem is one layout input. Start and End are absolute,
// already-localized instants. Both present means the item is timed; both
// absent means it floats outside the schedule grid and is ignored here.
// Priority and ColorKey are opaque metadata carried through unchanged.
type ScheduledItem struct {
	ID       string
	Start    *time.Time
	End      *time.Time
	AllDay   bool
	Priority string
	ColorKey string
}

// Viewport describes the visible time-of-day window and pixel scale for
// one layout computation. It is read-only for the duration of the call.
type Viewport struct {
	// DayStartHour and DayEndHour bound the visible window, in whole
	// hours from midnight (0–24, start < end).
	DayStartHour int
	DayEndHour   int

	// PixelsPerMinute converts clipped durations into vertical pixels.
	PixelsPerMinute float64

	// MaxVisibleLanes is the lane-count threshold above which an overlap
	// group collapses into a single aggregation block.
	MaxVisibleLanes int

	// WeekDays holds the 7 ordered calendar dates (midnight instants)
	// defining the layout's day columns.
	WeekDays []time.Time
}

// Validate reports a caller programming error in the viewport
// configuration. A layout computation fails fast on any such error.
func (v Viewport) Validate() error {
	if v.DayStartHour < 0 || v.DayEndHour > 24 || v.DayStartHour >= v.DayEndHour {
		return fmt.Errorf("invalid day window: start hour %d must be before end hour %d within 0-24", v.DayStartHour, v.DayEndHour)
	}
	if v.PixelsPerMinute <= 0 {
		return fmt.Errorf("pixels per minute must be positive, got %g", v.PixelsPerMinute)
	}
	if v.MaxVisibleLanes <= 0 {
		return fmt.Errorf("max visible lanes must be positive, got %d", v.MaxVisibleLanes)
	}
	if len(v.WeekDays) != DaysPerWeek {
		return fmt.Errorf("week days must contain exactly %d dates, got %d", DaysPerWeek, len(v.WeekDays))
	}
	return nil
}

// dayBounds returns the [midnight, next midnight) range of the given day.
func dayBounds(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// dayWindow returns the visible window bounds for the given day.
func (v Viewport) dayWindow(day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	winStart := time.Date(y, m, d, v.DayStartHour, 0, 0, 0, loc)
	winEnd := time.Date(y, m, d, v.DayEndHour, 0, 0, 0, loc)
	return winStart, winEnd
}

// BlockKind discriminates the two block variants in a day's layout.
type BlockKind string

const (
	// KindRect is an individually positioned item rectangle.
	KindRect BlockKind = "rect"
	// KindAggregate is a collapsed overlap group rendered as one block.
	KindAggregate BlockKind = "aggregate"
)

// Block is the per-day output unit: either one item's rectangle or an
// aggregation block replacing a collapsed overlap group. Kind tells the
// renderer which fields are meaningful.
type Block struct {
	Kind     BlockKind
	DayIndex int
	TopPx    float64
	HeightPx float64

	// TruncatedTop and TruncatedBottom flag that the real interval
	// extends beyond the visible window on that edge.
	TruncatedTop    bool
	TruncatedBottom bool

	// Rect fields.
	ItemID    string
	LaneIndex int
	LaneCount int
	Priority  string
	ColorKey  string

	// Aggregate fields.
	ItemIDs []string
	Count   int
}

// DayLayout holds one day column's computed blocks and all-day row.
type DayLayout struct {
	Date      time.Time
	Blocks    []Block
	AllDayIDs []string
}

// SkippedItem reports an input item excluded from the layout.
type SkippedItem struct {
	ID     string
	Reason string
}

// WeekLayout is the full result of one layout computation. It is produced
// fresh on every call; the engine holds no cross-call state.
type WeekLayout struct {
	Days    [DaysPerWeek]DayLayout
	Skipped []SkippedItem
}
