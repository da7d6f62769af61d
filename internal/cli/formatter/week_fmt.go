package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/layout"
)

const (
	dayColWidth   = 16
	gutterWidth   = 6
	minutesPerRow = 30
)

// WeekGrid bundles everything needed to render a week view as text.
type WeekGrid struct {
	Layout          *layout.WeekLayout
	Items           map[string]*domain.Item
	DayStartHour    int
	DayEndHour      int
	PixelsPerMinute float64
}

// RenderWeek renders the computed week layout as a seven-column grid with
// one text row per half hour, an all-day strip, and a skipped-items note.
func RenderWeek(g WeekGrid) string {
	var b strings.Builder

	b.WriteString(renderDayHeaders(g))
	b.WriteString(renderAllDayStrip(g))
	b.WriteString(renderTimeGrid(g))
	b.WriteString(renderSkipped(g))

	return b.String()
}

func renderDayHeaders(g WeekGrid) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutterWidth))
	for d := 0; d < layout.DaysPerWeek; d++ {
		label := g.Layout.Days[d].Date.Format("Mon 01/02")
		b.WriteString(StyleHeader.Render(padCell(label, dayColWidth)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderAllDayStrip(g WeekGrid) string {
	hasAny := false
	for d := 0; d < layout.DaysPerWeek; d++ {
		if len(g.Layout.Days[d].AllDayIDs) > 0 {
			hasAny = true
			break
		}
	}
	if !hasAny {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleDim.Render(padCell("all", gutterWidth)))
	for d := 0; d < layout.DaysPerWeek; d++ {
		cell := ""
		for i, id := range g.Layout.Days[d].AllDayIDs {
			title := g.itemTitle(id)
			if i > 0 {
				cell += ","
			}
			cell += title
		}
		style := StyleFg
		if ids := g.Layout.Days[d].AllDayIDs; len(ids) == 1 {
			if item, ok := g.Items[ids[0]]; ok {
				style = ColorKeyStyle(item.Color)
			}
		}
		b.WriteString(style.Render(padCell(Truncate(cell, dayColWidth-1), dayColWidth)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderTimeGrid(g WeekGrid) string {
	rows := (g.DayEndHour - g.DayStartHour) * 60 / minutesPerRow
	if rows <= 0 {
		return ""
	}
	pxPerRow := minutesPerRow * g.PixelsPerMinute

	// Paint each day column as a rune grid, then stitch rows together.
	cols := make([][][]rune, layout.DaysPerWeek)
	for d := 0; d < layout.DaysPerWeek; d++ {
		cols[d] = blankColumn(rows)
		for _, blk := range g.Layout.Days[d].Blocks {
			paintBlock(cols[d], blk, g, pxPerRow)
		}
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		minute := r * minutesPerRow
		if minute%60 == 0 {
			hour := g.DayStartHour + minute/60
			b.WriteString(StyleDim.Render(padCell(fmt.Sprintf("%02d:00", hour), gutterWidth)))
		} else {
			b.WriteString(strings.Repeat(" ", gutterWidth))
		}
		for d := 0; d < layout.DaysPerWeek; d++ {
			b.WriteString(string(cols[d][r]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func blankColumn(rows int) [][]rune {
	col := make([][]rune, rows)
	for r := range col {
		col[r] = []rune(strings.Repeat(" ", dayColWidth))
	}
	return col
}

// paintBlock writes a block into its lane of the day column. The block's
// pixel extent maps onto half-hour text rows.
func paintBlock(col [][]rune, blk layout.Block, g WeekGrid, pxPerRow float64) {
	rows := len(col)
	r0 := int(math.Floor(blk.TopPx / pxPerRow))
	r1 := int(math.Ceil((blk.TopPx+blk.HeightPx)/pxPerRow)) - 1
	if r0 < 0 {
		r0 = 0
	}
	if r1 >= rows {
		r1 = rows - 1
	}
	if r1 < r0 {
		r1 = r0
	}

	laneCount := blk.LaneCount
	laneIndex := blk.LaneIndex
	if blk.Kind == layout.KindAggregate {
		laneCount, laneIndex = 1, 0
	}
	laneW := dayColWidth / laneCount
	if laneW < 1 {
		laneW = 1
	}
	x0 := laneIndex * laneW
	if x0 >= dayColWidth {
		x0 = dayColWidth - 1
	}

	label := g.blockLabel(blk)
	if blk.TruncatedTop {
		label = "↑" + label
	}
	writeInto(col[r0], x0, laneW, Truncate(label, laneW-1))

	for r := r0 + 1; r <= r1; r++ {
		fill := "┆"
		if r == r1 && blk.TruncatedBottom {
			fill = "↓"
		}
		writeInto(col[r], x0, laneW, fill)
	}
}

func (g WeekGrid) blockLabel(blk layout.Block) string {
	if blk.Kind == layout.KindAggregate {
		return fmt.Sprintf("▣ %d items", blk.Count)
	}
	return g.itemTitle(blk.ItemID)
}

func (g WeekGrid) itemTitle(id string) string {
	if item, ok := g.Items[id]; ok {
		return item.Title
	}
	return TruncID(id)
}

// writeInto copies text into the row runes starting at x, staying inside
// the lane's width.
func writeInto(row []rune, x, width int, text string) {
	for i, c := range []rune(text) {
		if i >= width-1 && width > 1 {
			break
		}
		pos := x + i
		if pos >= len(row) {
			break
		}
		row[pos] = c
	}
}

func renderSkipped(g WeekGrid) string {
	if len(g.Layout.Skipped) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for _, s := range g.Layout.Skipped {
		label := g.itemTitle(s.ID)
		b.WriteString(StyleDim.Render(fmt.Sprintf("skipped %s: %s", label, s.Reason)))
		b.WriteString("\n")
	}
	return b.String()
}

func padCell(text string, width int) string {
	if len([]rune(text)) >= width {
		return string([]rune(text)[:width])
	}
	return text + strings.Repeat(" ", width-len([]rune(text)))
}
