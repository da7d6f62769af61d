package ics

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/tempo/internal/domain"
)

// ImportResult collects the outcome of parsing an ICS payload.
type ImportResult struct {
	// Items are the importable events as unsaved domain items.
	Items []*domain.Item

	// Recurring lists summaries of recurring events. Only their first
	// instance is imported; the recurrence rule itself is not expanded.
	Recurring []string

	// Skipped lists summaries (or UIDs) of events that could not be
	// converted, with the reason attached.
	Skipped []string
}

// Parse reads an ICS calendar and converts its events into domain items.
// Items are returned unsaved so the caller decides what to persist.
func Parse(r io.Reader) (*ImportResult, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	result := &ImportResult{}
	for _, ev := range cal.Events() {
		item, recurring, err := convertEvent(ev)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %v", eventLabel(ev), err))
			continue
		}
		if recurring {
			result.Recurring = append(result.Recurring, item.Title)
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

func eventLabel(ev *ical.VEvent) string {
	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		return p.Value
	}
	if p := ev.GetProperty(ical.ComponentPropertyUniqueId); p != nil && p.Value != "" {
		return p.Value
	}
	return "unnamed event"
}

func convertEvent(ev *ical.VEvent) (*domain.Item, bool, error) {
	item := &domain.Item{
		Kind:     domain.KindTask,
		Status:   domain.ItemOpen,
		Priority: domain.PriorityNormal,
	}

	if p := ev.GetProperty(ical.ComponentPropertySummary); p != nil {
		item.Title = strings.TrimSpace(p.Value)
	}
	if item.Title == "" {
		return nil, false, fmt.Errorf("missing summary")
	}

	var notes []string
	if p := ev.GetProperty(ical.ComponentPropertyDescription); p != nil && p.Value != "" {
		notes = append(notes, p.Value)
	}
	if p := ev.GetProperty(ical.ComponentPropertyLocation); p != nil && p.Value != "" {
		notes = append(notes, "Location: "+p.Value)
	}
	item.Notes = strings.Join(notes, "\n")

	allDay := isAllDayStart(ev)
	start, err := ev.GetStartAt()
	if err != nil {
		if !allDay {
			return nil, false, fmt.Errorf("missing or invalid start: %v", err)
		}
		start, err = ev.GetAllDayStartAt()
		if err != nil {
			return nil, false, fmt.Errorf("missing or invalid start: %v", err)
		}
	}

	if allDay {
		item.AllDay = true
		item.StartAt = &start
		// DTEND on all-day events is exclusive. A next-day end means a
		// single-day event, which the end-less form already expresses.
		if end, err := allDayEnd(ev); err == nil && end.After(start.AddDate(0, 0, 1)) {
			item.EndAt = &end
		}
	} else {
		end, err := ev.GetEndAt()
		if err != nil {
			return nil, false, fmt.Errorf("missing or invalid end: %v", err)
		}
		if !end.After(start) {
			return nil, false, fmt.Errorf("end %s is not after start %s",
				end.Format(time.RFC3339), start.Format(time.RFC3339))
		}
		item.StartAt = &start
		item.EndAt = &end
	}

	recurring := ev.GetProperty(ical.ComponentPropertyRrule) != nil
	return item, recurring, nil
}

// isAllDayStart reports whether DTSTART carries VALUE=DATE or a
// date-only value.
func isAllDayStart(ev *ical.VEvent) bool {
	p := ev.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}

func allDayEnd(ev *ical.VEvent) (time.Time, error) {
	if end, err := ev.GetAllDayEndAt(); err == nil {
		return end, nil
	}
	return ev.GetEndAt()
}
