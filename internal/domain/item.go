package domain

import (
	"fmt"
	"time"
)

// Item is a single task or note. Timed items carry both StartAt and
// EndAt; floating items carry neither and live outside the schedule grid.
type Item struct {
	ID     string
	Title  string
	Notes  string
	Kind   ItemKind
	Status ItemStatus

	Priority Priority
	Color    string

	// Schedule
	StartAt *time.Time
	EndAt   *time.Time
	AllDay  bool

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTimed reports whether the item occupies the timed schedule grid.
func (i *Item) IsTimed() bool {
	return i.StartAt != nil && i.EndAt != nil && !i.AllDay
}

// IsFloating reports whether the item carries no schedule at all.
func (i *Item) IsFloating() bool {
	return i.StartAt == nil && i.EndAt == nil
}

// ValidateSchedule checks the item's schedule fields for consistency.
// All-day items need at most a start date; timed items need both instants
// in order.
func (i *Item) ValidateSchedule() error {
	if i.IsFloating() {
		return nil
	}
	if i.AllDay {
		if i.StartAt == nil {
			return fmt.Errorf("all-day item %q needs a start date", i.Title)
		}
		return nil
	}
	if i.StartAt == nil || i.EndAt == nil {
		return fmt.Errorf("item %q needs both start and end, or neither", i.Title)
	}
	if !i.EndAt.After(*i.StartAt) {
		return fmt.Errorf("item %q must end after it starts", i.Title)
	}
	return nil
}

// MarkDone transitions the item to done. Completing an already-done item
// keeps the original completion time.
func (i *Item) MarkDone(now time.Time) error {
	if i.Status == ItemDropped {
		return fmt.Errorf("cannot complete a dropped item")
	}
	if i.Status == ItemDone {
		return nil
	}
	i.Status = ItemDone
	i.CompletedAt = &now
	i.UpdatedAt = now
	return nil
}

// DisplayID returns a short identifier for display, truncating the UUID
// to 8 characters.
func (i *Item) DisplayID() string {
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}
