package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/tempo/internal/domain"
)

// Item options
type ItemOption func(*domain.Item)

func WithKind(k domain.ItemKind) ItemOption {
	return func(i *domain.Item) {
		i.Kind = k
	}
}

func WithStatus(s domain.ItemStatus) ItemOption {
	return func(i *domain.Item) {
		i.Status = s
	}
}

func WithPriority(p domain.Priority) ItemOption {
	return func(i *domain.Item) {
		i.Priority = p
	}
}

func WithColor(c string) ItemOption {
	return func(i *domain.Item) {
		i.Color = c
	}
}

func WithNotes(n string) ItemOption {
	return func(i *domain.Item) {
		i.Notes = n
	}
}

// WithSchedule sets a timed start/end window.
func WithSchedule(start, end time.Time) ItemOption {
	return func(i *domain.Item) {
		i.StartAt = &start
		i.EndAt = &end
	}
}

// WithAllDayOn marks the item all-day anchored to the given date.
func WithAllDayOn(day time.Time) ItemOption {
	return func(i *domain.Item) {
		i.AllDay = true
		i.StartAt = &day
		i.EndAt = nil
	}
}

func NewTestItem(title string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC().Truncate(time.Second)
	i := &domain.Item{
		ID:        uuid.New().String(),
		Title:     title,
		Kind:      domain.KindTask,
		Status:    domain.ItemOpen,
		Priority:  domain.PriorityNormal,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}
