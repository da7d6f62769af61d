package service

import (
	"context"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/layout"
)

type ItemService interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListAll(ctx context.Context, includeClosed bool) ([]*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	MarkDone(ctx context.Context, id string) error
	Drop(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// WeekOptions carries the rendering parameters for a week view.
type WeekOptions struct {
	DayStartHour    int
	DayEndHour      int
	PixelsPerMinute float64
	MaxVisibleLanes int
	WeekStart       time.Weekday
}

// WeekView pairs a computed layout with the items it was built from,
// keyed by item ID so renderers can resolve titles and metadata.
type WeekView struct {
	Layout *layout.WeekLayout
	Items  map[string]*domain.Item
}

type WeekService interface {
	// GetWeek computes the layout for the week containing anchor.
	GetWeek(ctx context.Context, anchor time.Time, opts WeekOptions) (*WeekView, error)
}
