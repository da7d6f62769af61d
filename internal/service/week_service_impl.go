package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/layout"
	"github.com/alexanderramin/tempo/internal/repository"
)

type weekService struct {
	items repository.ItemRepo
}

func NewWeekService(items repository.ItemRepo) WeekService {
	return &weekService{items: items}
}

// WeekStartDate returns midnight of the first day of the week containing
// anchor, in anchor's location.
func WeekStartDate(anchor time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	offset := (int(day.Weekday()) - int(weekStart) + layout.DaysPerWeek) % layout.DaysPerWeek
	return day.AddDate(0, 0, -offset)
}

func (s *weekService) GetWeek(ctx context.Context, anchor time.Time, opts WeekOptions) (*WeekView, error) {
	start := WeekStartDate(anchor, opts.WeekStart)
	end := start.AddDate(0, 0, layout.DaysPerWeek)

	items, err := s.items.ListRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("loading week items: %w", err)
	}

	weekDays := make([]time.Time, layout.DaysPerWeek)
	for i := range weekDays {
		weekDays[i] = start.AddDate(0, 0, i)
	}
	vp := layout.Viewport{
		DayStartHour:    opts.DayStartHour,
		DayEndHour:      opts.DayEndHour,
		PixelsPerMinute: opts.PixelsPerMinute,
		MaxVisibleLanes: opts.MaxVisibleLanes,
		WeekDays:        weekDays,
	}

	byID := make(map[string]*domain.Item, len(items))
	scheduled := make([]layout.ScheduledItem, 0, len(items))
	for _, it := range items {
		if it.Status == domain.ItemDropped {
			continue
		}
		byID[it.ID] = it
		scheduled = append(scheduled, layout.ScheduledItem{
			ID:       it.ID,
			Start:    it.StartAt,
			End:      it.EndAt,
			AllDay:   it.AllDay,
			Priority: string(it.Priority),
			ColorKey: it.Color,
		})
	}

	wl, err := layout.ComputeWeekLayout(scheduled, vp)
	if err != nil {
		return nil, fmt.Errorf("computing week layout: %w", err)
	}
	return &WeekView{Layout: wl, Items: byID}, nil
}
